package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"riderservice/pkg/apperr"
	"riderservice/pkg/resp"
	"riderservice/services"

	"github.com/gin-gonic/gin"
)

type RiderController struct {
	Svc   *services.RiderService
	Trips *services.TripService
}

func NewRiderController(svc *services.RiderService, trips *services.TripService) *RiderController {
	return &RiderController{Svc: svc, Trips: trips}
}

type CreateRiderReq struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateRiderReq is a merge-patch body: an omitted field keeps the stored
// value. For phone, an explicit JSON null clears it, so the handler also
// checks key presence on the raw body.
type UpdateRiderReq struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// writeError maps the shared error taxonomy onto HTTP statuses. This is the
// only place that mapping lives.
func writeError(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		resp.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		resp.Error(c, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.ErrDuplicateEmail):
		resp.Error(c, http.StatusConflict, apperr.ErrDuplicateEmail.Error())
	case errors.Is(err, apperr.ErrStoreUnavailable):
		log.Printf("ERROR: database connection failed: %v", err)
		resp.ErrorDetails(c, http.StatusServiceUnavailable, "Database unavailable", err)
	case errors.Is(err, apperr.ErrUpstreamUnavailable):
		resp.ErrorDetails(c, http.StatusServiceUnavailable, "Trip service unavailable", err)
	default:
		log.Printf("ERROR: unexpected error: %v", err)
		resp.ErrorDetails(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// riderID parses the :id segment. A non-integer id behaves like an unknown
// resource, not a bad request.
func riderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Error(c, http.StatusNotFound, "not found")
		return 0, false
	}
	return uint(id), true
}

// GET /v1/riders
func (h *RiderController) List(c *gin.Context) {
	riders, err := h.Svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, riders)
}

// POST /v1/riders
func (h *RiderController) Create(c *gin.Context) {
	var req CreateRiderReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	rd, err := h.Svc.Create(services.CreateRiderInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, rd)
}

// GET /v1/riders/:id
func (h *RiderController) Get(c *gin.Context) {
	id, ok := riderID(c)
	if !ok {
		return
	}
	rd, err := h.Svc.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rd)
}

// PUT /v1/riders/:id
func (h *RiderController) Update(c *gin.Context) {
	id, ok := riderID(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	in := services.UpdateRiderInput{}
	if len(bytes.TrimSpace(body)) > 0 {
		var req UpdateRiderReq
		if err := json.Unmarshal(body, &req); err != nil {
			resp.Error(c, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		var keys map[string]json.RawMessage
		_ = json.Unmarshal(body, &keys)
		_, phoneSet := keys["phone"]

		in = services.UpdateRiderInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			PhoneSet: phoneSet,
		}
	}

	rd, err := h.Svc.Update(id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, rd)
}

// DELETE /v1/riders/:id
func (h *RiderController) Delete(c *gin.Context) {
	id, ok := riderID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "deleted"})
}

// GET /v1/riders/:id/trips
//
// The composite response stays 200 when the sibling answers with a
// non-success status (trips degrade to an empty list); only a
// network-level failure of the call becomes a 503.
func (h *RiderController) TripsForRider(c *gin.Context) {
	id, ok := riderID(c)
	if !ok {
		return
	}
	trips, err := h.Trips.TripsForRider(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"rider_id": id, "trips": trips})
}
