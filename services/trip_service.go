package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"riderservice/pkg/apperr"
)

// TripService is the synchronous client for the sibling trips service.
// One attempt per request, bounded by the client timeout; no retries.
type TripService struct {
	BaseURL string
	Client  *http.Client
}

func NewTripService(baseURL string, timeout time.Duration) *TripService {
	return &TripService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// TripsForRider fetches the trips recorded for one rider. A completed call
// with a non-200 status degrades to an empty list; a network-level failure
// (timeout, refused connection, DNS, malformed body) is reported as the
// upstream being unavailable so callers can tell "no trips" apart from
// "trip data could not be obtained".
// The payload's shape is not validated here.
func (s *TripService) TripsForRider(ctx context.Context, riderID uint) (any, error) {
	url := fmt.Sprintf("%s/v1/trips?rider_id=%d", s.BaseURL, riderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.UpstreamUnavailable(err)
	}
	res, err := s.Client.Do(req)
	if err != nil {
		return nil, apperr.UpstreamUnavailable(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return []any{}, nil
	}

	var trips any
	if err := json.NewDecoder(res.Body).Decode(&trips); err != nil {
		return nil, apperr.UpstreamUnavailable(err)
	}
	if trips == nil {
		trips = []any{}
	}
	return trips, nil
}
