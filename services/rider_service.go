package services

import (
	"strings"

	"riderservice/entity"
	"riderservice/pkg/apperr"
	"riderservice/repository"
)

type RiderService struct {
	Repo *repository.RiderRepository
}

func NewRiderService(repo *repository.RiderRepository) *RiderService {
	return &RiderService{Repo: repo}
}

type CreateRiderInput struct {
	Name  string
	Email string
	Phone *string
}

// UpdateRiderInput is a merge-patch: a nil Name or Email leaves the current
// value. Phone is tri-state so an explicit null can clear it: when PhoneSet
// is false the stored value is kept, when true it is replaced with Phone
// (nil clears).
type UpdateRiderInput struct {
	Name     *string
	Email    *string
	Phone    *string
	PhoneSet bool
}

func (s *RiderService) List() ([]entity.Rider, error) {
	return s.Repo.List()
}

func (s *RiderService) Create(in CreateRiderInput) (*entity.Rider, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return nil, apperr.Validationf("name and email required")
	}

	// Pre-check keeps the common case friendly; the unique index decides
	// the race when two creates carry the same email concurrently.
	exists, err := s.Repo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrDuplicateEmail
	}

	rd := entity.Rider{Name: name, Email: email, Phone: in.Phone}
	if err := s.Repo.Create(&rd); err != nil {
		return nil, err
	}
	return &rd, nil
}

func (s *RiderService) Get(id uint) (*entity.Rider, error) {
	return s.Repo.GetByID(id)
}

// Update applies a merge-patch: each supplied field replaces the stored
// value, omitted fields are retained. Email uniqueness is not re-checked
// here; only the store constraint guards it on update.
func (s *RiderService) Update(id uint, in UpdateRiderInput) (*entity.Rider, error) {
	rd, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		rd.Name = *in.Name
	}
	if in.Email != nil {
		rd.Email = *in.Email
	}
	if in.PhoneSet {
		rd.Phone = in.Phone
	}
	if err := s.Repo.Update(rd); err != nil {
		return nil, err
	}
	return rd, nil
}

func (s *RiderService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
