package repository

import (
	"errors"

	"riderservice/entity"
	"riderservice/pkg/apperr"

	"gorm.io/gorm"
)

type RiderRepository struct{ DB *gorm.DB }

func NewRiderRepository(db *gorm.DB) *RiderRepository { return &RiderRepository{DB: db} }

// classify maps gorm errors onto the shared taxonomy. Logical outcomes
// (no row, duplicate key) keep their meaning; anything else is treated as
// the store being unreachable rather than a caller mistake.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrDuplicateEmail
	default:
		return apperr.StoreUnavailable(err)
	}
}

func (r *RiderRepository) List() ([]entity.Rider, error) {
	riders := make([]entity.Rider, 0)
	if err := r.DB.Order("rider_id asc").Find(&riders).Error; err != nil {
		return nil, classify(err)
	}
	return riders, nil
}

func (r *RiderRepository) GetByID(id uint) (*entity.Rider, error) {
	var rd entity.Rider
	if err := r.DB.First(&rd, "rider_id = ?", id).Error; err != nil {
		return nil, classify(err)
	}
	return &rd, nil
}

func (r *RiderRepository) ExistsByEmail(email string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Rider{}).
		Where("email = ?", email).
		Count(&cnt).Error; err != nil {
		return false, classify(err)
	}
	return cnt > 0, nil
}

func (r *RiderRepository) Create(rd *entity.Rider) error {
	return classify(r.DB.Create(rd).Error)
}

func (r *RiderRepository) Update(rd *entity.Rider) error {
	return classify(r.DB.Save(rd).Error)
}

func (r *RiderRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.Rider{}, "rider_id = ?", id)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
