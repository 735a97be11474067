package repository

import (
	"riderservice/entity"

	"gorm.io/gorm"
)

type LogRepository struct{ DB *gorm.DB }

func NewLogRepository(db *gorm.DB) *LogRepository { return &LogRepository{DB: db} }

// Append writes one audit entry in a fresh session so a failed write can
// never leak state into a business transaction. Callers treat the returned
// error as advisory.
func (r *LogRepository) Append(level, message string) error {
	logRow := entity.Log{Level: level, Message: message}
	return r.DB.Session(&gorm.Session{NewDB: true}).Create(&logRow).Error
}

// Recent returns the newest n audit entries, newest first.
func (r *LogRepository) Recent(n int) ([]entity.Log, error) {
	rows := make([]entity.Log, 0)
	err := r.DB.Order("id desc").Limit(n).Find(&rows).Error
	return rows, err
}
