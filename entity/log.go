package entity

import (
	"time"
)

// Log is an audit record of an inbound request. It is telemetry, not
// business data: writes are best-effort and a failed write never fails
// the request that triggered it.
type Log struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:20" json:"level"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Log) TableName() string { return "logs_riders" }
