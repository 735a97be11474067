package entity

import (
	"time"
)

// Rider is the single business entity this service manages.
// Email is unique at the store level; application code pre-checks it on
// create, but the index is the final arbiter under concurrent inserts.
type Rider struct {
	RiderID   uint      `gorm:"column:rider_id;primaryKey" json:"rider_id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:200;uniqueIndex;not null" json:"email"`
	Phone     *string   `gorm:"size:50" json:"phone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Rider) TableName() string { return "riders" }
