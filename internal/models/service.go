package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name           string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description    string  `gorm:"size:255" json:"description"`
	Price          float64 `json:"price"`
	DurationMin    int     `gorm:"not null" json:"duration_min"`
	Specialization string  `gorm:"size:100" json:"specialization"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistAssignment links a stylist to a service they can be booked for.
type StylistAssignment struct {
	StylistID uint `gorm:"primaryKey" json:"stylist_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Stylist User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
