package models

import "time"

type Enrollment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SlotID uint `gorm:"uniqueIndex:idx_slot_client" json:"slot_id"`

	ClientID uint   `gorm:"uniqueIndex:idx_slot_client" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Status     string    `gorm:"size:20;default:'CONFIRMED'" json:"status"`
	Attendance bool      `gorm:"default:false" json:"attendance"`
	EnrolledAt time.Time `json:"enrolled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
