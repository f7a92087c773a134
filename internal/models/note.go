package models

import "time"

// Nota de um profissional sobre um cliente ou uma marcação
type Note struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `json:"business_id"`

	CreatedByID uint  `json:"created_by_id"`
	CreatedBy   Staff `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by"`

	ClientID *uint `json:"client_id"`

	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment,omitempty"`

	Content  string `gorm:"type:text;not null" json:"content"`
	NoteType string `gorm:"size:30;default:'GENERAL'" json:"note_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
