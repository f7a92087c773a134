package models

import "time"

// Slot é uma ocorrência de serviço com lotação fixa (ex.: uma aula)
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BusinessID uint `json:"business_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Profissional responsável (opcional)
	StaffID *uint  `json:"staff_id"`
	Staff   *Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff,omitempty"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Capacity int `gorm:"not null" json:"capacity"`

	// Descrição específica do dia, sobrepõe a do serviço quando preenchida
	Description string `gorm:"size:255" json:"description"`

	Enrollments []Enrollment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"enrollments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
