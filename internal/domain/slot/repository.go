package slot

import (
	"context"
	"time"

	"github.com/marcafacil/booking-api/internal/models"
)

type Repository interface {
	GetSlot(
		ctx context.Context,
		businessID uint,
		slotID uint,
	) (*models.Slot, error)

	GetClient(
		ctx context.Context,
		businessID uint,
		clientID uint,
	) (*models.Client, error)

	// EnrollIfCapacity bloqueia a linha do slot, conta as inscrições
	// ativas e insere a inscrição numa única transação. Devolve
	// capacity_exceeded quando a lotação está cheia e already_enrolled
	// quando o cliente já tem inscrição ativa no slot.
	EnrollIfCapacity(
		ctx context.Context,
		slotID uint,
		enrollment *models.Enrollment,
	) error

	GetEnrollment(
		ctx context.Context,
		slotID uint,
		clientID uint,
	) (*models.Enrollment, error)

	UpdateEnrollment(
		ctx context.Context,
		enrollment *models.Enrollment,
	) error

	ListSlotsForDay(
		ctx context.Context,
		businessID uint,
		start time.Time,
		end time.Time,
	) ([]models.Slot, error)
}
