package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Slot / Client
// --------------------------------------------------

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	businessID uint,
	slotID uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND business_id = ?", slotID, businessID).
		First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotGormRepository) GetClient(
	ctx context.Context,
	businessID uint,
	clientID uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", clientID, businessID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// --------------------------------------------------
// Enrollment (capacity-guarded insert)
// --------------------------------------------------

func (r *SlotGormRepository) EnrollIfCapacity(
	ctx context.Context,
	slotID uint,
	enrollment *models.Enrollment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// trava a linha do slot para serializar inscrições concorrentes
		var s models.Slot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&s, slotID).Error; err != nil {
			return err
		}

		var existing models.Enrollment
		err := tx.
			Where(
				"slot_id = ? AND client_id = ? AND status <> ?",
				slotID, enrollment.ClientID, string(domain.EnrollmentCancelled),
			).
			First(&existing).Error
		if err == nil {
			return httperr.ErrBusiness("already_enrolled")
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		var active int64
		if err := tx.
			Model(&models.Enrollment{}).
			Where(
				"slot_id = ? AND status <> ?",
				slotID, string(domain.EnrollmentCancelled),
			).
			Count(&active).Error; err != nil {
			return err
		}

		if err := domain.CanEnroll(active, s.Capacity); err != nil {
			return err
		}

		// O índice único em (slot_id, client_id) admite uma linha por par,
		// por isso uma inscrição cancelada é reativada em vez de inserida.
		var cancelled models.Enrollment
		err = tx.
			Where(
				"slot_id = ? AND client_id = ? AND status = ?",
				slotID, enrollment.ClientID, string(domain.EnrollmentCancelled),
			).
			First(&cancelled).Error
		if err == nil {
			cancelled.Status = enrollment.Status
			cancelled.Attendance = false
			cancelled.EnrolledAt = enrollment.EnrolledAt
			if err := tx.Save(&cancelled).Error; err != nil {
				return err
			}
			*enrollment = cancelled
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		if err := tx.Create(enrollment).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				return httperr.ErrBusiness("already_enrolled")
			}
			return err
		}

		return nil
	})
}

func (r *SlotGormRepository) GetEnrollment(
	ctx context.Context,
	slotID uint,
	clientID uint,
) (*models.Enrollment, error) {

	var e models.Enrollment
	if err := r.db.WithContext(ctx).
		Where(
			"slot_id = ? AND client_id = ? AND status <> ?",
			slotID, clientID, string(domain.EnrollmentCancelled),
		).
		First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *SlotGormRepository) UpdateEnrollment(
	ctx context.Context,
	enrollment *models.Enrollment,
) error {
	return r.db.WithContext(ctx).Save(enrollment).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *SlotGormRepository) ListSlotsForDay(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Staff").
		Preload("Enrollments", "status <> ?", string(domain.EnrollmentCancelled)).
		Preload("Enrollments.Client").
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID, start, end,
		).
		Order("start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
