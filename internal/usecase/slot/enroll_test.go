package slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marcafacil/booking-api/internal/audit"
	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/httperr"
	"github.com/marcafacil/booking-api/internal/models"
)

// ======================================================
// FAKE
// ======================================================

type fakeSlotRepo struct {
	slot        *models.Slot
	client      *models.Client
	enrollments []models.Enrollment
}

func (r *fakeSlotRepo) GetSlot(_ context.Context, _ uint, slotID uint) (*models.Slot, error) {
	if r.slot == nil || r.slot.ID != slotID {
		return nil, errors.New("not found")
	}
	return r.slot, nil
}

func (r *fakeSlotRepo) GetClient(_ context.Context, _ uint, clientID uint) (*models.Client, error) {
	if r.client == nil || r.client.ID != clientID {
		return nil, errors.New("not found")
	}
	return r.client, nil
}

func (r *fakeSlotRepo) EnrollIfCapacity(_ context.Context, slotID uint, enrollment *models.Enrollment) error {
	var active int64
	cancelledIdx := -1
	for i, e := range r.enrollments {
		if e.SlotID != slotID {
			continue
		}
		if e.ClientID == enrollment.ClientID {
			if domain.Active(domain.EnrollmentStatus(e.Status)) {
				return httperr.ErrBusiness("already_enrolled")
			}
			cancelledIdx = i
		}
		if domain.Active(domain.EnrollmentStatus(e.Status)) {
			active++
		}
	}

	if err := domain.CanEnroll(active, r.slot.Capacity); err != nil {
		return err
	}

	// Uma linha cancelada do mesmo par é reativada, tal como no repositório real
	if cancelledIdx >= 0 {
		r.enrollments[cancelledIdx].Status = enrollment.Status
		r.enrollments[cancelledIdx].Attendance = false
		r.enrollments[cancelledIdx].EnrolledAt = enrollment.EnrolledAt
		*enrollment = r.enrollments[cancelledIdx]
		return nil
	}

	enrollment.ID = uint(len(r.enrollments) + 1)
	r.enrollments = append(r.enrollments, *enrollment)
	return nil
}

func (r *fakeSlotRepo) GetEnrollment(_ context.Context, slotID uint, clientID uint) (*models.Enrollment, error) {
	for i := range r.enrollments {
		e := &r.enrollments[i]
		if e.SlotID == slotID && e.ClientID == clientID && domain.Active(domain.EnrollmentStatus(e.Status)) {
			return e, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeSlotRepo) UpdateEnrollment(_ context.Context, enrollment *models.Enrollment) error {
	for i := range r.enrollments {
		if r.enrollments[i].ID == enrollment.ID {
			r.enrollments[i] = *enrollment
			return nil
		}
	}
	return errors.New("not found")
}

func (r *fakeSlotRepo) ListSlotsForDay(_ context.Context, _ uint, _, _ time.Time) ([]models.Slot, error) {
	if r.slot == nil {
		return nil, nil
	}
	return []models.Slot{*r.slot}, nil
}

var _ domain.Repository = (*fakeSlotRepo)(nil)

func newTestDispatcher(t *testing.T) *audit.Dispatcher {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))

	return audit.NewDispatcher(audit.New(db))
}

func enrollableRepo(capacity int) *fakeSlotRepo {
	return &fakeSlotRepo{
		slot:   &models.Slot{ID: 10, BusinessID: 1, Capacity: capacity},
		client: &models.Client{ID: 3, BusinessID: 1, Name: "Rui Matos", Eligible: true},
	}
}

// ======================================================
// TESTS
// ======================================================

func TestEnrollClient_Success(t *testing.T) {
	repo := enrollableRepo(5)
	uc := NewEnrollClient(repo, newTestDispatcher(t))

	enrollment, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	assert.Equal(t, uint(10), enrollment.SlotID)
	assert.Equal(t, uint(3), enrollment.ClientID)
	assert.Equal(t, string(domain.EnrollmentConfirmed), enrollment.Status)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollClient_CapacityExceeded(t *testing.T) {
	repo := enrollableRepo(2)
	repo.enrollments = []models.Enrollment{
		{ID: 1, SlotID: 10, ClientID: 100, Status: string(domain.EnrollmentConfirmed)},
		{ID: 2, SlotID: 10, ClientID: 101, Status: string(domain.EnrollmentPending)},
	}

	uc := NewEnrollClient(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	assert.True(t, httperr.IsBusiness(err, "capacity_exceeded"), "got %v", err)
}

func TestEnrollClient_CancelledSeatsFreeCapacity(t *testing.T) {
	repo := enrollableRepo(1)
	repo.enrollments = []models.Enrollment{
		{ID: 1, SlotID: 10, ClientID: 100, Status: string(domain.EnrollmentCancelled)},
	}

	uc := NewEnrollClient(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	assert.NoError(t, err)
}

func TestEnrollClient_AlreadyEnrolled(t *testing.T) {
	repo := enrollableRepo(5)
	uc := NewEnrollClient(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, 2, 10, 3)
	assert.True(t, httperr.IsBusiness(err, "already_enrolled"), "got %v", err)
}

func TestEnrollClient_NotEligible(t *testing.T) {
	repo := enrollableRepo(5)
	repo.client.Eligible = false

	uc := NewEnrollClient(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	assert.True(t, httperr.IsBusiness(err, "client_not_eligible"), "got %v", err)
}

func TestEnrollClient_MissingSlotOrClient(t *testing.T) {
	repo := enrollableRepo(5)
	uc := NewEnrollClient(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 99, 3)
	assert.True(t, httperr.IsBusiness(err, "slot_not_found"), "got %v", err)

	_, err = uc.Execute(context.Background(), 1, 2, 10, 99)
	assert.True(t, httperr.IsBusiness(err, "client_not_found"), "got %v", err)
}

func TestRemoveEnrollment_CancelsRow(t *testing.T) {
	repo := enrollableRepo(5)
	uc := NewEnrollClient(repo, newTestDispatcher(t))
	removeUC := NewRemoveEnrollment(repo, newTestDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	enrollment, err := removeUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, string(domain.EnrollmentCancelled), enrollment.Status)

	// A vaga volta a ficar disponível
	repo.client = &models.Client{ID: 4, BusinessID: 1, Name: "Ana", Eligible: true}
	_, err = uc.Execute(context.Background(), 1, 2, 10, 4)
	assert.NoError(t, err)
}

func TestEnrollClient_ReenrollAfterCancel(t *testing.T) {
	repo := enrollableRepo(1)
	enrollUC := NewEnrollClient(repo, newTestDispatcher(t))
	removeUC := NewRemoveEnrollment(repo, newTestDispatcher(t))

	_, err := enrollUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	_, err = removeUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	// O mesmo cliente volta a ocupar a vaga que libertou
	enrollment, err := enrollUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, string(domain.EnrollmentConfirmed), enrollment.Status)
	assert.False(t, enrollment.Attendance)
	assert.Len(t, repo.enrollments, 1)
}

func TestRemoveEnrollment_AlreadyCancelled(t *testing.T) {
	repo := enrollableRepo(5)
	enrollUC := NewEnrollClient(repo, newTestDispatcher(t))
	removeUC := NewRemoveEnrollment(repo, newTestDispatcher(t))

	_, err := enrollUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	_, err = removeUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	_, err = removeUC.Execute(context.Background(), 1, 2, 10, 3)
	assert.True(t, httperr.IsBusiness(err, "enrollment_not_found"), "got %v", err)
}

func TestToggleAttendance_Flips(t *testing.T) {
	repo := enrollableRepo(5)
	enrollUC := NewEnrollClient(repo, newTestDispatcher(t))
	uc := NewToggleAttendance(repo)

	_, err := enrollUC.Execute(context.Background(), 1, 2, 10, 3)
	require.NoError(t, err)

	enrollment, err := uc.Execute(context.Background(), 1, 10, 3)
	require.NoError(t, err)
	assert.True(t, enrollment.Attendance)

	enrollment, err = uc.Execute(context.Background(), 1, 10, 3)
	require.NoError(t, err)
	assert.False(t, enrollment.Attendance)
}
