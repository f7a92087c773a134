package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/marcafacil/booking-api/internal/domain/slot"
	"github.com/marcafacil/booking-api/internal/models"
)

func slotTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := testDB(t)
	require.NoError(t, db.AutoMigrate(&models.Slot{}, &models.Enrollment{}))
	return db
}

func TestGetEnrollment_IgnoresCancelled(t *testing.T) {
	db := slotTestDB(t)
	repo := NewSlotGormRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Client{BusinessID: 1, Name: "Rui Matos", Eligible: true}).Error)
	require.NoError(t, db.Create(&models.Client{BusinessID: 1, Name: "Ana Lopes", Eligible: true}).Error)

	require.NoError(t, db.Create(&models.Enrollment{
		SlotID:   10,
		ClientID: 1,
		Status:   string(domain.EnrollmentCancelled),
	}).Error)
	require.NoError(t, db.Create(&models.Enrollment{
		SlotID:   10,
		ClientID: 2,
		Status:   string(domain.EnrollmentConfirmed),
	}).Error)

	// Inscrições canceladas não são devolvidas
	_, err := repo.GetEnrollment(ctx, 10, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetEnrollment(ctx, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, string(domain.EnrollmentConfirmed), got.Status)
}
