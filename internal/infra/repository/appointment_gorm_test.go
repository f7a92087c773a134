package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Base em memória: uma ligação única para não perder o estado
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Business{},
		&models.Staff{},
		&models.Client{},
		&models.Service{},
		&models.Appointment{},
		&models.WorkingHours{},
	))

	return db
}

func seedBusiness(t *testing.T, db *gorm.DB) *models.Business {
	t.Helper()

	biz := models.Business{Name: "Barbearia Central", Slug: "barbearia-central", Timezone: "Europe/Lisbon"}
	require.NoError(t, db.Create(&biz).Error)
	return &biz
}

func TestGetBusinessBySlug(t *testing.T) {
	db := testDB(t)
	biz := seedBusiness(t, db)

	repo := NewAppointmentGormRepository(db)

	got, err := repo.GetBusinessBySlug(context.Background(), "barbearia-central")
	require.NoError(t, err)
	assert.Equal(t, biz.ID, got.ID)

	_, err = repo.GetBusinessBySlug(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetOrCreateClient_MatchesByPhone(t *testing.T) {
	db := testDB(t)
	biz := seedBusiness(t, db)

	repo := NewAppointmentGormRepository(db)
	ctx := context.Background()

	first, err := repo.GetOrCreateClient(ctx, biz.ID, "Rui Matos", "912345678", "rui@example.pt")
	require.NoError(t, err)
	assert.True(t, first.Eligible)

	// Mesmo telefone devolve o cliente existente, mesmo com outro nome
	again, err := repo.GetOrCreateClient(ctx, biz.ID, "Rui M.", "912345678", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "Rui Matos", again.Name)

	other, err := repo.GetOrCreateClient(ctx, biz.ID, "Ana Silva", "961111111", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestListAppointmentsForDay_ExcludesCancelled(t *testing.T) {
	db := testDB(t)
	biz := seedBusiness(t, db)

	repo := NewAppointmentGormRepository(db)

	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)
	day := time.Date(2027, 6, 15, 0, 0, 0, 0, loc)

	seed := []models.Appointment{
		{BusinessID: biz.ID, StaffID: 2, StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour), Status: string(domain.StatusConfirmed), Reference: "ref-1"},
		{BusinessID: biz.ID, StaffID: 2, StartTime: day.Add(11 * time.Hour), EndTime: day.Add(12 * time.Hour), Status: string(domain.StatusCancelled), Reference: "ref-2"},
		{BusinessID: biz.ID, StaffID: 9, StartTime: day.Add(9 * time.Hour), EndTime: day.Add(10 * time.Hour), Status: string(domain.StatusConfirmed), Reference: "ref-3"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	got, err := repo.ListAppointmentsForDay(context.Background(), 2, day, day.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, string(domain.StatusConfirmed), got[0].Status)
}

func TestGetAppointmentByReference(t *testing.T) {
	db := testDB(t)
	biz := seedBusiness(t, db)

	repo := NewAppointmentGormRepository(db)

	ap := models.Appointment{
		BusinessID: biz.ID,
		StaffID:    2,
		StartTime:  time.Now().Add(48 * time.Hour),
		EndTime:    time.Now().Add(49 * time.Hour),
		Status:     string(domain.StatusPending),
		Reference:  "3f2504e0-4f89-11d3-9a0c-0305e82c3301",
	}
	require.NoError(t, db.Create(&ap).Error)

	got, err := repo.GetAppointmentByReference(context.Background(), ap.Reference)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
	assert.Equal(t, "barbearia-central", got.Business.Slug)
}
