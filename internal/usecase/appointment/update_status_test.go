package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/marcafacil/booking-api/internal/domain/appointment"
	"github.com/marcafacil/booking-api/internal/httperr"
)

func TestUpdateStatus_PersistsChange(t *testing.T) {
	repo := &fakeRepo{
		business:    bookableRepo().business,
		appointment: notifiableAppointment(),
	}
	uc := NewUpdateStatus(repo, testDispatcher(t))

	ap, err := uc.Execute(context.Background(), 1, 2, 42, domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, 1, repo.updates)
	assert.Contains(t, ap.Notes, "estado PENDING -> CONFIRMED")
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeRepo{
		business:    bookableRepo().business,
		appointment: notifiableAppointment(),
	}
	uc := NewUpdateStatus(repo, testDispatcher(t))

	_, err := uc.Execute(context.Background(), 1, 2, 42, domain.Status("NO_SHOW"))
	assert.True(t, httperr.IsBusiness(err, "invalid_status"), "got %v", err)
	assert.Equal(t, 0, repo.updates)
}

func TestCancelByReference(t *testing.T) {
	ap := notifiableAppointment()
	ap.Reference = "3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	repo := &fakeRepo{appointment: ap}

	uc := NewCancelByReference(repo, testDispatcher(t))

	got, err := uc.Execute(context.Background(), ap.Reference)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), got.Status)
	assert.NotNil(t, got.CancelledAt)

	// Segunda tentativa sobre a mesma referência é recusada
	_, err = uc.Execute(context.Background(), ap.Reference)
	assert.True(t, httperr.IsBusiness(err, "already_cancelled"), "got %v", err)
}

func TestCancelByReference_UnknownReference(t *testing.T) {
	uc := NewCancelByReference(&fakeRepo{}, testDispatcher(t))

	_, err := uc.Execute(context.Background(), "does-not-exist")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"), "got %v", err)
}
