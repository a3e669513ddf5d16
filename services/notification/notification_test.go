package notification_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	barberRepo "thecut/database/repository/barber"
	"thecut/models"
	"thecut/services/notification"
	"thecut/services/tasks"
)

type mockBarberRepo struct {
	testifymock.Mock
}

func (m *mockBarberRepo) GetBySlug(ctx context.Context, slug string) (*models.BarberProfile, error) {
	args := m.Called(ctx, slug)
	if p := args.Get(0); p != nil {
		return p.(*models.BarberProfile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBarberRepo) Upsert(ctx context.Context, profile *models.BarberProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func testReservation() models.Reservation {
	return models.Reservation{
		ID:       "r1",
		BarberID: "evan",
		Service:  models.Service{ID: 2, Name: "Beard Maintenance", Duration: "20 min", Price: 15},
		Date:     "Mon Jan 01 2024",
		Time:     "09:45",
		Name:     "Sam Doe",
		Phone:    "0850000000",
	}
}

func TestWebhookDeliversReservationPayload(t *testing.T) {
	var received models.Reservation
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	barbers := new(mockBarberRepo)
	barbers.On("GetBySlug", testifymock.Anything, "evan").Return(&models.BarberProfile{
		Slug:    "evan",
		Name:    "Evan Styles",
		Webhook: server.URL,
	}, nil)

	notifier := &notification.DefaultReservationNotifier{
		Barbers: barbers,
		Logger:  zap.NewNop(),
	}
	notifier.NotifyReservationCreated(context.Background(), testReservation())

	assert.Equal(t, 1, hits)
	assert.Equal(t, "r1", received.ID)
	assert.Equal(t, "09:45", received.Time)
	assert.Equal(t, 15, received.Service.Price)
}

func TestWebhookFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	barbers := new(mockBarberRepo)
	barbers.On("GetBySlug", testifymock.Anything, "evan").Return(&models.BarberProfile{
		Slug:    "evan",
		Webhook: server.URL,
	}, nil)

	notifier := &notification.DefaultReservationNotifier{
		Barbers: barbers,
		Logger:  zap.NewNop(),
	}

	// Must not panic or propagate; the booking already succeeded.
	notifier.NotifyReservationCreated(context.Background(), testReservation())
}

func TestNoHooksConfiguredIsANoop(t *testing.T) {
	barbers := new(mockBarberRepo)
	barbers.On("GetBySlug", testifymock.Anything, "evan").Return(&models.BarberProfile{Slug: "evan"}, nil)

	notifier := &notification.DefaultReservationNotifier{
		Barbers: barbers,
		Logger:  zap.NewNop(),
	}
	notifier.NotifyReservationCreated(context.Background(), testReservation())
}

func TestMissingProfileSkipsNotifications(t *testing.T) {
	barbers := new(mockBarberRepo)
	barbers.On("GetBySlug", testifymock.Anything, "evan").Return(nil, barberRepo.ErrBarberNotFound)

	notifier := &notification.DefaultReservationNotifier{
		Barbers: barbers,
		Logger:  zap.NewNop(),
	}
	notifier.NotifyReservationCreated(context.Background(), testReservation())
}

func TestTaskHandlerNeverFails(t *testing.T) {
	barbers := new(mockBarberRepo)
	barbers.On("GetBySlug", testifymock.Anything, "evan").Return(&models.BarberProfile{Slug: "evan"}, nil)

	notifier := &notification.DefaultReservationNotifier{
		Barbers: barbers,
		Logger:  zap.NewNop(),
	}

	task, err := tasks.NewReservationCreatedTask(testReservation())
	require.NoError(t, err)
	assert.NoError(t, notifier.HandleReservationCreatedTask(context.Background(), task))

	t.Run("garbage payload is dropped, not retried", func(t *testing.T) {
		bad := asynq.NewTask(tasks.TypeReservationCreated, []byte("{not json"))
		assert.NoError(t, notifier.HandleReservationCreatedTask(context.Background(), bad))
	})
}
