package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	barberRepo "thecut/database/repository/barber"
	"thecut/models"
	"thecut/services/calendar"
	"thecut/services/catalog"
	"thecut/services/tasks"
)

const (
	defaultSessionTTL = 30 * time.Minute
	sessionKeyPrefix  = "wizard:"
)

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *DefaultWizardService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return defaultSessionTTL
}

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Start creates a new session for the given barber's booking page and stores
// it in Redis. A missing barber profile falls back to a placeholder so the
// wizard stays usable with an incomplete backing store.
func (s *DefaultWizardService) Start(ctx context.Context, barberSlug string) (*models.WizardSession, error) {
	profile, err := s.Barbers.GetBySlug(ctx, barberSlug)
	if err != nil {
		if !errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, fmt.Errorf("failed to resolve barber %q: %w", barberSlug, err)
		}
		s.Logger.Warn("barber profile missing, serving placeholder",
			zap.String("barberId", barberSlug))
		profile = models.PlaceholderBarber(barberSlug)
	}

	session := models.WizardSession{
		SessionID: uuid.New().String(),
		BarberID:  barberSlug,
		Barber:    *profile,
		Step:      models.StepSelectService,
	}
	if err := s.save(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Get returns the current session state.
func (s *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return s.load(ctx, sessionID)
}

// SelectService records the chosen service and advances to date selection.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID string, serviceID int) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectService {
		return nil, newValidationError("cannot select a service at step %s", session.Step)
	}
	svc, err := catalog.ServiceByID(serviceID)
	if err != nil {
		return nil, newValidationError("%v", err)
	}
	session.Draft.Service = &svc
	session.Step = models.StepSelectDate
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate records the chosen day and advances to time selection. The date
// must be one the current availability window actually offers.
func (s *DefaultWizardService) SelectDate(ctx context.Context, sessionID string, full string) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectDate {
		return nil, newValidationError("cannot select a date at step %s", session.Step)
	}
	if session.Draft.Service == nil {
		return nil, newValidationError("a service must be selected before a date")
	}
	day, ok := calendar.DayByFull(s.now(), calendar.DefaultHorizonDays, full)
	if !ok {
		return nil, newValidationError("date %q is not in the bookable window", full)
	}
	session.Draft.Date = &day
	session.Step = models.StepSelectTime
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectTime records the chosen slot and advances to contact details.
func (s *DefaultWizardService) SelectTime(ctx context.Context, sessionID string, slot string) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectTime {
		return nil, newValidationError("cannot select a time at step %s", session.Step)
	}
	if session.Draft.Service == nil || session.Draft.Date == nil {
		return nil, newValidationError("service and date must be selected before a time")
	}
	if !catalog.ValidTimeSlot(slot) {
		return nil, newValidationError("time %q is not an offered slot", slot)
	}
	session.Draft.Time = slot
	session.Step = models.StepCollectDetails
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back steps the wizard to the previous selection. Only the field being
// re-chosen is discarded; earlier selections survive.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Step {
	case models.StepSelectDate:
		session.Draft.Service = nil
		session.Step = models.StepSelectService
	case models.StepSelectTime:
		session.Draft.Date = nil
		session.Step = models.StepSelectDate
	case models.StepCollectDetails:
		session.Draft.Time = ""
		session.Step = models.StepSelectTime
	default:
		return nil, newValidationError("cannot go back from step %s", session.Step)
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm finalizes the booking. The reservation write is the sole durable
// side effect; on failure the session stays on collect_details with the
// draft intact and the error is retryable. Confirmed is only reached once
// the store acknowledges the write.
func (s *DefaultWizardService) Confirm(ctx context.Context, sessionID string, name, phone string) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCollectDetails {
		return nil, newValidationError("cannot confirm at step %s", session.Step)
	}
	if session.Draft.Service == nil || session.Draft.Date == nil || session.Draft.Time == "" {
		return nil, newValidationError("service, date and time must all be selected before confirming")
	}
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return nil, newValidationError("name and phone are both required")
	}
	session.Draft.Name = name
	session.Draft.Phone = phone

	reservation := models.Reservation{
		BarberID: session.BarberID,
		Service:  *session.Draft.Service,
		Date:     session.Draft.Date.Full,
		Time:     session.Draft.Time,
		Name:     name,
		Phone:    phone,
	}
	id, err := s.Reservations.Create(ctx, &reservation)
	if err != nil {
		session.LastError = "Failed to save booking."
		if saveErr := s.save(ctx, session); saveErr != nil {
			s.Logger.Error("failed to persist session after write failure",
				zap.String("sessionId", session.SessionID), zap.Error(saveErr))
		}
		return session, &WriteError{Err: err}
	}

	session.ReservationID = id
	session.LastError = ""
	session.Step = models.StepConfirmed
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	s.emitReservationCreated(reservation)
	return session, nil
}

// Reset clears the entire draft after a confirmed booking so the same
// session can book another appointment.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirmed {
		return nil, newValidationError("cannot reset at step %s", session.Step)
	}
	session.Draft = models.BookingDraft{}
	session.ReservationID = ""
	session.LastError = ""
	session.Step = models.StepSelectService
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards the session. An in-flight reservation write, if any, still
// completes or fails on its own.
func (s *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to discard wizard session: %w", err)
	}
	return nil
}

// emitReservationCreated hands the booking to the notification worker.
// Best effort: enqueue failures are logged, never surfaced.
func (s *DefaultWizardService) emitReservationCreated(res models.Reservation) {
	if s.Events == nil {
		return
	}
	task, err := tasks.NewReservationCreatedTask(res)
	if err != nil {
		s.Logger.Error("failed to build reservation-created task",
			zap.String("reservationId", res.ID), zap.Error(err))
		return
	}
	if _, err := s.Events.Enqueue(task); err != nil {
		s.Logger.Error("failed to enqueue reservation-created task",
			zap.String("reservationId", res.ID), zap.Error(err))
	}
}

func (s *DefaultWizardService) load(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.Sessions.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *DefaultWizardService) save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sessionKey(session.SessionID), data, s.ttl()).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}
