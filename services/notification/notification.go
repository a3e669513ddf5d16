package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"thecut/models"
)

const webhookTimeout = 10 * time.Second

// HandleReservationCreatedTask is the asynq handler for reservation:created.
// It always returns nil: notification delivery is best effort and must never
// be retried into user-visible state.
func (n *DefaultReservationNotifier) HandleReservationCreatedTask(ctx context.Context, task *asynq.Task) error {
	var res models.Reservation
	if err := json.Unmarshal(task.Payload(), &res); err != nil {
		n.Logger.Error("invalid reservation-created payload", zap.Error(err))
		return nil
	}
	n.NotifyReservationCreated(ctx, res)
	return nil
}

// NotifyReservationCreated resolves the barber's profile and fires whichever
// hooks it carries.
func (n *DefaultReservationNotifier) NotifyReservationCreated(ctx context.Context, res models.Reservation) {
	profile, err := n.Barbers.GetBySlug(ctx, res.BarberID)
	if err != nil {
		n.Logger.Warn("skipping notifications, barber profile unavailable",
			zap.String("barberId", res.BarberID), zap.Error(err))
		return
	}

	if profile.Webhook != "" {
		if err := n.postWebhook(ctx, profile.Webhook, res); err != nil {
			n.Logger.Warn("webhook delivery failed",
				zap.String("barberId", res.BarberID),
				zap.String("reservationId", res.ID),
				zap.Error(err))
		}
	}

	if profile.FCMToken != "" && n.Messaging != nil {
		if err := n.pushToBarber(ctx, profile.FCMToken, res); err != nil {
			n.Logger.Warn("push delivery failed",
				zap.String("barberId", res.BarberID),
				zap.String("reservationId", res.ID),
				zap.Error(err))
		}
	}
}

func (n *DefaultReservationNotifier) postWebhook(ctx context.Context, url string, res models.Reservation) error {
	body, err := json.Marshal(res)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, webhookTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := n.Client
	if client == nil {
		client = &http.Client{Timeout: webhookTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}

func (n *DefaultReservationNotifier) pushToBarber(ctx context.Context, token string, res models.Reservation) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "New booking",
			Body:  fmt.Sprintf("%s booked %s on %s at %s", res.Name, res.Service.Name, res.Date, res.Time),
		},
		Data: map[string]string{
			"reservationId": res.ID,
			"date":          res.Date,
			"time":          res.Time,
		},
	}
	_, err := n.Messaging.Send(ctx, msg)
	return err
}
