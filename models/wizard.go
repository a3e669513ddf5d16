package models

// WizardStep names a state of the booking wizard. Steps form a strict linear
// order; each forward transition is gated by the draft field it collects.
type WizardStep string

const (
	StepSelectService  WizardStep = "select_service"
	StepSelectDate     WizardStep = "select_date"
	StepSelectTime     WizardStep = "select_time"
	StepCollectDetails WizardStep = "collect_details"
	StepConfirmed      WizardStep = "confirmed"
)

// BookingDraft is the wizard-local, mutable selection state. Each field is
// required, in order, only at the step that collects it.
type BookingDraft struct {
	Service *Service     `json:"service,omitempty"`
	Date    *CalendarDay `json:"date,omitempty"`
	Time    string       `json:"time,omitempty"`
	Name    string       `json:"name"`
	Phone   string       `json:"phone"`
}

// WizardSession holds one client's in-progress booking between HTTP calls.
// It is owned exclusively by that session and stored as JSON in Redis with a
// TTL; an expired session simply restarts the wizard.
type WizardSession struct {
	SessionID     string        `json:"sessionId"`
	BarberID      string        `json:"barberId"`
	Barber        BarberProfile `json:"barber"`
	Step          WizardStep    `json:"step"`
	Draft         BookingDraft  `json:"draft"`
	ReservationID string        `json:"reservationId,omitempty"`
	LastError     string        `json:"lastError,omitempty"` // retryable write failure surfaced to the client
}
