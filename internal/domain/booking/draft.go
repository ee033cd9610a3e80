package booking

import (
	"github.com/google/uuid"
)

// FormState tracks the booking form lifecycle: Editing -> Submitting ->
// Confirmed, with failed submissions falling back to Editing.
type FormState string

const (
	FormEditing    FormState = "editing"
	FormSubmitting FormState = "submitting"
	FormConfirmed  FormState = "confirmed"
)

// Draft is the in-progress booking form state. It is a value: Apply returns
// a new Draft and never mutates the receiver, so every transition is
// replayable in tests.
type Draft struct {
	Hotel           HotelSnapshot
	CheckIn         DateValue
	CheckOut        DateValue
	Rooms           int
	Guests          int
	SpecialRequests string
	State           FormState
	SubmitError     string
	ConfirmedID     uuid.UUID
}

// NewDraft seeds the form the way the booking screen opens: tonight for one
// night, one room, two guests.
func NewDraft(hotel HotelSnapshot, today DateValue) Draft {
	return Draft{
		Hotel:    hotel,
		CheckIn:  today,
		CheckOut: today.AddDays(1),
		Rooms:    1,
		Guests:   2,
		State:    FormEditing,
	}
}

// Event is a user or collaborator input driving the form state machine.
type Event interface {
	isFormEvent()
}

type (
	// CheckInEdited carries raw text; parse failures keep the previous value
	// because the user may still be mid-typing.
	CheckInEdited  struct{ Text string }
	CheckOutEdited struct{ Text string }
	RoomsStepped   struct{ Delta int }
	GuestsStepped  struct{ Delta int }
	RequestsEdited struct{ Text string }
	SubmitPressed  struct{}
	// SubmitSucceeded and SubmitFailed are the repository's responses to the
	// in-flight create.
	SubmitSucceeded struct{ BookingID uuid.UUID }
	SubmitFailed    struct{ Reason string }
)

func (CheckInEdited) isFormEvent()   {}
func (CheckOutEdited) isFormEvent()  {}
func (RoomsStepped) isFormEvent()    {}
func (GuestsStepped) isFormEvent()   {}
func (RequestsEdited) isFormEvent()  {}
func (SubmitPressed) isFormEvent()   {}
func (SubmitSucceeded) isFormEvent() {}
func (SubmitFailed) isFormEvent()    {}

// Apply is the pure transition function for the booking form. today is the
// caller's current calendar date; it is only consulted when the event
// arrives, so a committed check-in is not re-validated as midnight passes
// with the form open.
func (d Draft) Apply(ev Event, today DateValue) Draft {
	switch d.State {
	case FormSubmitting:
		// Exactly one submission may be in flight; edits and repeated submits
		// are dropped until the repository answers.
		switch e := ev.(type) {
		case SubmitSucceeded:
			d.State = FormConfirmed
			d.ConfirmedID = e.BookingID
			d.SubmitError = ""
		case SubmitFailed:
			d.State = FormEditing
			d.SubmitError = e.Reason
		}
		return d
	case FormConfirmed:
		return d
	}

	switch e := ev.(type) {
	case CheckInEdited:
		parsed, err := ParseDate(e.Text)
		if err != nil {
			return d
		}
		if parsed.Before(today) {
			return d
		}
		d.CheckIn = parsed
		if !d.CheckOut.After(parsed) {
			d.CheckOut = parsed.AddDays(1)
		}
	case CheckOutEdited:
		parsed, err := ParseDate(e.Text)
		if err != nil {
			return d
		}
		if !parsed.After(d.CheckIn) {
			return d
		}
		d.CheckOut = parsed
	case RoomsStepped:
		d.Rooms = max(1, d.Rooms+e.Delta)
	case GuestsStepped:
		d.Guests = max(1, d.Guests+e.Delta)
	case RequestsEdited:
		d.SpecialRequests = e.Text
	case SubmitPressed:
		if err := ValidateDraft(d); err != nil {
			d.SubmitError = err.Error()
			return d
		}
		d.State = FormSubmitting
		d.SubmitError = ""
	case SubmitFailed:
		// A late failure response for a submission we no longer track still
		// surfaces to the user.
		d.SubmitError = e.Reason
	}
	return d
}

// ValidateDraft gates submission. Checks short-circuit in a fixed order:
// date range, then rooms, then guests.
func ValidateDraft(d Draft) error {
	if !d.CheckOut.After(d.CheckIn) {
		return ErrInvalidStayRange
	}
	if d.Rooms < 1 {
		return ErrNoRooms
	}
	if d.Guests < 1 {
		return ErrNoGuests
	}
	return nil
}

// Stay returns the validated range for the current field values.
func (d Draft) Stay() (StayRange, error) {
	return NewStayRange(d.CheckIn, d.CheckOut)
}

// Quote recomputes the price breakdown from the current fields on every
// call; the form never displays a cached total.
func (d Draft) Quote() PriceBreakdown {
	return Breakdown(d.Hotel.NightlyRate, d.CheckIn.DaysUntil(d.CheckOut), d.Rooms)
}
