package booking

type Status string

const (
	// StatusConfirmed is assigned at creation; this core never transitions a
	// booking afterwards. Cancellation belongs to an external operations flow.
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}
