package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the booking counts against room availability.
// Cancelled bookings release their dates.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusPaid
}

// transitions is the closed transition table: pending may become paid or
// cancelled, paid may only be cancelled, cancelled is terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusCancelled},
	StatusCancelled: {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
