package reservation

import "errors"

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusUnpaid    Status = "UNPAID"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusUnpaid, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// BlocksAvailability reports whether a reservation in this status occupies its
// table slot for availability and kitchen reports. Only confirmed bookings do.
func (s Status) BlocksAvailability() bool {
	return s == StatusConfirmed
}

// BlockingStatuses lists every status for which BlocksAvailability is true.
func BlockingStatuses() []Status {
	return []Status{StatusConfirmed}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
