package model

// BookingStatus is the state variable of the booking lifecycle.
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "Confirmed"
	StatusCheckedIn  BookingStatus = "Checked In"
	StatusCheckedOut BookingStatus = "Checked Out"
	StatusCancelled  BookingStatus = "Cancelled"
	StatusNoShow     BookingStatus = "No Show"
)

// validTransitions defines the booking lifecycle. Checked Out, Cancelled and
// No Show are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, exists := validTransitions[s]

	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return false
	}

	for _, t := range allowed {
		if t == target {
			return true
		}
	}

	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	allowed, exists := validTransitions[s]
	if !exists {
		return true
	}

	return len(allowed) == 0
}

// Active returns true while the booking holds its room.
func (s BookingStatus) Active() bool {
	return s == StatusConfirmed || s == StatusCheckedIn
}

// ActiveStatuses are the statuses that participate in conflict detection.
func ActiveStatuses() []string {
	return []string{string(StatusConfirmed), string(StatusCheckedIn)}
}

const (
	PaymentStatusPending = "Pending"
	PaymentStatusPartial = "Partial"
	PaymentStatusPaid    = "Paid"
)

const (
	IDTypePassport      = "Passport"
	IDTypeDriverLicense = "Driver License"
	IDTypeNationalID    = "National ID"
	IDTypeOther         = "Other"
)

// ValidDurations are the allowed stay lengths in hours.
var ValidDurations = []int{3, 8, 12, 24}

func IsValidDuration(hours int) bool {
	for _, d := range ValidDurations {
		if d == hours {
			return true
		}
	}

	return false
}
