package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldBookingNumber      = "booking_number"
	FieldRoomID             = "room_id"
	FieldGuestFirstName     = "guest_first_name"
	FieldGuestLastName      = "guest_last_name"
	FieldGuestPhone         = "guest_phone"
	FieldGuestIDType        = "guest_id_type"
	FieldGuestIDNumber      = "guest_id_number"
	FieldCheckInDate        = "check_in_date"
	FieldCheckOutDate       = "check_out_date"
	FieldActualCheckIn      = "actual_check_in"
	FieldActualCheckOut     = "actual_check_out"
	FieldDurationHours      = "duration_hours"
	FieldTotalAmount        = "total_amount"
	FieldPaidAmount         = "paid_amount"
	FieldBalance            = "balance"
	FieldPaymentStatus      = "payment_status"
	FieldStatus             = "status"
	FieldCancellationReason = "cancellation_reason"
	FieldCancellationDate   = "cancellation_date"
)

// Booking is a reservation of one room for a fixed-duration stay. The guest
// identity fields are a snapshot captured at booking time, independent of the
// guest directory record.
type Booking struct {
	ID                 string     `db:"id"`
	BookingNumber      string     `db:"booking_number"`
	RoomID             string     `db:"room_id"`
	GuestFirstName     string     `db:"guest_first_name"`
	GuestLastName      string     `db:"guest_last_name"`
	GuestPhone         string     `db:"guest_phone"`
	GuestIDType        string     `db:"guest_id_type"`
	GuestIDNumber      string     `db:"guest_id_number"`
	CheckInDate        time.Time  `db:"check_in_date"`
	CheckOutDate       time.Time  `db:"check_out_date"`
	ActualCheckIn      *time.Time `db:"actual_check_in"`
	ActualCheckOut     *time.Time `db:"actual_check_out"`
	DurationHours      int        `db:"duration_hours"`
	TotalAmount        float64    `db:"total_amount"`
	PaidAmount         float64    `db:"paid_amount"`
	Balance            float64    `db:"balance"`
	PaymentStatus      string     `db:"payment_status"`
	Status             string     `db:"status"`
	CancellationReason *string    `db:"cancellation_reason"`
	CancellationDate   *time.Time `db:"cancellation_date"`
	model.Metadata
}
