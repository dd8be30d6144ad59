package model

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const bookingNumberSuffixRange = 1000

// Derive recomputes every derived field on the booking and returns the
// result. It is a pure function invoked by every mutation path so the
// invariants hold after any save:
//
//   - balance = totalAmount - paidAmount
//   - paymentStatus follows paidAmount relative to totalAmount
//   - checkOutDate = checkInDate + duration, fixed once set
//   - bookingNumber generated once when absent
func Derive(booking Booking, now time.Time) Booking {
	booking.Balance = booking.TotalAmount - booking.PaidAmount

	switch {
	case booking.PaidAmount <= 0:
		booking.PaymentStatus = PaymentStatusPending
	case booking.PaidAmount < booking.TotalAmount:
		booking.PaymentStatus = PaymentStatusPartial
	default:
		booking.PaymentStatus = PaymentStatusPaid
	}

	if booking.CheckOutDate.IsZero() {
		booking.CheckOutDate = booking.CheckInDate.Add(time.Duration(booking.DurationHours) * time.Hour)
	}

	if booking.BookingNumber == "" {
		booking.BookingNumber = NewBookingNumber(now)
	}

	return booking
}

// NewBookingNumber builds a human-readable booking label BK-YYYYMMDD-NNN.
// The suffix is random and the label is a display identifier, not a unique key.
func NewBookingNumber(now time.Time) string {
	return fmt.Sprintf("BK-%s-%03d", now.Format("20060102"), rand.IntN(bookingNumberSuffixRange))
}
