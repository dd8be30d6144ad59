package model_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
)

func TestDerive_Balance(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		totalAmount       float64
		paidAmount        float64
		wantBalance       float64
		wantPaymentStatus string
	}{
		{
			name:              "nothing paid",
			totalAmount:       300,
			paidAmount:        0,
			wantBalance:       300,
			wantPaymentStatus: model.PaymentStatusPending,
		},
		{
			name:              "partially paid",
			totalAmount:       300,
			paidAmount:        100,
			wantBalance:       200,
			wantPaymentStatus: model.PaymentStatusPartial,
		},
		{
			name:              "fully paid",
			totalAmount:       300,
			paidAmount:        300,
			wantBalance:       0,
			wantPaymentStatus: model.PaymentStatusPaid,
		},
		{
			name:              "overpaid",
			totalAmount:       300,
			paidAmount:        350,
			wantBalance:       -50,
			wantPaymentStatus: model.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{
				TotalAmount: tt.totalAmount,
				PaidAmount:  tt.paidAmount,
				CheckInDate: now,
			}

			derived := model.Derive(booking, now)

			assert.Equal(t, tt.wantBalance, derived.Balance)
			assert.Equal(t, tt.wantPaymentStatus, derived.PaymentStatus)
		})
	}
}

func TestDerive_CheckOutDate(t *testing.T) {
	checkIn := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		durationHours int
		wantCheckOut  time.Time
	}{
		{name: "3 hour stay", durationHours: 3, wantCheckOut: checkIn.Add(3 * time.Hour)},
		{name: "8 hour stay", durationHours: 8, wantCheckOut: checkIn.Add(8 * time.Hour)},
		{name: "12 hour stay", durationHours: 12, wantCheckOut: checkIn.Add(12 * time.Hour)},
		{name: "daily stay", durationHours: 24, wantCheckOut: checkIn.Add(24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{
				CheckInDate:   checkIn,
				DurationHours: tt.durationHours,
			}

			derived := model.Derive(booking, checkIn)

			assert.Equal(t, tt.wantCheckOut, derived.CheckOutDate)
		})
	}
}

func TestDerive_CheckOutDateFixedOnceSet(t *testing.T) {
	checkIn := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)
	existingCheckOut := checkIn.Add(8 * time.Hour)

	booking := model.Booking{
		CheckInDate:   checkIn,
		CheckOutDate:  existingCheckOut,
		DurationHours: 12,
	}

	derived := model.Derive(booking, checkIn)

	assert.Equal(t, existingCheckOut, derived.CheckOutDate)
}

func TestDerive_BookingNumber(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("generated when absent", func(t *testing.T) {
		derived := model.Derive(model.Booking{CheckInDate: now}, now)

		assert.True(t, strings.HasPrefix(derived.BookingNumber, "BK-20250314-"))
		assert.Len(t, derived.BookingNumber, len("BK-20250314-000"))
	})

	t.Run("preserved when present", func(t *testing.T) {
		booking := model.Booking{
			BookingNumber: "BK-20250101-042",
			CheckInDate:   now,
		}

		derived := model.Derive(booking, now)

		assert.Equal(t, "BK-20250101-042", derived.BookingNumber)
	})
}

func TestDerive_Idempotent(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	booking := model.Booking{
		CheckInDate:   now,
		DurationHours: 8,
		TotalAmount:   250,
		PaidAmount:    100,
	}

	once := model.Derive(booking, now)
	twice := model.Derive(once, now.Add(time.Hour))

	assert.Equal(t, once, twice)
}
