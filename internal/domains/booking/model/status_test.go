package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   model.BookingStatus
		to     model.BookingStatus
		wantOK bool
	}{
		{name: "confirmed to checked in", from: model.StatusConfirmed, to: model.StatusCheckedIn, wantOK: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, wantOK: true},
		{name: "confirmed to no show", from: model.StatusConfirmed, to: model.StatusNoShow, wantOK: true},
		{name: "confirmed to checked out", from: model.StatusConfirmed, to: model.StatusCheckedOut, wantOK: false},
		{name: "checked in to checked out", from: model.StatusCheckedIn, to: model.StatusCheckedOut, wantOK: true},
		{name: "checked in to cancelled", from: model.StatusCheckedIn, to: model.StatusCancelled, wantOK: true},
		{name: "checked in to no show", from: model.StatusCheckedIn, to: model.StatusNoShow, wantOK: false},
		{name: "checked out is terminal", from: model.StatusCheckedOut, to: model.StatusCheckedIn, wantOK: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, wantOK: false},
		{name: "no show is terminal", from: model.StatusNoShow, to: model.StatusConfirmed, wantOK: false},
		{name: "unknown status", from: model.BookingStatus("Bogus"), to: model.StatusCheckedIn, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOK, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, model.StatusConfirmed.IsTerminal())
	assert.False(t, model.StatusCheckedIn.IsTerminal())
	assert.True(t, model.StatusCheckedOut.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.True(t, model.StatusNoShow.IsTerminal())
	assert.True(t, model.BookingStatus("Bogus").IsTerminal())
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, model.StatusConfirmed.Active())
	assert.True(t, model.StatusCheckedIn.Active())
	assert.False(t, model.StatusCheckedOut.Active())
	assert.False(t, model.StatusCancelled.Active())
	assert.False(t, model.StatusNoShow.Active())
}

func TestIsValidDuration(t *testing.T) {
	for _, hours := range model.ValidDurations {
		assert.True(t, model.IsValidDuration(hours))
	}

	assert.False(t, model.IsValidDuration(0))
	assert.False(t, model.IsValidDuration(6))
	assert.False(t, model.IsValidDuration(48))
	assert.False(t, model.IsValidDuration(-3))
}
