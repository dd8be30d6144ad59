package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/booking/model"
	gDto "frontdesk/shared/dto"
)

func TestOverlapFilter(t *testing.T) {
	checkIn := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	t.Run("without exclusion", func(t *testing.T) {
		group := model.OverlapFilter("room-1", checkIn, checkOut, "")

		assert.Equal(t, gDto.FilterGroupOperatorAnd, group.Operator)
		assert.Len(t, group.Filters, 4)

		statusFilter, ok := group.Filters[1].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldStatus, statusFilter.Field)
		assert.Equal(t, gDto.FilterOperatorIn, statusFilter.Operator)
		assert.Equal(t, model.ActiveStatuses(), statusFilter.Value)
	})

	t.Run("with exclusion", func(t *testing.T) {
		group := model.OverlapFilter("room-1", checkIn, checkOut, "booking-1")

		assert.Len(t, group.Filters, 5)

		excludeFilter, ok := group.Filters[4].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldID, excludeFilter.Field)
		assert.Equal(t, gDto.FilterOperatorNotEq, excludeFilter.Operator)
		assert.Equal(t, "booking-1", excludeFilter.Value)
	})

	t.Run("boundaries are inclusive", func(t *testing.T) {
		group := model.OverlapFilter("room-1", checkIn, checkOut, "")

		startFilter, ok := group.Filters[2].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldCheckInDate, startFilter.Field)
		assert.Equal(t, gDto.FilterOperatorLessEq, startFilter.Operator)
		assert.Equal(t, checkOut, startFilter.Value)

		endFilter, ok := group.Filters[3].(gDto.Filter)
		assert.True(t, ok)
		assert.Equal(t, model.FieldCheckOutDate, endFilter.Field)
		assert.Equal(t, gDto.FilterOperatorGreaterEq, endFilter.Operator)
		assert.Equal(t, checkIn, endFilter.Value)
	})
}
