package model

import (
	"time"

	gDto "frontdesk/shared/dto"
)

// OverlapFilter matches every other active booking on the room whose stay
// window overlaps [checkIn, checkOut). The boundary test is inclusive on both
// ends: back-to-back bookings sharing an exact instant count as conflicting,
// erring toward blocking rather than double-booking.
func OverlapFilter(roomID string, checkIn, checkOut time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    TableName,
		},
		gDto.Filter{
			Field:    FieldStatus,
			Operator: gDto.FilterOperatorIn,
			Value:    ActiveStatuses(),
			Table:    TableName,
		},
		gDto.Filter{
			Field:    FieldCheckInDate,
			ArgName:  "new_check_out",
			Operator: gDto.FilterOperatorLessEq,
			Value:    checkOut,
			Table:    TableName,
		},
		gDto.Filter{
			Field:    FieldCheckOutDate,
			ArgName:  "new_check_in",
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    checkIn,
			Table:    TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    FieldID,
			ArgName:  "exclude_id",
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
