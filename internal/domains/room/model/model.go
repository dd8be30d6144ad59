package model

import "frontdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldRoomTypeID = "room_type_id"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldImage      = "image"
	FieldActive     = "active"
)

// RoomStatus values. Status is mostly derived from booking events; direct
// writes are restricted to privileged operations.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
	StatusOutOfOrder  = "Out of Order"
)

var validStatuses = []string{StatusAvailable, StatusOccupied, StatusMaintenance, StatusOutOfOrder}

func IsValidStatus(status string) bool {
	for _, s := range validStatuses {
		if s == status {
			return true
		}
	}

	return false
}

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	RoomTypeID string `db:"room_type_id"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	Image      string `db:"image"`
	Active     bool   `db:"active"`
	model.Metadata
}
