package model

import "frontdesk/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldName          = "name"
	FieldBaseCapacity  = "base_capacity"
	FieldPriceHourly3  = "price_hourly3"
	FieldPriceHourly8  = "price_hourly8"
	FieldPriceHourly12 = "price_hourly12"
	FieldPriceDaily    = "price_daily"
	FieldPenalty       = "penalty"
	FieldActive        = "active"
)

// RoomType carries the price lookup table keyed by stay duration.
type RoomType struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	BaseCapacity  int     `db:"base_capacity"`
	PriceHourly3  float64 `db:"price_hourly3"`
	PriceHourly8  float64 `db:"price_hourly8"`
	PriceHourly12 float64 `db:"price_hourly12"`
	PriceDaily    float64 `db:"price_daily"`
	Penalty       float64 `db:"penalty"`
	Active        bool    `db:"active"`
	model.Metadata
}

// Rate resolves the price for a stay duration in hours. The second return is
// false for durations outside {3, 8, 12, 24}.
func (t RoomType) Rate(durationHours int) (float64, bool) {
	switch durationHours {
	case 3:
		return t.PriceHourly3, true
	case 8:
		return t.PriceHourly8, true
	case 12:
		return t.PriceHourly12, true
	case 24:
		return t.PriceDaily, true
	default:
		return 0, false
	}
}
