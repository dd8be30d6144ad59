package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/roomtype/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomTypeRequest struct {
	Name          string  `json:"name"           validate:"required,max=100"`
	BaseCapacity  int     `json:"base_capacity"  validate:"required,gte=1"`
	PriceHourly3  float64 `json:"price_hourly3"  validate:"required,gt=0"`
	PriceHourly8  float64 `json:"price_hourly8"  validate:"required,gt=0"`
	PriceHourly12 float64 `json:"price_hourly12" validate:"required,gt=0"`
	PriceDaily    float64 `json:"price_daily"    validate:"required,gt=0"`
	Penalty       float64 `json:"penalty"        validate:"omitempty,gte=0"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:            uuid.NewString(),
		Name:          c.Name,
		BaseCapacity:  c.BaseCapacity,
		PriceHourly3:  c.PriceHourly3,
		PriceHourly8:  c.PriceHourly8,
		PriceHourly12: c.PriceHourly12,
		PriceDaily:    c.PriceDaily,
		Penalty:       c.Penalty,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name          string  `db:"name"           json:"name"           validate:"omitempty,max=100"`
	BaseCapacity  int     `db:"base_capacity"  json:"base_capacity"  validate:"omitempty,gte=1"`
	PriceHourly3  float64 `db:"price_hourly3"  json:"price_hourly3"  validate:"omitempty,gt=0"`
	PriceHourly8  float64 `db:"price_hourly8"  json:"price_hourly8"  validate:"omitempty,gt=0"`
	PriceHourly12 float64 `db:"price_hourly12" json:"price_hourly12" validate:"omitempty,gt=0"`
	PriceDaily    float64 `db:"price_daily"    json:"price_daily"    validate:"omitempty,gt=0"`
	Penalty       float64 `db:"penalty"        json:"penalty"        validate:"omitempty,gte=0"`
}

type RoomTypeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	BaseCapacity  int     `json:"base_capacity"`
	PriceHourly3  float64 `json:"price_hourly3"`
	PriceHourly8  float64 `json:"price_hourly8"`
	PriceHourly12 float64 `json:"price_hourly12"`
	PriceDaily    float64 `json:"price_daily"`
	Penalty       float64 `json:"penalty"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.BaseCapacity = mod.BaseCapacity
	r.PriceHourly3 = mod.PriceHourly3
	r.PriceHourly8 = mod.PriceHourly8
	r.PriceHourly12 = mod.PriceHourly12
	r.PriceDaily = mod.PriceDaily
	r.Penalty = mod.Penalty
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type RateResponse struct {
	RoomTypeID    string  `json:"room_type_id"`
	DurationHours int     `json:"duration_hours"`
	Rate          float64 `json:"rate"`
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
