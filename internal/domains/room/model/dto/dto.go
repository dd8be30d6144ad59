package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber string                `json:"room_number"  validate:"required,max=20"`
	RoomTypeID string                `json:"room_type_id" validate:"required"`
	Floor      int                   `json:"floor"        validate:"omitempty,gte=0"`
	Status     string                `json:"status"       validate:"omitempty"`
	Image      *multipart.FileHeader `json:"-"            validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	ImageFile  multipart.File        `json:"-"            validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:         uuid.NewString(),
		RoomNumber: c.RoomNumber,
		RoomTypeID: c.RoomTypeID,
		Floor:      c.Floor,
		Status:     status,
		Image:      imageURL,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber string                `db:"room_number"  json:"room_number"  validate:"omitempty,max=20"`
	RoomTypeID string                `db:"room_type_id" json:"room_type_id" validate:"omitempty"`
	Floor      int                   `db:"floor"        json:"floor"        validate:"omitempty,gte=0"`
	Image      *multipart.FileHeader `json:"-"          validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	ImageFile  multipart.File        `json:"-"          validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomNumber string `json:"room_number"`
	RoomTypeID string `json:"room_type_id"`
	Floor      int    `json:"floor"`
	Status     string `json:"status"`
	Image      string `json:"image"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.RoomNumber = mod.RoomNumber
	r.RoomTypeID = mod.RoomTypeID
	r.Floor = mod.Floor
	r.Status = mod.Status
	r.Image = mod.Image
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
