package dto

import (
	"github.com/google/uuid"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type UpsertGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"omitempty,max=100"`
	Phone     string `json:"phone"      validate:"required,max=32"`
	Email     string `json:"email"      validate:"omitempty,email"`
	IDType    string `json:"id_type"    validate:"required,oneof=Passport 'Driver License' 'National ID' Other"`
	IDNumber  string `json:"id_number"  validate:"required,max=64"`
}

func (u *UpsertGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		Email:     u.Email,
		IDType:    u.IDType,
		IDNumber:  u.IDNumber,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=32"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email"`
	Notes     string `db:"notes"      json:"notes"      validate:"omitempty,max=2000"`
}

type GuestResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IDType    string `json:"id_type"`
	IDNumber  string `json:"id_number"`
	Notes     string `json:"notes"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(mod model.Guest) {
	r.ID = mod.ID
	r.FirstName = mod.FirstName
	r.LastName = mod.LastName
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.IDType = mod.IDType
	r.IDNumber = mod.IDNumber
	r.Notes = mod.Notes
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
