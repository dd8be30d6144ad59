package dto

import (
	"time"

	"github.com/google/uuid"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID         string  `json:"room_id"          validate:"required"`
	GuestFirstName string  `json:"guest_first_name" validate:"required,max=100"`
	GuestLastName  string  `json:"guest_last_name"  validate:"required,max=100"`
	GuestPhone     string  `json:"guest_phone"      validate:"omitempty,max=20"`
	GuestIDType    string  `json:"guest_id_type"    validate:"required,oneof=Passport 'Driver License' 'National ID' Other"`
	GuestIDNumber  string  `json:"guest_id_number"  validate:"required,max=50"`
	CheckInDate    string  `json:"check_in_date"    validate:"required"`
	DurationHours  int     `json:"duration_hours"   validate:"required"`
	TotalAmount    float64 `json:"total_amount"     validate:"omitempty"`
	PaidAmount     float64 `json:"paid_amount"      validate:"omitempty,gte=0"`
	Status         string  `json:"status"           validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(time.RFC3339, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusConfirmed
	if c.Status != "" {
		status = model.BookingStatus(c.Status)
	}

	booking := model.Booking{
		ID:             uuid.NewString(),
		RoomID:         c.RoomID,
		GuestFirstName: c.GuestFirstName,
		GuestLastName:  c.GuestLastName,
		GuestPhone:     c.GuestPhone,
		GuestIDType:    c.GuestIDType,
		GuestIDNumber:  c.GuestIDNumber,
		CheckInDate:    checkIn,
		DurationHours:  c.DurationHours,
		TotalAmount:    c.TotalAmount,
		PaidAmount:     c.PaidAmount,
		Status:         string(status),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	return model.Derive(booking, timezone.Now()), nil
}

// UpdateBookingRequest is a plain field patch. Booking status is deliberately
// absent: status only moves through the dedicated transition operations.
type UpdateBookingRequest struct {
	GuestFirstName string  `db:"guest_first_name" json:"guest_first_name" validate:"omitempty,max=100"`
	GuestLastName  string  `db:"guest_last_name"  json:"guest_last_name"  validate:"omitempty,max=100"`
	GuestPhone     string  `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	GuestIDType    string  `db:"guest_id_type"    json:"guest_id_type"    validate:"omitempty,oneof=Passport 'Driver License' 'National ID' Other"`
	GuestIDNumber  string  `db:"guest_id_number"  json:"guest_id_number"  validate:"omitempty,max=50"`
	TotalAmount    float64 `db:"total_amount"     json:"total_amount"     validate:"omitempty,gt=0"`
	PaidAmount     float64 `db:"paid_amount"      json:"paid_amount"      validate:"omitempty,gte=0"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type NoShowBookingRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                 string  `json:"id"`
	BookingNumber      string  `json:"booking_number"`
	RoomID             string  `json:"room_id"`
	GuestFirstName     string  `json:"guest_first_name"`
	GuestLastName      string  `json:"guest_last_name"`
	GuestPhone         string  `json:"guest_phone"`
	GuestIDType        string  `json:"guest_id_type"`
	GuestIDNumber      string  `json:"guest_id_number"`
	CheckInDate        string  `json:"check_in_date"`
	CheckOutDate       string  `json:"check_out_date"`
	ActualCheckIn      *string `json:"actual_check_in"`
	ActualCheckOut     *string `json:"actual_check_out"`
	DurationHours      int     `json:"duration_hours"`
	TotalAmount        float64 `json:"total_amount"`
	PaidAmount         float64 `json:"paid_amount"`
	Balance            float64 `json:"balance"`
	PaymentStatus      string  `json:"payment_status"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellation_reason"`
	CancellationDate   *string `json:"cancellation_date"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.BookingNumber = mod.BookingNumber
	r.RoomID = mod.RoomID
	r.GuestFirstName = mod.GuestFirstName
	r.GuestLastName = mod.GuestLastName
	r.GuestPhone = mod.GuestPhone
	r.GuestIDType = mod.GuestIDType
	r.GuestIDNumber = mod.GuestIDNumber
	r.CheckInDate = timezone.Format(mod.CheckInDate, time.RFC3339)
	r.CheckOutDate = timezone.Format(mod.CheckOutDate, time.RFC3339)
	r.ActualCheckIn = formatOptional(mod.ActualCheckIn)
	r.ActualCheckOut = formatOptional(mod.ActualCheckOut)
	r.DurationHours = mod.DurationHours
	r.TotalAmount = mod.TotalAmount
	r.PaidAmount = mod.PaidAmount
	r.Balance = mod.Balance
	r.PaymentStatus = mod.PaymentStatus
	r.Status = mod.Status
	r.CancellationReason = mod.CancellationReason
	r.CancellationDate = formatOptional(mod.CancellationDate)
	r.Metadata.FromModel(mod.Metadata)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, time.RFC3339)

	return &formatted
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
