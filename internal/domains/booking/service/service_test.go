package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	guestModel "frontdesk/internal/domains/guest/model"
	guestServiceMocks "frontdesk/internal/domains/guest/service/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
)

func availableRoom(id string) roomModel.Room {
	return roomModel.Room{
		ID:     id,
		Status: roomModel.StatusAvailable,
		Active: true,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuest := guestServiceMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockGuest, cfg, mockCache, mockOtel, mockKafka)

	validReq := dto.CreateBookingRequest{
		RoomID:         "room-1",
		GuestFirstName: "Jane",
		GuestLastName:  "Doe",
		GuestPhone:     "+628123456789",
		GuestIDType:    model.IDTypePassport,
		GuestIDNumber:  "A1234567",
		CheckInDate:    "2025-03-14T14:00:00Z",
		DurationHours:  8,
		TotalAmount:    250,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("room-1"), nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
				mockRoomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockGuest.EXPECT().
					Upsert(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "invalid stay duration",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.DurationHours = 6

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid total amount",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.TotalAmount = 0

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "invalid initial status",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.Status = string(model.StatusCheckedOut)

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "malformed check-in date",
			req: func() dto.CreateBookingRequest {
				req := validReq
				req.CheckInDate = "14-03-2025"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func() {
				room := availableRoom("room-1")
				room.Status = roomModel.StatusMaintenance

				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "overlapping booking rejected",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("room-1"), nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("room-1"), nil)
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, string(model.StatusConfirmed), res.Status)
				assert.Equal(t, model.PaymentStatusPending, res.PaymentStatus)
				assert.Equal(t, 250.0, res.Balance)
				assert.NotEmpty(t, res.BookingNumber)

				checkIn, parseErr := time.Parse(time.RFC3339, res.CheckInDate)
				assert.NoError(t, parseErr)

				checkOut, parseErr := time.Parse(time.RFC3339, res.CheckOutDate)
				assert.NoError(t, parseErr)

				assert.True(t, checkOut.Equal(checkIn.Add(8*time.Hour)))
			}
		})
	}
}

func TestBookingService_Create_WalkIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuest := guestServiceMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockGuest, cfg, mockCache, mockOtel, mockKafka)

	mockRoomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(availableRoom("room-1"), nil)
	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			assert.Equal(t, string(model.StatusCheckedIn), booking.Status)
			assert.NotNil(t, booking.ActualCheckIn)

			return nil
		})
	mockRoomRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	mockGuest.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(guestModel.Guest{}, nil)
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	res, err := svc.Create(ctx, dto.CreateBookingRequest{
		RoomID:         "room-1",
		GuestFirstName: "Jane",
		GuestLastName:  "Doe",
		GuestIDType:    model.IDTypeNationalID,
		GuestIDNumber:  "3174091234567890",
		CheckInDate:    "2025-03-14T14:00:00Z",
		DurationHours:  3,
		TotalAmount:    100,
		PaidAmount:     100,
		Status:         string(model.StatusCheckedIn),
	})

	assert.NoError(t, err)
	assert.Equal(t, string(model.StatusCheckedIn), res.Status)
	assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)
	assert.Equal(t, 0.0, res.Balance)
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuest := guestServiceMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, mockGuest, cfg, mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "payment recorded settles balance",
			req:  dto.UpdateBookingRequest{PaidAmount: 250},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:          "booking-1",
						RoomID:      "room-1",
						Status:      string(model.StatusConfirmed),
						TotalAmount: 250,
					}, nil).
					Times(2)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, 0.0, fields[model.FieldBalance])
						assert.Equal(t, model.PaymentStatusPaid, fields[model.FieldPaymentStatus])

						return nil
					})
				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{PaidAmount: 100},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "terminal booking rejected",
			req:  dto.UpdateBookingRequest{PaidAmount: 100},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{
						ID:     "booking-1",
						RoomID: "room-1",
						Status: string(model.StatusCheckedOut),
					}, nil).
					Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
