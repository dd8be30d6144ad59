package service_test

import (
	"context"
	"sync"
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
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestServiceMocks "frontdesk/internal/domains/guest/service/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
)

type transitionFixture struct {
	svc      service.Booking
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	guest    *guestServiceMocks.MockGuest
	cache    *cacheMocks.MockRedisCache
}

func newTransitionFixture(t *testing.T) transitionFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuest := guestServiceMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return transitionFixture{
		svc:      service.New(mockRepo, mockRoomRepo, mockGuest, cfg, mockCache, mockOtel, mockKafka),
		repo:     mockRepo,
		roomRepo: mockRoomRepo,
		guest:    mockGuest,
		cache:    mockCache,
	}
}

func confirmedBooking() model.Booking {
	checkIn := time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC)

	return model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-20250314-001",
		RoomID:        "room-1",
		GuestIDType:   model.IDTypePassport,
		GuestIDNumber: "A1234567",
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.Add(8 * time.Hour),
		DurationHours: 8,
		TotalAmount:   250,
		Status:        string(model.StatusConfirmed),
	}
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestBookingService_CheckIn(t *testing.T) {
	t.Run("confirmed booking checks in", func(t *testing.T) {
		fix := newTransitionFixture(t)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, string(model.StatusCheckedIn), fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldActualCheckIn)

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

				return nil
			})

		assert.NoError(t, fix.svc.CheckIn(testContext(), "booking-1"))
	})

	t.Run("arrival time stamped once", func(t *testing.T) {
		fix := newTransitionFixture(t)

		arrived := time.Date(2025, 3, 14, 14, 5, 0, 0, time.UTC)
		booking := confirmedBooking()
		booking.ActualCheckIn = &arrived

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.NotContains(t, fields, model.FieldActualCheckIn)

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, fix.svc.CheckIn(testContext(), "booking-1"))
	})

	t.Run("checked out booking rejected", func(t *testing.T) {
		fix := newTransitionFixture(t)

		booking := confirmedBooking()
		booking.Status = string(model.StatusCheckedOut)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)

		assert.Error(t, fix.svc.CheckIn(testContext(), "booking-1"))
	})

	t.Run("missing booking", func(t *testing.T) {
		fix := newTransitionFixture(t)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		assert.Error(t, fix.svc.CheckIn(testContext(), "missing-id"))
	})

	t.Run("concurrent check-ins admit one guest", func(t *testing.T) {
		fix := newTransitionFixture(t)

		var mu sync.Mutex
		status := string(model.StatusConfirmed)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (model.Booking, error) {
				mu.Lock()
				defer mu.Unlock()

				booking := confirmedBooking()
				booking.Status = status

				return booking, nil
			}).
			AnyTimes()
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				mu.Lock()
				defer mu.Unlock()

				status = fields[model.FieldStatus].(string)

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		errs := make([]error, 2)

		var wg sync.WaitGroup
		for i := range errs {
			wg.Add(1)

			go func() {
				defer wg.Done()

				errs[i] = fix.svc.CheckIn(testContext(), "booking-1")
			}()
		}
		wg.Wait()

		rejected := 0
		for _, err := range errs {
			if err != nil {
				rejected++
			}
		}

		assert.Equal(t, 1, rejected)
	})
}

func TestBookingService_CheckOut(t *testing.T) {
	t.Run("checked in booking checks out", func(t *testing.T) {
		fix := newTransitionFixture(t)

		booking := confirmedBooking()
		booking.Status = string(model.StatusCheckedIn)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, string(model.StatusCheckedOut), fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldActualCheckOut)

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, roomModel.StatusMaintenance, fields[roomModel.FieldStatus])

				return nil
			})

		assert.NoError(t, fix.svc.CheckOut(testContext(), "booking-1"))
	})

	t.Run("confirmed booking rejected", func(t *testing.T) {
		fix := newTransitionFixture(t)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil).
			Times(2)

		assert.Error(t, fix.svc.CheckOut(testContext(), "booking-1"))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("confirmed booking cancels", func(t *testing.T) {
		fix := newTransitionFixture(t)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])
				assert.Equal(t, "Guest requested", fields[model.FieldCancellationReason])
				assert.Contains(t, fields, model.FieldCancellationDate)

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		err := fix.svc.Cancel(testContext(), dto.CancelBookingRequest{Reason: "Guest requested"}, "booking-1")
		assert.NoError(t, err)
	})

	t.Run("checked in booking cancels", func(t *testing.T) {
		fix := newTransitionFixture(t)

		booking := confirmedBooking()
		booking.Status = string(model.StatusCheckedIn)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := fix.svc.Cancel(testContext(), dto.CancelBookingRequest{Reason: "Overbooked"}, "booking-1")
		assert.NoError(t, err)
	})

	t.Run("terminal booking rejected", func(t *testing.T) {
		fix := newTransitionFixture(t)

		booking := confirmedBooking()
		booking.Status = string(model.StatusCancelled)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)

		err := fix.svc.Cancel(testContext(), dto.CancelBookingRequest{Reason: "Too late"}, "booking-1")
		assert.Error(t, err)
	})
}

func TestBookingService_MarkNoShow(t *testing.T) {
	t.Run("confirmed booking marked no-show", func(t *testing.T) {
		fix := newTransitionFixture(t)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedBooking(), nil).
			Times(2)
		fix.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, string(model.StatusNoShow), fields[model.FieldStatus])
				assert.Contains(t, fields, model.FieldCancellationDate)

				return nil
			})
		fix.guest.EXPECT().
			RecordNoShow(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req guestDto.UpsertGuestRequest, note string) error {
				assert.Equal(t, model.IDTypePassport, req.IDType)
				assert.Equal(t, "A1234567", req.IDNumber)
				assert.Contains(t, note, "BK-20250314-001")
				assert.Contains(t, note, "Additional notes: guest unreachable")

				return nil
			})
		fix.roomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		err := fix.svc.MarkNoShow(testContext(), dto.NoShowBookingRequest{Notes: "guest unreachable"}, "booking-1")
		assert.NoError(t, err)
	})

	t.Run("checked in booking rejected", func(t *testing.T) {
		fix := newTransitionFixture(t)

		booking := confirmedBooking()
		booking.Status = string(model.StatusCheckedIn)

		fix.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil).
			Times(2)

		err := fix.svc.MarkNoShow(testContext(), dto.NoShowBookingRequest{}, "booking-1")
		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	fix := newTransitionFixture(t)

	fix.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(confirmedBooking(), nil).
		Times(2)
	fix.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
			assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])
			assert.Equal(t, "Booking deleted", fields[model.FieldCancellationReason])

			return nil
		})
	fix.roomRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, fix.svc.Delete(testContext(), "booking-1"))
}
