package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
)

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
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

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func upsertReq() dto.UpsertGuestRequest {
	return dto.UpsertGuestRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "+628123456789",
		Email:     "jane@example.com",
		IDType:    "Passport",
		IDNumber:  "A1234567",
	}
}

func TestGuestService_Upsert(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("inserts new guest", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "Jane", guest.FirstName)
				assert.True(t, guest.Active)

				return nil
			})

		guest, err := svc.Upsert(ctx, upsertReq())

		assert.NoError(t, err)
		assert.Equal(t, "A1234567", guest.IDNumber)
	})

	t.Run("existing guest left untouched", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{
				ID:        "guest-1",
				FirstName: "Jayne",
				Phone:     "+628000000000",
				IDType:    "Passport",
				IDNumber:  "A1234567",
			}, nil)

		guest, err := svc.Upsert(ctx, upsertReq())

		assert.NoError(t, err)
		assert.Equal(t, "guest-1", guest.ID)
		assert.Equal(t, "Jayne", guest.FirstName)
		assert.Equal(t, "+628000000000", guest.Phone)
	})

	t.Run("unique violation falls back to winner", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		winner := model.Guest{
			ID:       "guest-2",
			IDType:   "Passport",
			IDNumber: "A1234567",
		}

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(winner, nil)

		guest, err := svc.Upsert(ctx, upsertReq())

		assert.NoError(t, err)
		assert.Equal(t, "guest-2", guest.ID)
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Upsert(ctx, upsertReq())

		assert.Error(t, err)
	})
}

func TestGuestService_RecordNoShow(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("appends to existing notes", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{
				ID:    "guest-1",
				Notes: "Late arrival on previous stay.",
			}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "Late arrival on previous stay.\nNo-show for booking BK-20250314-001 on 2025-03-14.", fields[model.FieldNotes])

				return nil
			})

		err := svc.RecordNoShow(ctx, upsertReq(), "No-show for booking BK-20250314-001 on 2025-03-14.")
		assert.NoError(t, err)
	})

	t.Run("first note has no separator", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-1"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "No-show for booking BK-20250314-001 on 2025-03-14.", fields[model.FieldNotes])

				return nil
			})

		err := svc.RecordNoShow(ctx, upsertReq(), "No-show for booking BK-20250314-001 on 2025-03-14.")
		assert.NoError(t, err)
	})

	t.Run("missing guest inserted from booking snapshot", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				assert.NotEmpty(t, guest.ID)
				assert.Equal(t, "Jane", guest.FirstName)
				assert.Equal(t, "A1234567", guest.IDNumber)

				return nil
			})
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, "No-show for booking BK-20250314-001 on 2025-03-14.", fields[model.FieldNotes])

				return nil
			})

		err := svc.RecordNoShow(ctx, upsertReq(), "No-show for booking BK-20250314-001 on 2025-03-14.")
		assert.NoError(t, err)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, errors.New("database error"))

		err := svc.RecordNoShow(ctx, upsertReq(), "note")
		assert.Error(t, err)
	})
}

func TestGuestService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Update(ctx, dto.UpdateGuestRequest{Phone: "+628999999999"}, "guest-1")
		assert.NoError(t, err)
	})

	t.Run("guest not found", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(ctx, dto.UpdateGuestRequest{Phone: "+628999999999"}, "guest-1")
		assert.Error(t, err)
	})
}
