package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
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

	return service.New(mockRepo, cfg, mockCache, mockOtel, mockS3), mockRepo
}

func roleContext(role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestRoomService_Create(t *testing.T) {
	ctx := roleContext(constant.RoleAdmin)

	req := dto.CreateRoomRequest{
		RoomNumber: "101",
		RoomTypeID: "type-1",
		Floor:      1,
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, model.StatusAvailable, room.Status)
				assert.True(t, room.Active)

				return nil
			})

		assert.NoError(t, svc.Create(ctx, req))
	})

	t.Run("duplicate room number rejected", func(t *testing.T) {
		svc, mockRepo := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		assert.Error(t, svc.Create(ctx, req))
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		svc, _ := newRoomService(t)

		bad := req
		bad.Status = "Sideways"

		assert.Error(t, svc.Create(ctx, bad))
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		roomStatus string
		newStatus  string
		wantErr    bool
	}{
		{
			name:       "staff returns maintenance room to available",
			role:       constant.RoleStaff,
			roomStatus: model.StatusMaintenance,
			newStatus:  model.StatusAvailable,
			wantErr:    false,
		},
		{
			name:       "staff cannot force other transitions",
			role:       constant.RoleStaff,
			roomStatus: model.StatusAvailable,
			newStatus:  model.StatusOutOfOrder,
			wantErr:    true,
		},
		{
			name:       "admin overrides any status",
			role:       constant.RoleAdmin,
			roomStatus: model.StatusAvailable,
			newStatus:  model.StatusOutOfOrder,
			wantErr:    false,
		},
		{
			name:       "superadmin overrides any status",
			role:       constant.RoleSuperAdmin,
			roomStatus: model.StatusOccupied,
			newStatus:  model.StatusAvailable,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newRoomService(t)

			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Room{
					ID:     "room-1",
					Status: tt.roomStatus,
					Active: true,
				}, nil)

			if !tt.wantErr {
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
						assert.Equal(t, tt.newStatus, fields[model.FieldStatus])

						return nil
					})
			}

			err := svc.UpdateStatus(roleContext(tt.role), dto.UpdateRoomStatusRequest{Status: tt.newStatus}, "room-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newRoomService(t)

	err := svc.UpdateStatus(roleContext(constant.RoleAdmin), dto.UpdateRoomStatusRequest{Status: "Sideways"}, "room-1")
	assert.Error(t, err)
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("soft delete deactivates", func(t *testing.T) {
		svc, mockRepo := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ interface{}) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		assert.NoError(t, svc.Delete(roleContext(constant.RoleAdmin), "room-1"))
	})

	t.Run("missing room", func(t *testing.T) {
		svc, mockRepo := newRoomService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.Error(t, svc.Delete(roleContext(constant.RoleAdmin), "room-1"))
	})
}
