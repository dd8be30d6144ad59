package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	guestDto "frontdesk/internal/domains/guest/model/dto"
	guestService "frontdesk/internal/domains/guest/service"
	roomModel "frontdesk/internal/domains/room/model"
	roomRepository "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/keylock"
	"frontdesk/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	eventBookingCreated    = "booking.created"
	eventBookingCheckedIn  = "booking.checked_in"
	eventBookingCheckedOut = "booking.checked_out"
	eventBookingCancelled  = "booking.cancelled"
	eventBookingNoShow     = "booking.no_show"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) error
	MarkNoShow(ctx context.Context, req dto.NoShowBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepository.Room
	guest    guestService.Guest
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
	locks    *keylock.KeyedMutex
}

func New(
	repo repository.Booking,
	roomRepo roomRepository.Room,
	guest guestService.Guest,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		guest:    guest,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
		locks:    keylock.New(),
	}
}

// Create books a room for a fixed-duration stay. The conflict check and the
// insert run under a per-room lock so two concurrent requests for overlapping
// windows on the same room cannot both pass the check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !model.IsValidDuration(req.DurationHours) {
		return res, failure.BadRequestFromString("Invalid stay duration") // nolint:wrapcheck
	}

	if req.TotalAmount <= 0 {
		return res, failure.BadRequestFromString("Invalid total amount") // nolint:wrapcheck
	}

	if req.Status != constant.Empty {
		status := model.BookingStatus(req.Status)
		if !status.Active() {
			return res, failure.BadRequestFromString("Invalid booking status") // nolint:wrapcheck
		}
	}

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse check-in date")

		return res, failure.BadRequestFromString("Invalid check-in date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return res, failure.BadRequestFromString("Room is not available") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(booking.RoomID)
	defer unlock()

	conflict, err := s.repo.Exist(ctx, model.OverlapFilter(booking.RoomID, booking.CheckInDate, booking.CheckOutDate, constant.Empty))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking conflicts")

		return res, fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		return res, failure.BadRequestFromString("Room is already booked for the selected dates") // nolint:wrapcheck
	}

	if booking.Status == string(model.StatusCheckedIn) {
		now := timezone.Now()
		booking.ActualCheckIn = &now
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to insert booking")

		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.syncRoomStatus(ctx, booking.RoomID, roomModel.StatusOccupied, user)
	s.upsertGuest(ctx, booking)
	s.publishEvent(ctx, eventBookingCreated, booking)
	s.invalidateLists(ctx)

	res.FromModel(booking)

	return res, nil
}

func guestSnapshot(booking model.Booking) guestDto.UpsertGuestRequest {
	return guestDto.UpsertGuestRequest{
		FirstName: booking.GuestFirstName,
		LastName:  booking.GuestLastName,
		Phone:     booking.GuestPhone,
		IDType:    booking.GuestIDType,
		IDNumber:  booking.GuestIDNumber,
	}
}

// upsertGuest mirrors the booking's guest snapshot into the guest directory.
// Directory maintenance never blocks the booking itself.
func (s *serviceImpl) upsertGuest(ctx context.Context, booking model.Booking) {
	if _, err := s.guest.Upsert(ctx, guestSnapshot(booking)); err != nil {
		log.Warn().Err(err).Str("bookingID", booking.ID).Msg("failed to sync guest directory")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update patches booking details and recomputes the payment fields from the
// resulting amounts. Status never moves through here.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, unlock, err := s.lockAndGet(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if model.BookingStatus(current.Status).IsTerminal() {
		return failure.BadRequestFromString("Booking can no longer be modified") // nolint:wrapcheck
	}

	merged := current
	if req.TotalAmount > 0 {
		merged.TotalAmount = req.TotalAmount
	}
	if req.PaidAmount > 0 {
		merged.PaidAmount = req.PaidAmount
	}
	merged = model.Derive(merged, timezone.Now())

	updatedFields := shared.TransformFields(req, user)
	updatedFields[model.FieldBalance] = merged.Balance
	updatedFields[model.FieldPaymentStatus] = merged.PaymentStatus

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// syncRoomStatus keeps the room's status in step with its booking lifecycle.
// The booking write is already committed at this point, so a room update
// failure is logged for manual reconciliation rather than propagated.
func (s *serviceImpl) syncRoomStatus(ctx context.Context, roomID, status, user string) {
	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[roomModel.FieldStatus] = status

	filter := shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)

	if err := s.roomRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("roomID", roomID).Str("status", status).Msg("failed to sync room status")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "room:")
	}()
}

type bookingEvent struct {
	Type          string `json:"type"`
	BookingID     string `json:"booking_id"`
	BookingNumber string `json:"booking_number"`
	RoomID        string `json:"room_id"`
	Status        string `json:"status"`
	OccurredAt    string `json:"occurred_at"`
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	topic := s.cfg.Kafka.Topics.BookingEvents
	if topic == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key: booking.ID,
			Value: bookingEvent{
				Type:          eventType,
				BookingID:     booking.ID,
				BookingNumber: booking.BookingNumber,
				RoomID:        booking.RoomID,
				Status:        booking.Status,
				OccurredAt:    timezone.Format(timezone.Now(), time.RFC3339),
			},
		}

		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
