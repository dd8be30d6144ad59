package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

// lockAndGet loads the booking, takes the per-room lock and re-reads the row
// under it. The status guard that follows in each transition then sees the
// latest committed state, so two concurrent transitions on the same room
// cannot both pass the guard. Callers must release the lock when done.
func (s *serviceImpl) lockAndGet(ctx context.Context, id string) (model.Booking, func(), error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, nil, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	unlock := s.locks.Lock(booking.RoomID)

	booking, err = s.repo.Get(ctx, filter)
	if err != nil {
		unlock()
		log.Error().Err(err).Msg("failed to get booking")

		return booking, nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return booking, unlock, nil
}

// CheckIn moves a confirmed booking to Checked In and stamps the arrival
// time. The stamp is written once: re-running the transition after a partial
// failure keeps the original arrival time.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, unlock, err := s.lockAndGet(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if !model.BookingStatus(booking.Status).CanTransitionTo(model.StatusCheckedIn) {
		return failure.BadRequestFromString("Booking must be confirmed to check in") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldStatus] = string(model.StatusCheckedIn)
	if booking.ActualCheckIn == nil {
		updatedFields[model.FieldActualCheckIn] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to check in booking")

		return fmt.Errorf("failed to check in booking: %w", err)
	}

	booking.Status = string(model.StatusCheckedIn)

	s.syncRoomStatus(ctx, booking.RoomID, roomModel.StatusOccupied, user)
	s.publishEvent(ctx, eventBookingCheckedIn, booking)
	s.invalidate(ctx, id)

	return nil
}

// CheckOut completes the stay. The room goes to Maintenance for turnover
// cleaning; staff flip it back to Available once the room is ready.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, unlock, err := s.lockAndGet(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if !model.BookingStatus(booking.Status).CanTransitionTo(model.StatusCheckedOut) {
		return failure.BadRequestFromString("Booking must be checked in to check out") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldStatus] = string(model.StatusCheckedOut)
	if booking.ActualCheckOut == nil {
		updatedFields[model.FieldActualCheckOut] = timezone.Now()
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to check out booking")

		return fmt.Errorf("failed to check out booking: %w", err)
	}

	booking.Status = string(model.StatusCheckedOut)

	s.syncRoomStatus(ctx, booking.RoomID, roomModel.StatusMaintenance, user)
	s.publishEvent(ctx, eventBookingCheckedOut, booking)
	s.invalidate(ctx, id)

	return nil
}

// Cancel voids an active booking and frees the room.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, unlock, err := s.lockAndGet(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if !model.BookingStatus(booking.Status).CanTransitionTo(model.StatusCancelled) {
		return failure.BadRequestFromString("Booking can no longer be cancelled") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldStatus] = string(model.StatusCancelled)
	updatedFields[model.FieldCancellationReason] = req.Reason
	updatedFields[model.FieldCancellationDate] = timezone.Now()

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = string(model.StatusCancelled)

	s.syncRoomStatus(ctx, booking.RoomID, roomModel.StatusAvailable, user)
	s.publishEvent(ctx, eventBookingCancelled, booking)
	s.invalidate(ctx, id)

	return nil
}

// MarkNoShow records that the guest never arrived. The room is released and
// the incident is appended to the guest's directory notes.
func (s *serviceImpl) MarkNoShow(ctx context.Context, req dto.NoShowBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkNoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, unlock, err := s.lockAndGet(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if !model.BookingStatus(booking.Status).CanTransitionTo(model.StatusNoShow) {
		return failure.BadRequestFromString("Only confirmed bookings can be marked as no-show") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(struct{}{}, user)
	updatedFields[model.FieldStatus] = string(model.StatusNoShow)
	updatedFields[model.FieldCancellationDate] = timezone.Now()

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to mark booking as no-show")

		return fmt.Errorf("failed to mark booking as no-show: %w", err)
	}

	booking.Status = string(model.StatusNoShow)

	note := fmt.Sprintf("No-show for booking %s on %s.", booking.BookingNumber, timezone.Format(booking.CheckInDate, constant.DateOnlyFormat))
	if req.Notes != constant.Empty {
		note = fmt.Sprintf("%s Additional notes: %s", note, req.Notes)
	}

	if err := s.guest.RecordNoShow(ctx, guestSnapshot(booking), note); err != nil {
		log.Warn().Err(err).Str("bookingID", id).Msg("failed to record no-show on guest")
	}

	s.syncRoomStatus(ctx, booking.RoomID, roomModel.StatusAvailable, user)
	s.publishEvent(ctx, eventBookingNoShow, booking)
	s.invalidate(ctx, id)

	return nil
}

// Delete is a cancellation in disguise: booking rows are never removed, the
// record is kept for reporting with a fixed cancellation reason.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	return s.Cancel(ctx, dto.CancelBookingRequest{Reason: "Booking deleted"}, id)
}
