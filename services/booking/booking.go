package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mesafy/config"
	reservationRepo "mesafy/database/repository/reservation"
	"mesafy/models"
	"mesafy/services/availability"
	"mesafy/services/tasks"
	"mesafy/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReservation runs the availability check and, if positive, inserts the
// reservation through the repository's transactional create. When the insert
// loses the race to a concurrent booking it re-runs the check once and
// retries with freshly suggested tables before reporting the slot taken.
func (s *DefaultBookingService) CreateReservation(ctx context.Context, req BookingRequest) (*models.Reservation, error) {
	availReq := models.AvailabilityRequest{
		RestaurantID: req.RestaurantID,
		Date:         req.Date,
		Time:         req.Time,
		PartySize:    req.PartySize,
	}

	for attempt := 0; attempt < 2; attempt++ {
		result, err := s.Engine.CheckAvailability(ctx, availReq)
		if err != nil {
			return nil, err
		}
		if !result.Available {
			return nil, &UnavailableError{Result: result}
		}

		res, err := s.buildReservation(req, result)
		if err != nil {
			return nil, err
		}

		err = s.Reservations.CreateIfTablesFree(ctx, res)
		if errors.Is(err, reservationRepo.ErrTablesTaken) {
			utils.GetLogger().Info("booking lost the race, re-checking",
				zap.String("restaurantID", req.RestaurantID),
				zap.String("date", req.Date),
				zap.String("time", req.Time),
				zap.Int("attempt", attempt+1))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create reservation: %w", err)
		}

		s.afterCreate(ctx, res)
		return res, nil
	}

	// Both attempts lost the race; report the slot taken, with alternatives.
	result, err := s.Engine.CheckAvailability(ctx, availReq)
	if err != nil {
		return nil, err
	}
	if result.Available {
		// The table churn settled in our favor but retries are exhausted;
		// treat as unavailable rather than looping further.
		result.Available = false
		result.SuggestedTables = nil
		result.Message = "no table free at this time"
	}
	return nil, &UnavailableError{Result: result}
}

func (s *DefaultBookingService) buildReservation(req BookingRequest, result models.AvailabilityResult) (*models.Reservation, error) {
	svc := result.Service
	window, err := availability.NewTimeWindow(req.Time, svc.DefaultDurationMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &models.Reservation{
		ID:                       uuid.New().String(),
		RestaurantID:             req.RestaurantID,
		ServiceID:                svc.ID,
		TableIDs:                 result.SuggestedTables,
		Date:                     req.Date,
		Time:                     req.Time,
		PartySize:                req.PartySize,
		EstimatedDurationMinutes: svc.DefaultDurationMinutes,
		StartMinutes:             window.Start,
		EndMinutes:               window.End,
		Status:                   models.ReservationStatusPending,
		CustomerName:             req.CustomerName,
		CustomerPhone:            req.CustomerPhone,
		CreatedAt:                now,
		UpdatedAt:                now,
	}, nil
}

// afterCreate hands off the notification event and schedules the reminder.
// Both are best-effort; the reservation is already persisted.
func (s *DefaultBookingService) afterCreate(ctx context.Context, res *models.Reservation) {
	logger := utils.GetLogger()

	if s.Notifier != nil {
		event := models.ReservationEvent{Kind: "created", Reservation: *res}
		if err := s.Notifier.ReservationEvent(ctx, event); err != nil {
			logger.Warn("reservation notification failed",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}

	if s.TaskClient == nil {
		return
	}
	loc := s.restaurantLocation(ctx, res.RestaurantID)
	fireAt, err := reminderFireTime(res.Date, res.Time, config.AppConfig.ReminderLeadMinutes, loc)
	if err != nil || !fireAt.After(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		ReservationID: res.ID,
		RestaurantID:  res.RestaurantID,
		Date:          res.Date,
		Time:          res.Time,
		CustomerName:  res.CustomerName,
		CustomerPhone: res.CustomerPhone,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		logger.Warn("failed to enqueue reminder task",
			zap.String("reservationID", res.ID), zap.Error(err))
	}
}

// restaurantLocation resolves the restaurant's timezone for wall-clock
// arithmetic, falling back to the server's zone when the restaurant or its
// zone cannot be resolved.
func (s *DefaultBookingService) restaurantLocation(ctx context.Context, restaurantID string) *time.Location {
	if s.Restaurants == nil {
		return time.Local
	}
	restaurant, err := s.Restaurants.GetByID(ctx, restaurantID)
	if err != nil || restaurant.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(restaurant.Timezone)
	if err != nil {
		utils.GetLogger().Warn("unknown restaurant timezone",
			zap.String("restaurantID", restaurantID),
			zap.String("timezone", restaurant.Timezone))
		return time.Local
	}
	return loc
}

// reminderFireTime computes when the reminder should fire: leadMinutes before
// the reservation's start in the restaurant's timezone.
func reminderFireTime(date, clock string, leadMinutes int, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(-time.Duration(leadMinutes) * time.Minute), nil
}

// UpdateStatus applies a lifecycle transition: PENDING may confirm, cancel or
// no-show; CONFIRMED may cancel or no-show; terminal states are frozen.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, reservationID, newStatus string) (*models.Reservation, error) {
	res, err := s.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !models.ValidStatusTransition(res.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, res.Status, newStatus)
	}
	if err := s.Reservations.UpdateStatus(ctx, reservationID, newStatus); err != nil {
		return nil, err
	}

	prev := res.Status
	res.Status = newStatus
	if s.Notifier != nil {
		event := models.ReservationEvent{Kind: "status_changed", Reservation: *res, PrevStatus: prev}
		if err := s.Notifier.ReservationEvent(ctx, event); err != nil {
			utils.GetLogger().Warn("status change notification failed",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}
	return res, nil
}

// Reschedule moves a reservation to a new date/time. The availability check
// excludes the reservation itself so its current tables count as free, and
// the repository move runs under the same transactional conflict re-check as
// a create.
func (s *DefaultBookingService) Reschedule(ctx context.Context, reservationID, date, clock string) (*models.Reservation, error) {
	res, err := s.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalStatus(res.Status) {
		return nil, fmt.Errorf("%w: cannot reschedule a %s reservation", ErrInvalidTransition, res.Status)
	}

	availReq := models.AvailabilityRequest{
		RestaurantID:         res.RestaurantID,
		Date:                 date,
		Time:                 clock,
		PartySize:            res.PartySize,
		ExcludeReservationID: res.ID,
	}
	result, err := s.Engine.CheckAvailability(ctx, availReq)
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, &UnavailableError{Result: result}
	}

	svc := result.Service
	window, err := availability.NewTimeWindow(clock, svc.DefaultDurationMinutes)
	if err != nil {
		return nil, err
	}
	res.ServiceID = svc.ID
	res.TableIDs = result.SuggestedTables
	res.Date = date
	res.Time = clock
	res.EstimatedDurationMinutes = svc.DefaultDurationMinutes
	res.StartMinutes = window.Start
	res.EndMinutes = window.End
	res.UpdatedAt = time.Now()

	if err := s.Reservations.Reschedule(ctx, res); err != nil {
		if errors.Is(err, reservationRepo.ErrTablesTaken) {
			retry, rerr := s.Engine.CheckAvailability(ctx, availReq)
			if rerr != nil {
				return nil, rerr
			}
			retry.Available = false
			retry.SuggestedTables = nil
			if retry.Message == "" {
				retry.Message = "no table free at this time"
			}
			return nil, &UnavailableError{Result: retry}
		}
		return nil, fmt.Errorf("failed to reschedule reservation: %w", err)
	}

	if s.Notifier != nil {
		event := models.ReservationEvent{Kind: "rescheduled", Reservation: *res}
		if err := s.Notifier.ReservationEvent(ctx, event); err != nil {
			utils.GetLogger().Warn("reschedule notification failed",
				zap.String("reservationID", res.ID), zap.Error(err))
		}
	}
	return res, nil
}
