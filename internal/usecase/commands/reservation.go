package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/domain/unit"
	"aparthotel-booking/internal/domain/user"
	"aparthotel-booking/internal/infra"
	"aparthotel-booking/internal/pkg/clock"
	"aparthotel-booking/internal/pkg/errs"
	"aparthotel-booking/internal/usecase/notification"
	"aparthotel-booking/internal/usecase/queries"
	"aparthotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnitNotFound        = errs.New("apartment not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationConflict = errs.New("apartment is not available for the selected dates")
	ErrInvalidTransition   = errs.New("invalid status transition")
	ErrForbidden           = errs.New("operation not permitted")
)

type CreateReservationInput struct {
	UnitID          uuid.UUID
	CheckIn         time.Time
	CheckOut        time.Time
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	Guests          int
	TotalPrice      int64
	ContactMethod   string
	SpecialRequests string
}

type CreateReservationResult struct {
	Reservation  *queries.ReservationView
	Notification notification.Report
}

// Actor is the authenticated caller of a privileged command.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commands

type ReservationCommands interface {
	// Create validates input, then checks availability and inserts in one transaction.
	Create(ctx context.Context, in CreateReservationInput, requesterID uuid.UUID) (*CreateReservationResult, error)
	// SetStatus moves a reservation along the status graph. Operators only.
	SetStatus(ctx context.Context, id uuid.UUID, status string, actor Actor) error
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher notification.Dispatcher
	pricing    reservation.PriceCalculator
	clock      clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	dispatcher notification.Dispatcher,
	pricing reservation.PriceCalculator,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		dispatcher: dispatcher,
		pricing:    pricing,
		clock:      clock,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput, requesterID uuid.UUID) (*CreateReservationResult, error) {
	draft, err := c.buildDraft(in, requesterID)
	if err != nil {
		return nil, err
	}

	var (
		apartment *unit.Unit
		jobID     uuid.UUID
		msg       notification.Message
	)

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Reads().LockUnit(ctx, draft.UnitID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUnitNotFound
			}
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}

		if err := draft.CheckCapacity(locked); err != nil {
			return errs.Mark(err, shared.ErrValidation)
		}

		overlapping, err := tx.Reads().CountOverlapping(ctx, draft.UnitID(), draft.Stay())
		if err != nil {
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}
		if overlapping > 0 {
			return ErrReservationConflict
		}

		if _, err := tx.Reservations().Create(ctx, tx.DB(), draft); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrReservationConflict
			}
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}

		msg = notification.NewMessage(draft, locked.Name())
		payload, err := json.Marshal(msg)
		if err != nil {
			return errs.Wrap(err, "marshal notification payload")
		}
		jobID, err = tx.Notifications().CreateJob(ctx, tx.DB(), draft.ID(),
			shared.JobKindEmail, shared.JobTopicReservationCreated, payload, c.clock.Now())
		if err != nil {
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}

		apartment = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.warnOnPriceMismatch(ctx, draft, apartment)

	report := c.notify(ctx, jobID, msg)

	return &CreateReservationResult{
		Reservation:  toReservationView(draft, apartment.Name()),
		Notification: report,
	}, nil
}

func (c *reservationCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status string, actor Actor) error {
	if !actor.Role.CanManageBookings() {
		return ErrForbidden
	}

	next, err := reservation.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, ErrInvalidTransition)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}

		previous := res.Status()
		if err := res.TransitionTo(next, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, shared.ErrStorageUnavailable)
		}

		slog.InfoContext(ctx, "reservation status changed",
			"reservation_id", id,
			"from", previous.String(),
			"to", next.String(),
			"actor_id", actor.UserID)
		return nil
	})
}

// buildDraft runs all input validation before any storage access.
func (c *reservationCommandsImpl) buildDraft(in CreateReservationInput, requesterID uuid.UUID) (*reservation.Reservation, error) {
	stay, err := reservation.NewStayRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	guest, err := reservation.NewGuest(in.GuestName, in.GuestEmail, in.GuestPhone)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	price, err := reservation.NewMoney(in.TotalPrice)
	if err != nil {
		return nil, errs.Mark(&reservation.FieldError{Field: "totalPrice", Err: err}, shared.ErrValidation)
	}

	contact, err := reservation.ParseContactMethod(in.ContactMethod)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	requests, err := reservation.NewSpecialRequests(in.SpecialRequests)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	draft, err := reservation.NewReservation(
		in.UnitID,
		requesterID,
		guest,
		stay,
		in.Guests,
		price,
		contact,
		requests,
		c.clock.Now().UTC(),
	)
	if err != nil {
		return nil, errs.Mark(err, shared.ErrValidation)
	}

	return draft, nil
}

// The supplied total is kept as is; a mismatch is only reported.
func (c *reservationCommandsImpl) warnOnPriceMismatch(ctx context.Context, res *reservation.Reservation, apartment *unit.Unit) {
	rate, err := reservation.NewMoney(apartment.PricePerNight())
	if err != nil {
		return
	}
	expected := c.pricing.ExpectedTotal(rate, res.Stay())
	if expected.Cents() != res.TotalPrice().Cents() {
		slog.WarnContext(ctx, "price_mismatch",
			"reservation_id", res.ID(),
			"unit_id", apartment.ID(),
			"expected_cents", expected.Cents(),
			"supplied_cents", res.TotalPrice().Cents())
	}
}

// notify dispatches once and records the outcome. Nothing here can fail the booking.
func (c *reservationCommandsImpl) notify(ctx context.Context, jobID uuid.UUID, msg notification.Message) notification.Report {
	report := c.dispatcher.Dispatch(ctx, msg)

	status := shared.JobStatusSent
	if !report.Delivered {
		status = shared.JobStatusFailed
		slog.WarnContext(ctx, "booking notification not delivered",
			"reservation_id", msg.ReservationID,
			"job_id", jobID)
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().UpdateJobStatus(ctx, tx.DB(), jobID, status, report.FailureReason())
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record notification outcome",
			"reservation_id", msg.ReservationID,
			"job_id", jobID,
			"error", err.Error())
	}

	return report
}

func toReservationView(res *reservation.Reservation, unitName string) *queries.ReservationView {
	guest := res.Guest()
	stay := res.Stay()

	view := &queries.ReservationView{
		ID:            res.ID(),
		UnitID:        res.UnitID(),
		UnitName:      unitName,
		RequesterID:   res.RequesterID(),
		GuestName:     guest.Name(),
		GuestEmail:    guest.Email(),
		CheckIn:       stay.CheckIn(),
		CheckOut:      stay.CheckOut(),
		Nights:        stay.Nights(),
		Guests:        res.Guests(),
		TotalPrice:    res.TotalPrice().Cents(),
		Status:        res.Status().String(),
		ContactMethod: res.ContactMethod().String(),
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
	if guest.HasPhone() {
		phone := guest.Phone()
		view.GuestPhone = &phone
	}
	if !res.SpecialRequests().IsEmpty() {
		requests := res.SpecialRequests().String()
		view.SpecialRequests = &requests
	}
	return view
}
