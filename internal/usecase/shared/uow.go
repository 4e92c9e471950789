package shared

import (
	"context"
	"time"

	"aparthotel-booking/internal/domain/reservation"
	"aparthotel-booking/internal/domain/unit"
	sqlc "aparthotel-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=shared

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the reads a command needs inside its own transaction.
type CommandReads interface {
	// LockUnit takes a row lock on the unit until the transaction ends.
	LockUnit(ctx context.Context, id uuid.UUID) (*unit.Unit, error)
	CountOverlapping(ctx context.Context, unitID uuid.UUID, stay reservation.StayRange) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, reservationID uuid.UUID, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}
