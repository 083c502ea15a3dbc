package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes; the
// room row lock taken inside booking creation provides the per-room
// serialization the overlap check needs.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		var pgxTx pgx.Tx
		pgxTx, err = u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

// Exponential backoff with jitter so colliding retries spread out
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	backoff := base << attempt

	var buf [8]byte
	jitter := time.Duration(0)
	if _, err := rand.Read(buf[:]); err == nil {
		jitter = time.Duration(binary.LittleEndian.Uint64(buf[:]) % uint64(base))
	}

	return backoff + jitter
}

type pgTx struct {
	dbtx pgx.Tx
}

func (t *pgTx) Rooms() shared.RoomRepository {
	return repository.NewRoomRepository(t.dbtx)
}

func (t *pgTx) Bookings() shared.BookingRepository {
	return repository.NewBookingRepository(t.dbtx)
}

func (t *pgTx) Payments() shared.PaymentRepository {
	return repository.NewPaymentRepository(t.dbtx)
}

func (t *pgTx) Users() shared.UserRepository {
	return repository.NewUserRepository(t.dbtx)
}
