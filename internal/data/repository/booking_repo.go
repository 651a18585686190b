package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/failure"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)

	// Availability reads. start/end must already be pinned to turnover
	// instants; now cuts off expired stays.
	CountBlocking(ctx context.Context, roomName string, start, end, now time.Time) (int64, error)
	BlockedRoomNumbers(ctx context.Context, category string, start, end, now time.Time) ([]int, error)

	// State-changing writes. Each runs the availability re-check and the
	// write inside one transaction serialized per room, closing the
	// check-then-act window.
	CreateExclusive(ctx context.Context, booking *entity.Booking, now time.Time) error
	ConfirmPaid(ctx context.Context, reference string, method entity.PaymentMethod, now time.Time) (*entity.Booking, bool, error)

	SetCancelled(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
	SettleDue(ctx context.Context, now time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, full_name, phone, email, room_name, room_number, room_price, room_id,
	start_date, end_date, is_paid, is_cancelled, source, payment_method, payment_status, reference,
	created_at, updated_at`

// blockingClause matches non-cancelled, non-expired bookings whose stay
// conflicts with the requested [start, end) window. Both sides are stored
// turnover instants pinned in Go, so no clock is re-derived in SQL; equality
// at the boundary is not a conflict.
const blockingClause = `
	room_name = $1
	AND NOT is_cancelled
	AND end_date >= $4
	AND check_in < $3
	AND end_date > $2`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Phone,
		&b.Email,
		&b.RoomName,
		&b.RoomNumber,
		&b.RoomPrice,
		&b.RoomID,
		&b.StartDate,
		&b.EndDate,
		&b.IsPaid,
		&b.IsCancelled,
		&b.Source,
		&b.PaymentMethod,
		&b.PaymentStatus,
		&b.Reference,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return b, nil
}

func (r *bookingRepository) CountBlocking(ctx context.Context, roomName string, start, end, now time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE` + blockingClause

	var count int64
	err := r.db.QueryRow(ctx, query, roomName, start, end, now).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count blocking bookings",
			zap.Error(err),
			zap.String("room_name", roomName),
		)
		return 0, fmt.Errorf("count blocking bookings for %s: %w", roomName, err)
	}

	return count, nil
}

func (r *bookingRepository) BlockedRoomNumbers(ctx context.Context, category string, start, end, now time.Time) ([]int, error) {
	query := `
		SELECT DISTINCT b.room_number
		FROM bookings b
		JOIN rooms rm ON rm.room_number = b.room_number
		WHERE rm.category = $1
		  AND NOT b.is_cancelled
		  AND b.end_date >= $4
		  AND b.check_in < $3
		  AND b.end_date > $2
	`

	rows, err := r.db.Query(ctx, query, category, start, end, now)
	if err != nil {
		r.log.Error("Failed to find blocked room numbers",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find blocked room numbers for %s: %w", category, err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan room number: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

// CreateExclusive inserts the booking after re-checking availability, all
// under a per-room advisory lock so two concurrent creates for the same room
// serialize and the loser observes the winner's row.
func (r *bookingRepository) CreateExclusive(ctx context.Context, booking *entity.Booking, now time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1)::bigint)`, booking.RoomName); err != nil {
		return fmt.Errorf("lock room %s: %w", booking.RoomName, err)
	}

	var blocking int64
	countQuery := `SELECT COUNT(*) FROM bookings WHERE` + blockingClause
	if err := tx.QueryRow(ctx, countQuery, booking.RoomName, booking.CheckIn(), booking.Checkout(), now).Scan(&blocking); err != nil {
		return fmt.Errorf("recheck availability for %s: %w", booking.RoomName, err)
	}
	if blocking > 0 {
		return failure.Conflict("room is already booked or reserved for the selected dates")
	}

	insert := `
		INSERT INTO bookings (id, full_name, phone, email, room_name, room_number, room_price, room_id,
			start_date, end_date, check_in, is_paid, is_cancelled, source, payment_method, payment_status,
			reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.FullName,
		booking.Phone,
		booking.Email,
		booking.RoomName,
		booking.RoomNumber,
		booking.RoomPrice,
		booking.RoomID,
		booking.StartDate,
		booking.EndDate,
		booking.CheckIn(),
		booking.IsPaid,
		booking.IsCancelled,
		booking.Source,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.Reference,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("room_name", booking.RoomName),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking: %w", err)
	}

	return nil
}

// ConfirmPaid flips the booking behind reference to paid. The row lock makes
// duplicate provider confirmations serialize: exactly one caller gets
// updated=true, replays observe is_paid and get updated=false. A missing row
// yields (nil, false, nil). A Conflict error means the payment succeeded but
// the room has since been taken.
func (r *bookingRepository) ConfirmPaid(ctx context.Context, reference string, method entity.PaymentMethod, now time.Time) (*entity.Booking, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin confirm payment: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1 FOR UPDATE`
	b, err := scanBooking(tx.QueryRow(ctx, query, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("lock booking by reference %s: %w", reference, err)
	}

	if b.IsPaid || b.IsCancelled {
		return b, false, nil
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1)::bigint)`, b.RoomName); err != nil {
		return nil, false, fmt.Errorf("lock room %s: %w", b.RoomName, err)
	}

	var blocking int64
	countQuery := `SELECT COUNT(*) FROM bookings WHERE id <> $5 AND` + blockingClause
	if err := tx.QueryRow(ctx, countQuery, b.RoomName, b.CheckIn(), b.Checkout(), now, b.ID).Scan(&blocking); err != nil {
		return nil, false, fmt.Errorf("recheck availability for %s: %w", b.RoomName, err)
	}
	if blocking > 0 {
		return b, false, failure.Conflict("payment succeeded but the room is no longer available")
	}

	update := `
		UPDATE bookings
		SET is_paid = true, payment_status = $2, payment_method = $3, updated_at = $4
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, update, b.ID, entity.PaymentStatusPaid, method, now); err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", b.ID.String()),
			zap.String("reference", reference),
		)
		return nil, false, fmt.Errorf("mark booking %s paid: %w", b.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("commit confirm payment: %w", err)
	}

	b.IsPaid = true
	b.PaymentStatus = entity.PaymentStatusPaid
	b.PaymentMethod = method
	b.UpdatedAt = now
	return b, true, nil
}

func (r *bookingRepository) SetCancelled(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE bookings SET is_cancelled = true, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return failure.NotFound("booking")
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return failure.NotFound("booking")
	}

	return nil
}

func (r *bookingRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx, `DELETE FROM bookings`)
	if err != nil {
		r.log.Error("Failed to clear bookings", zap.Error(err))
		return 0, fmt.Errorf("clear bookings: %w", err)
	}

	return result.RowsAffected(), nil
}

// SettleDue promotes unpaid, non-cancelled bookings whose stay has started to
// settled in one statement.
func (r *bookingRepository) SettleDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET is_paid = true, payment_method = $2, payment_status = $3, updated_at = $1
		WHERE NOT is_cancelled AND NOT is_paid AND start_date <= $1
	`

	result, err := r.db.Exec(ctx, query, now, entity.PaymentMethodSettled, entity.PaymentStatusSettled)
	if err != nil {
		r.log.Error("Failed to settle due reservations", zap.Error(err))
		return 0, fmt.Errorf("settle due reservations: %w", err)
	}

	return result.RowsAffected(), nil
}
