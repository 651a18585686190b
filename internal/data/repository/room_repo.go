package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RoomRepository is read-only: inventory CRUD belongs to the admin surface,
// the booking engine only filters against it.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, name, category, price, room_number, images, amenities, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Category,
		&room.Price,
		&room.RoomNumber,
		&room.Images,
		&room.Amenities,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE category = $1 ORDER BY room_number`

	rows, err := r.db.Query(ctx, query, category)
	if err != nil {
		r.log.Error("Failed to find rooms by category",
			zap.Error(err),
			zap.String("category", category),
		)
		return nil, fmt.Errorf("find rooms by category %s: %w", category, err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}
