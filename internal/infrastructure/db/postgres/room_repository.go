package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hotelworks/hms/internal/core/domain"
	"github.com/hotelworks/hms/internal/core/ports"
)

const roomColumns = `id, name, room_type_id, description, status, housekeeping_status,
	created_at, created_by, updated_at, updated_by`

// RoomRepository persists sellable rooms in the rooms table.
type RoomRepository struct {
	db *sqlx.DB
}

func NewRoomRepository(db *sqlx.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	query := `
		INSERT INTO rooms (name, room_type_id, description, status, housekeeping_status,
			created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		room.Name, room.RoomTypeID, room.Description, room.Status,
		room.HousekeepingStatus, room.CreatedAt, room.CreatedBy,
	).Scan(&room.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrRoomExists
		}
		return nil, fmt.Errorf("insert room: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	if err := r.db.GetContext(ctx, &room, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) FindByName(ctx context.Context, name string) (*domain.Room, error) {
	var room domain.Room
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE name = $1`
	if err := r.db.GetContext(ctx, &room, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("find room by name: %w", err)
	}
	return &room, nil
}

func (r *RoomRepository) List(ctx context.Context, filter ports.RoomListFilter) ([]*domain.Room, int64, error) {
	var b whereBuilder
	if filter.Name != "" {
		b.like("name", filter.Name)
	}
	if filter.RoomTypeID != nil {
		b.add("room_type_id = $%d", *filter.RoomTypeID)
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.HousekeepingStatus != nil {
		b.add("housekeeping_status = $%d", *filter.HousekeepingStatus)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM rooms `+b.clause(), b.args...); err != nil {
		return nil, 0, fmt.Errorf("count rooms: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM rooms %s ORDER BY name %s`,
		roomColumns, b.clause(), page(filter.Page, filter.Limit))

	rooms := []*domain.Room{}
	if err := r.db.SelectContext(ctx, &rooms, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, total, nil
}

// Available lists rooms in service with no open booking overlapping the
// requested window. An open booking is Reserved or CheckedIn.
func (r *RoomRepository) Available(ctx context.Context, filter ports.AvailabilityFilter) ([]*ports.AvailableRoom, error) {
	var b whereBuilder
	b.add("r.status <> $%d", domain.RoomOutOfService)
	if filter.RoomID != nil {
		b.add("r.id = $%d", *filter.RoomID)
	}
	if filter.RoomTypeID != nil {
		b.add("r.room_type_id = $%d", *filter.RoomTypeID)
	}
	if filter.Occupancy != nil {
		b.add("rt.max_occupancy >= $%d", *filter.Occupancy)
	}
	if filter.MinBaseRate != nil {
		b.add("rt.base_rate >= $%d", *filter.MinBaseRate)
	}
	if filter.MaxBaseRate != nil {
		b.add("rt.base_rate <= $%d", *filter.MaxBaseRate)
	}

	if filter.From != nil {
		from := len(b.args) + 1
		to := from + 1
		b.args = append(b.args, *filter.From)
		var toArg any
		if filter.To != nil {
			toArg = *filter.To
		}
		b.args = append(b.args, toArg)
		// A NULL checkout on either side means an open-ended stay.
		b.conds = append(b.conds, fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.room_id = r.id
			  AND b.status IN ('Reserved', 'CheckedIn')
			  AND ($%d::timestamptz IS NULL OR b.checkin < $%d)
			  AND (b.checkout IS NULL OR b.checkout > $%d)
		)`, to, to, from))
	}

	query := `
		SELECT ` + prefixColumns("r", roomColumns, "room") + `,
		       ` + prefixColumns("rt", roomTypeColumns, "room_type") + `
		FROM rooms r
		JOIN room_types rt ON rt.id = r.room_type_id
		` + b.clause() + `
		ORDER BY r.name`

	rows, err := r.db.QueryxContext(ctx, query, b.args...)
	if err != nil {
		return nil, fmt.Errorf("available rooms: %w", err)
	}
	defer rows.Close()

	results := []*ports.AvailableRoom{}
	for rows.Next() {
		var row struct {
			Room     domain.Room     `db:"room"`
			RoomType domain.RoomType `db:"room_type"`
		}
		if err := rows.StructScan(&row); err != nil {
			return nil, fmt.Errorf("scan available room: %w", err)
		}
		results = append(results, &ports.AvailableRoom{Room: row.Room, RoomType: row.RoomType})
	}
	return results, rows.Err()
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, room_type_id = $2, description = $3, status = $4,
		    housekeeping_status = $5, updated_at = $6, updated_by = $7
		WHERE id = $8`

	res, err := r.db.ExecContext(ctx, query,
		room.Name, room.RoomTypeID, room.Description, room.Status,
		room.HousekeepingStatus, room.UpdatedAt, room.UpdatedBy, room.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("update room: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoomInUse
		}
		return fmt.Errorf("delete room: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}
