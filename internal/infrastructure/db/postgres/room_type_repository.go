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

const roomTypeColumns = `id, code, name, base_occupancy, max_occupancy, base_rate,
	hour_rate, extra_adult_fee, extra_child_fee, description,
	created_at, created_by, updated_at, updated_by`

// RoomTypeRepository persists rate cards in the room_types table.
type RoomTypeRepository struct {
	db *sqlx.DB
}

func NewRoomTypeRepository(db *sqlx.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) Create(ctx context.Context, rt *domain.RoomType) (*domain.RoomType, error) {
	query := `
		INSERT INTO room_types (code, name, base_occupancy, max_occupancy, base_rate,
			hour_rate, extra_adult_fee, extra_child_fee, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		rt.Code, rt.Name, rt.BaseOccupancy, rt.MaxOccupancy, rt.BaseRate,
		rt.HourRate, rt.ExtraAdultFee, rt.ExtraChildFee, rt.Description,
		rt.CreatedAt, rt.CreatedBy,
	).Scan(&rt.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrRoomTypeExists
		}
		return nil, fmt.Errorf("insert room type: %w", err)
	}
	return rt, nil
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`
	if err := r.db.GetContext(ctx, &rt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type: %w", err)
	}
	return &rt, nil
}

func (r *RoomTypeRepository) FindByCode(ctx context.Context, code string) (*domain.RoomType, error) {
	var rt domain.RoomType
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE code = $1`
	if err := r.db.GetContext(ctx, &rt, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("find room type by code: %w", err)
	}
	return &rt, nil
}

func (r *RoomTypeRepository) List(ctx context.Context, filter ports.RoomTypeListFilter) ([]*domain.RoomType, int64, error) {
	var b whereBuilder
	if filter.Code != "" {
		b.like("code", filter.Code)
	}
	if filter.Name != "" {
		b.like("name", filter.Name)
	}
	if filter.MinBaseRate != nil {
		b.add("base_rate >= $%d", *filter.MinBaseRate)
	}
	if filter.MaxBaseRate != nil {
		b.add("base_rate <= $%d", *filter.MaxBaseRate)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM room_types `+b.clause(), b.args...); err != nil {
		return nil, 0, fmt.Errorf("count room types: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM room_types %s ORDER BY code %s`,
		roomTypeColumns, b.clause(), page(filter.Page, filter.Limit))

	types := []*domain.RoomType{}
	if err := r.db.SelectContext(ctx, &types, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("list room types: %w", err)
	}
	return types, total, nil
}

func (r *RoomTypeRepository) Update(ctx context.Context, rt *domain.RoomType) error {
	query := `
		UPDATE room_types
		SET code = $1, name = $2, base_occupancy = $3, max_occupancy = $4,
		    base_rate = $5, hour_rate = $6, extra_adult_fee = $7, extra_child_fee = $8,
		    description = $9, updated_at = $10, updated_by = $11
		WHERE id = $12`

	res, err := r.db.ExecContext(ctx, query,
		rt.Code, rt.Name, rt.BaseOccupancy, rt.MaxOccupancy,
		rt.BaseRate, rt.HourRate, rt.ExtraAdultFee, rt.ExtraChildFee,
		rt.Description, rt.UpdatedAt, rt.UpdatedBy, rt.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoomTypeExists
		}
		return fmt.Errorf("update room type: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}

func (r *RoomTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoomTypeInUse
		}
		return fmt.Errorf("delete room type: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrRoomTypeNotFound
	}
	return nil
}
