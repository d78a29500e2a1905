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

const guestColumns = `id, name, gender, date_of_birth, nationality, phone, email,
	address, description, created_at, created_by, updated_at, updated_by`

// GuestRepository persists hotel customers in the guests table.
type GuestRepository struct {
	db *sqlx.DB
}

func NewGuestRepository(db *sqlx.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(ctx context.Context, guest *domain.Guest) (*domain.Guest, error) {
	query := `
		INSERT INTO guests (name, gender, date_of_birth, nationality, phone, email,
			address, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		guest.Name, guest.Gender, guest.DateOfBirth, guest.Nationality,
		guest.Phone, guest.Email, guest.Address, guest.Description,
		guest.CreatedAt, guest.CreatedBy,
	).Scan(&guest.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrGuestExists
		}
		return nil, fmt.Errorf("insert guest: %w", err)
	}
	return guest, nil
}

func (r *GuestRepository) FindByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var guest domain.Guest
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	if err := r.db.GetContext(ctx, &guest, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest: %w", err)
	}
	return &guest, nil
}

func (r *GuestRepository) FindByPhone(ctx context.Context, phone string) (*domain.Guest, error) {
	var guest domain.Guest
	query := `SELECT ` + guestColumns + ` FROM guests WHERE phone = $1`
	if err := r.db.GetContext(ctx, &guest, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest by phone: %w", err)
	}
	return &guest, nil
}

func (r *GuestRepository) FindByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	var guest domain.Guest
	query := `SELECT ` + guestColumns + ` FROM guests WHERE email = $1`
	if err := r.db.GetContext(ctx, &guest, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("find guest by email: %w", err)
	}
	return &guest, nil
}

func (r *GuestRepository) List(ctx context.Context, filter ports.GuestListFilter) ([]*domain.Guest, int64, error) {
	var b whereBuilder
	if filter.Name != "" {
		b.like("name", filter.Name)
	}
	if filter.Phone != "" {
		b.like("phone", filter.Phone)
	}
	if filter.Email != "" {
		b.like("email", filter.Email)
	}
	if filter.Gender != nil {
		b.add("gender = $%d", *filter.Gender)
	}
	if filter.Nationality != "" {
		b.like("nationality", filter.Nationality)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM guests `+b.clause(), b.args...); err != nil {
		return nil, 0, fmt.Errorf("count guests: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM guests %s ORDER BY name %s`,
		guestColumns, b.clause(), page(filter.Page, filter.Limit))

	guests := []*domain.Guest{}
	if err := r.db.SelectContext(ctx, &guests, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("list guests: %w", err)
	}
	return guests, total, nil
}

func (r *GuestRepository) SearchByName(ctx context.Context, name string, limit int) ([]*domain.Guest, error) {
	query := fmt.Sprintf(`SELECT %s FROM guests WHERE name ILIKE '%%' || $1 || '%%' ORDER BY name LIMIT %d`,
		guestColumns, limit)

	guests := []*domain.Guest{}
	if err := r.db.SelectContext(ctx, &guests, query, name); err != nil {
		return nil, fmt.Errorf("search guests: %w", err)
	}
	return guests, nil
}

func (r *GuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $1, gender = $2, date_of_birth = $3, nationality = $4,
		    phone = $5, email = $6, address = $7, description = $8,
		    updated_at = $9, updated_by = $10
		WHERE id = $11`

	res, err := r.db.ExecContext(ctx, query,
		guest.Name, guest.Gender, guest.DateOfBirth, guest.Nationality,
		guest.Phone, guest.Email, guest.Address, guest.Description,
		guest.UpdatedAt, guest.UpdatedBy, guest.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrGuestExists
		}
		return fmt.Errorf("update guest: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}
