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

const serviceColumns = `id, name, unit, price, description, status,
	created_at, created_by, updated_at, updated_by`

// ServiceRepository persists the billable catalog in the services table.
type ServiceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	query := `
		INSERT INTO services (name, unit, price, description, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		svc.Name, svc.Unit, svc.Price, svc.Description, svc.Status,
		svc.CreatedAt, svc.CreatedBy,
	).Scan(&svc.ID)
	if err != nil {
		return nil, fmt.Errorf("insert service: %w", err)
	}
	return svc, nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (*domain.Service, error) {
	var svc domain.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`
	if err := r.db.GetContext(ctx, &svc, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return &svc, nil
}

func (r *ServiceRepository) List(ctx context.Context, filter ports.ServiceListFilter) ([]*domain.Service, int64, error) {
	var b whereBuilder
	if filter.Name != "" {
		b.like("name", filter.Name)
	}
	if filter.Unit != "" {
		b.like("unit", filter.Unit)
	}
	if filter.Status != nil {
		b.add("status = $%d", *filter.Status)
	}
	if filter.MinPrice != nil {
		b.add("price >= $%d", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		b.add("price <= $%d", *filter.MaxPrice)
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM services `+b.clause(), b.args...); err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM services %s ORDER BY name %s`,
		serviceColumns, b.clause(), page(filter.Page, filter.Limit))

	services := []*domain.Service{}
	if err := r.db.SelectContext(ctx, &services, query, b.args...); err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	return services, total, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	query := `
		UPDATE services
		SET name = $1, unit = $2, price = $3, description = $4, status = $5,
		    updated_at = $6, updated_by = $7
		WHERE id = $8`

	res, err := r.db.ExecContext(ctx, query,
		svc.Name, svc.Unit, svc.Price, svc.Description, svc.Status,
		svc.UpdatedAt, svc.UpdatedBy, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}
