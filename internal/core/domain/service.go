package domain

import "time"

// ServiceStatus marks whether a catalog item can still be sold.
type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "Active"
	ServiceInactive ServiceStatus = "Inactive"
)

func (s ServiceStatus) Valid() bool {
	return s == ServiceActive || s == ServiceInactive
}

// Service is a billable catalog item (minibar, laundry, spa, ...).
type Service struct {
	ID          int64         `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Unit        string        `json:"unit" db:"unit"`
	Price       float64       `json:"price" db:"price"`
	Description string        `json:"description,omitempty" db:"description"`
	Status      ServiceStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	CreatedBy   *int64        `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy   *int64        `json:"updated_by,omitempty" db:"updated_by"`
}
