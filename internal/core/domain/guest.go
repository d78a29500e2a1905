package domain

import "time"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Guest is a hotel customer. Contact fields are optional but unique when set.
type Guest struct {
	ID          int64      `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Gender      *Gender    `json:"gender,omitempty" db:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Nationality string     `json:"nationality,omitempty" db:"nationality"`
	Phone       string     `json:"phone,omitempty" db:"phone"`
	Email       string     `json:"email,omitempty" db:"email"`
	Address     string     `json:"address,omitempty" db:"address"`
	Description string     `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CreatedBy   *int64     `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy   *int64     `json:"updated_by,omitempty" db:"updated_by"`
}
