package domain

import "time"

// RoomType is the rate card a room is sold under.
type RoomType struct {
	ID            int64      `json:"id" db:"id"`
	Code          string     `json:"code" db:"code"`
	Name          string     `json:"name" db:"name"`
	BaseOccupancy int        `json:"base_occupancy" db:"base_occupancy"`
	MaxOccupancy  int        `json:"max_occupancy" db:"max_occupancy"`
	BaseRate      float64    `json:"base_rate" db:"base_rate"`
	HourRate      float64    `json:"hour_rate" db:"hour_rate"`
	ExtraAdultFee float64    `json:"extra_adult_fee" db:"extra_adult_fee"`
	ExtraChildFee float64    `json:"extra_child_fee" db:"extra_child_fee"`
	Description   string     `json:"description,omitempty" db:"description"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CreatedBy     *int64     `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy     *int64     `json:"updated_by,omitempty" db:"updated_by"`
}

// RoomStatus is the front-desk view of a room.
type RoomStatus string

const (
	RoomAvailable    RoomStatus = "Available"
	RoomOccupied     RoomStatus = "Occupied"
	RoomOutOfService RoomStatus = "OutOfService"
)

func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomOutOfService:
		return true
	}
	return false
}

// HousekeepingStatus is the cleaning-crew view of a room.
type HousekeepingStatus string

const (
	RoomClean      HousekeepingStatus = "Clean"
	RoomDirty      HousekeepingStatus = "Dirty"
	RoomInspected  HousekeepingStatus = "Inspected"
	RoomOutOfOrder HousekeepingStatus = "OutOfOrder"
)

func (s HousekeepingStatus) Valid() bool {
	switch s {
	case RoomClean, RoomDirty, RoomInspected, RoomOutOfOrder:
		return true
	}
	return false
}

// Room is a sellable unit tied to a rate card.
type Room struct {
	ID                 int64              `json:"id" db:"id"`
	Name               string             `json:"name" db:"name"`
	RoomTypeID         int64              `json:"room_type_id" db:"room_type_id"`
	Description        string             `json:"description,omitempty" db:"description"`
	Status             RoomStatus         `json:"status" db:"status"`
	HousekeepingStatus HousekeepingStatus `json:"housekeeping_status" db:"housekeeping_status"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	CreatedBy          *int64             `json:"created_by,omitempty" db:"created_by"`
	UpdatedAt          *time.Time         `json:"updated_at,omitempty" db:"updated_at"`
	UpdatedBy          *int64             `json:"updated_by,omitempty" db:"updated_by"`
}
