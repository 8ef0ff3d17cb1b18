package model

import "time"

// LocationEntity represents the inventory_locations table entity
type LocationEntity struct {
	ID        uint64     `db:"id" json:"id"`
	Handle    string     `db:"handle" json:"handle"`
	Name      string     `db:"name" json:"name"`
	AddressID *uint64    `db:"address_id" json:"address_id,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

// LocationStore associates a location with a selling channel
type LocationStore struct {
	LocationID uint64 `db:"location_id" json:"location_id"`
	StoreID    uint64 `db:"store_id" json:"store_id"`
	SortOrder  int    `db:"sort_order" json:"sort_order"`
}

type CreateLocationRequest struct {
	Handle    string  `json:"handle" validate:"required,max=255"`
	Name      string  `json:"name" validate:"required"`
	AddressID *uint64 `json:"address_id"`
}

type UpdateLocationRequest struct {
	Name      string  `json:"name" validate:"required"`
	AddressID *uint64 `json:"address_id"`
}

type SetStoresRequest struct {
	Stores []StoreAssignment `json:"stores" validate:"required,dive,required"`
}

type StoreAssignment struct {
	StoreID   uint64 `json:"store_id" validate:"required"`
	SortOrder int    `json:"sort_order"`
}
