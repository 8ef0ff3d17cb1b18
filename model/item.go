package model

import "time"

// ItemEntity represents the inventory_items table entity. One row per
// stock-tracked purchasable (1:1).
type ItemEntity struct {
	ID            uint64    `db:"id" json:"id"`
	PurchasableID uint64    `db:"purchasable_id" json:"purchasable_id"`
	OriginCountry string    `db:"origin_country" json:"origin_country,omitempty"`
	OriginRegion  string    `db:"origin_region" json:"origin_region,omitempty"`
	HSCode        string    `db:"hs_code" json:"hs_code,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CreateItemRequest registers a purchasable as stock-tracked
type CreateItemRequest struct {
	PurchasableID uint64 `json:"purchasable_id" validate:"required"`
	OriginCountry string `json:"origin_country" validate:"omitempty,len=2"`
	OriginRegion  string `json:"origin_region"`
	HSCode        string `json:"hs_code"`
}

// UpdateCustomsRequest mutates the only mutable part of an item
type UpdateCustomsRequest struct {
	OriginCountry string `json:"origin_country" validate:"omitempty,len=2"`
	OriginRegion  string `json:"origin_region"`
	HSCode        string `json:"hs_code"`
}
