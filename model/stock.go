package model

import "github.com/muhammadheryan/inventory-ledger/constant"

// StockLevel is one row of the derived stock_levels summary. It is fully
// reconstructible by replaying the ledger for its key; the ledger stays
// authoritative.
type StockLevel struct {
	ItemID     uint64              `db:"item_id" json:"item_id"`
	LocationID uint64              `db:"location_id" json:"location_id"`
	BucketType constant.BucketType `db:"bucket_type" json:"bucket_type"`
	Quantity   int64               `db:"quantity" json:"quantity"`
}

// LocationQuantity pairs a location with an aggregated quantity
type LocationQuantity struct {
	LocationID uint64 `db:"location_id" json:"location_id"`
	Quantity   int64  `db:"quantity" json:"quantity"`
}

type QuantityResponse struct {
	ItemID     uint64 `json:"item_id"`
	LocationID uint64 `json:"location_id"`
	BucketType string `json:"bucket_type"`
	Quantity   int64  `json:"quantity"`
}

type AvailabilityResponse struct {
	ItemID     uint64 `json:"item_id"`
	LocationID uint64 `json:"location_id"`
	Quantity   int64  `json:"quantity"`
	Available  bool   `json:"available"`
}
