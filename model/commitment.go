package model

import (
	"time"

	"github.com/muhammadheryan/inventory-ledger/constant"
)

// CommitmentEntity represents the stock_commitments table entity. It is
// coordinator bookkeeping only; the ledger movements remain the stock truth.
type CommitmentEntity struct {
	ID         uint64                    `db:"id" json:"id"`
	Reference  string                    `db:"reference" json:"reference"`
	ItemID     uint64                    `db:"item_id" json:"item_id"`
	LocationID uint64                    `db:"location_id" json:"location_id"`
	Quantity   int64                     `db:"quantity" json:"quantity"`
	Status     constant.CommitmentStatus `db:"status" json:"status"`
	CreatedAt  time.Time                 `db:"created_at" json:"created_at"`
	ResolvedAt *time.Time                `db:"resolved_at" json:"resolved_at,omitempty"`
}

// CommitRequest asks the coordinator to hold quantity units of an item at a
// location on behalf of an in-progress order line.
type CommitRequest struct {
	ItemID     uint64  `json:"item_id" validate:"required"`
	LocationID uint64  `json:"location_id" validate:"required"`
	Quantity   int64   `json:"quantity" validate:"required,gt=0"`
	Reference  string  `json:"reference"`
	OrderID    *uint64 `json:"order_id"`
	LineItemID *uint64 `json:"line_item_id"`
}

type CommitResponse struct {
	Reference string    `json:"reference"`
	ExpiresAt time.Time `json:"expires_at"`
}
