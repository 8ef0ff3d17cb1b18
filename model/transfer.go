package model

import (
	"time"

	"github.com/muhammadheryan/inventory-ledger/constant"
)

// TransferEntity represents the transfers table entity. Either side may be
// absent: no origin means a receipt from outside the system, no destination
// means a write-off out of it.
type TransferEntity struct {
	ID                    uint64                  `db:"id" json:"id"`
	Status                constant.TransferStatus `db:"status" json:"status"`
	OriginLocationID      *uint64                 `db:"origin_location_id" json:"origin_location_id,omitempty"`
	DestinationLocationID *uint64                 `db:"destination_location_id" json:"destination_location_id,omitempty"`
	CreatedAt             time.Time               `db:"created_at" json:"created_at"`
}

// TransferDetailEntity is one declared line of a transfer. ItemID is
// nullable: goods may be described textually before being catalogued.
type TransferDetailEntity struct {
	ID               uint64  `db:"id" json:"id"`
	TransferID       uint64  `db:"transfer_id" json:"transfer_id"`
	ItemID           *uint64 `db:"item_id" json:"item_id,omitempty"`
	Description      string  `db:"description" json:"description"`
	Quantity         int64   `db:"quantity" json:"quantity"`
	QuantityAccepted int64   `db:"quantity_accepted" json:"quantity_accepted"`
	QuantityRejected int64   `db:"quantity_rejected" json:"quantity_rejected"`
}

type TransferDetailRequest struct {
	ItemID      *uint64 `json:"item_id"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity" validate:"required,gt=0"`
}

type CreateTransferRequest struct {
	OriginLocationID      *uint64                 `json:"origin_location_id"`
	DestinationLocationID *uint64                 `json:"destination_location_id"`
	Details               []TransferDetailRequest `json:"details" validate:"required,dive,required"`
}

// ReceiptLine records one physical receipt against a detail line. Accepted
// and rejected are increments on top of what was already receipted.
type ReceiptLine struct {
	DetailID         uint64 `json:"detail_id" validate:"required"`
	QuantityAccepted int64  `json:"quantity_accepted" validate:"gte=0"`
	QuantityRejected int64  `json:"quantity_rejected" validate:"gte=0"`
}

type ReceiveTransferRequest struct {
	Lines []ReceiptLine `json:"lines" validate:"required,dive,required"`
}

type TransferResponse struct {
	Transfer TransferEntity         `json:"transfer"`
	Details  []TransferDetailEntity `json:"details"`
}
