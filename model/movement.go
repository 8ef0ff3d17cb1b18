package model

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/muhammadheryan/inventory-ledger/constant"
)

// MovementEntity represents one row of the append-only inventory_movements
// ledger. Rows are never updated or deleted; corrections are new offsetting
// movements.
type MovementEntity struct {
	ID           uint64              `db:"id" json:"id"`
	LocationID   uint64              `db:"location_id" json:"location_id"`
	ItemID       uint64              `db:"item_id" json:"item_id"`
	MovementHash string              `db:"movement_hash" json:"movement_hash"`
	Quantity     int64               `db:"quantity" json:"quantity"`
	BucketType   constant.BucketType `db:"bucket_type" json:"bucket_type"`
	Note         string              `db:"note" json:"note,omitempty"`
	TransferID   *uint64             `db:"transfer_id" json:"transfer_id,omitempty"`
	OrderID      *uint64             `db:"order_id" json:"order_id,omitempty"`
	LineItemID   *uint64             `db:"line_item_id" json:"line_item_id,omitempty"`
	UserID       *uint64             `db:"user_id" json:"user_id,omitempty"`
	CreatedAt    time.Time           `db:"created_at" json:"created_at"`
}

// ComputeHash derives the content-addressed movement hash. Two appends of
// the same logical movement hash identically, so a retried append is
// detected as a duplicate instead of double-counting.
func (m *MovementEntity) ComputeHash() string {
	refPart := func(ref *uint64) string {
		if ref == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *ref)
	}
	payload := fmt.Sprintf("%d|%d|%s|%d|%s|%s|%s|%s|%s",
		m.ItemID, m.LocationID, m.BucketType, m.Quantity, m.Note,
		refPart(m.TransferID), refPart(m.OrderID), refPart(m.LineItemID), refPart(m.UserID),
	)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// AppendMovementRequest is a manual ledger append (adjustment, initial
// count, write-off). Quantity is signed.
type AppendMovementRequest struct {
	ItemID     uint64  `json:"item_id" validate:"required"`
	LocationID uint64  `json:"location_id" validate:"required"`
	BucketType string  `json:"bucket_type" validate:"required,bucket"`
	Quantity   int64   `json:"quantity" validate:"required"`
	Note       string  `json:"note"`
	OrderID    *uint64 `json:"order_id"`
	LineItemID *uint64 `json:"line_item_id"`
	// MovementHash is an optional caller-supplied idempotency key. When
	// empty the content hash of the movement is used instead.
	MovementHash string `json:"movement_hash" validate:"omitempty,len=64"`
}

type AppendMovementResponse struct {
	MovementID uint64 `json:"movement_id"`
}
