package transfer

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
)

type TransferRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.TransferEntity) (uint64, error)
	InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, details []model.TransferDetailRequest) error
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.TransferEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.TransferEntity, error)
	GetDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) ([]model.TransferDetailEntity, error)
	GetDetails(ctx context.Context, transferID uint64) ([]model.TransferDetailEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.TransferStatus) error
	UpdateDetailReceiptTx(ctx context.Context, tx *sqlx.Tx, detailID uint64, accepted, rejected int64) error
	DeleteDraftTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	List(ctx context.Context, limit int) ([]model.TransferEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewTransferRepository(conn *sqlx.DB) TransferRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, t *model.TransferEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO transfers (status, origin_location_id, destination_location_id) VALUES (?, ?, ?)",
		t.Status, t.OriginLocationID, t.DestinationLocationID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64, details []model.TransferDetailRequest) error {
	q := "INSERT INTO transfer_details (transfer_id, item_id, description, quantity, quantity_accepted, quantity_rejected) VALUES (?, ?, ?, ?, 0, 0)"
	for _, d := range details {
		if _, err := tx.ExecContext(ctx, q, transferID, d.ItemID, d.Description, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetByIDTx locks the transfer row so concurrent receipts of the same
// transfer serialize.
func (r *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.TransferEntity, error) {
	var t model.TransferEntity
	err := tx.GetContext(ctx, &t,
		"SELECT id, status, origin_location_id, destination_location_id, created_at FROM transfers WHERE id = ? FOR UPDATE", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.TransferEntity, error) {
	var t model.TransferEntity
	err := r.conn.GetContext(ctx, &t,
		"SELECT id, status, origin_location_id, destination_location_id, created_at FROM transfers WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQL) GetDetailsTx(ctx context.Context, tx *sqlx.Tx, transferID uint64) ([]model.TransferDetailEntity, error) {
	details := make([]model.TransferDetailEntity, 0)
	err := tx.SelectContext(ctx, &details,
		"SELECT id, transfer_id, item_id, description, quantity, quantity_accepted, quantity_rejected FROM transfer_details WHERE transfer_id = ? ORDER BY id",
		transferID)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *SQL) GetDetails(ctx context.Context, transferID uint64) ([]model.TransferDetailEntity, error) {
	details := make([]model.TransferDetailEntity, 0)
	err := r.conn.SelectContext(ctx, &details,
		"SELECT id, transfer_id, item_id, description, quantity, quantity_accepted, quantity_rejected FROM transfer_details WHERE transfer_id = ? ORDER BY id",
		transferID)
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.TransferStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE transfers SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *SQL) UpdateDetailReceiptTx(ctx context.Context, tx *sqlx.Tx, detailID uint64, accepted, rejected int64) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE transfer_details SET quantity_accepted = quantity_accepted + ?, quantity_rejected = quantity_rejected + ? WHERE id = ?",
		accepted, rejected, detailID)
	return err
}

// DeleteDraftTx removes a draft and its lines. Only drafts may be deleted;
// transfers that produced movements are part of the audit trail.
func (r *SQL) DeleteDraftTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM transfer_details WHERE transfer_id = ?", id); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM transfers WHERE id = ? AND status = ?", id, constant.TransferStatusDraft)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *SQL) List(ctx context.Context, limit int) ([]model.TransferEntity, error) {
	transfers := make([]model.TransferEntity, 0)
	err := r.conn.SelectContext(ctx, &transfers,
		"SELECT id, status, origin_location_id, destination_location_id, created_at FROM transfers ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	return transfers, nil
}
