package commitment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
)

type CommitmentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.CommitmentEntity) (uint64, error)
	GetByReferenceTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.CommitmentEntity, error)
	ResolveTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.CommitmentStatus) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewCommitmentRepository(conn *sqlx.DB) CommitmentRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, c *model.CommitmentEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO stock_commitments (reference, item_id, location_id, quantity, status) VALUES (?, ?, ?, ?, ?)",
		c.Reference, c.ItemID, c.LocationID, c.Quantity, constant.CommitmentStatusOpen)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByReferenceTx locks the commitment row so concurrent resolutions of
// the same reference serialize.
func (r *SQL) GetByReferenceTx(ctx context.Context, tx *sqlx.Tx, reference string) (*model.CommitmentEntity, error) {
	var c model.CommitmentEntity
	err := tx.GetContext(ctx, &c,
		"SELECT id, reference, item_id, location_id, quantity, status, created_at, resolved_at FROM stock_commitments WHERE reference = ? FOR UPDATE",
		reference)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *SQL) ResolveTx(ctx context.Context, tx *sqlx.Tx, id uint64, status constant.CommitmentStatus) error {
	res, err := tx.ExecContext(ctx,
		"UPDATE stock_commitments SET status = ?, resolved_at = NOW() WHERE id = ? AND status = ?",
		status, id, constant.CommitmentStatusOpen)
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
