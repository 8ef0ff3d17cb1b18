package movement

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
)

type MovementRepository interface {
	AppendTx(ctx context.Context, tx *sqlx.Tx, mv *model.MovementEntity) (uint64, error)
	GetByHashTx(ctx context.Context, tx *sqlx.Tx, hash string) (*model.MovementEntity, error)
	LockStockLevelsTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, buckets []constant.BucketType) error
	SumQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, bucket constant.BucketType) (int64, error)
	SumQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error)
	SumQuantityByLocation(ctx context.Context, itemID uint64, bucket constant.BucketType) ([]model.LocationQuantity, error)
	RebuildStockLevelTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, bucket constant.BucketType) (int64, error)
	List(ctx context.Context, itemID, locationID uint64, limit int) ([]model.MovementEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMovementRepository(conn *sqlx.DB) MovementRepository {
	return &SQL{conn: conn}
}

// AppendTx inserts one immutable ledger row and folds its quantity into the
// stock_levels summary in the same transaction. A movement whose hash is
// already present is not inserted again; the existing id is returned so a
// retried append stays idempotent.
func (r *SQL) AppendTx(ctx context.Context, tx *sqlx.Tx, mv *model.MovementEntity) (uint64, error) {
	existing, err := r.GetByHashTx(ctx, tx, mv.MovementHash)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO inventory_movements
			(location_id, item_id, movement_hash, quantity, bucket_type, note, transfer_id, order_id, line_item_id, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mv.LocationID, mv.ItemID, mv.MovementHash, mv.Quantity, mv.BucketType, mv.Note,
		mv.TransferID, mv.OrderID, mv.LineItemID, mv.UserID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	// keep the derived summary in step with the ledger
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO stock_levels (item_id, location_id, bucket_type, quantity)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)`,
		mv.ItemID, mv.LocationID, mv.BucketType, mv.Quantity); err != nil {
		return 0, err
	}

	return uint64(id), nil
}

func (r *SQL) GetByHashTx(ctx context.Context, tx *sqlx.Tx, hash string) (*model.MovementEntity, error) {
	var mv model.MovementEntity
	err := tx.GetContext(ctx, &mv,
		`SELECT id, location_id, item_id, movement_hash, quantity, bucket_type, note,
			transfer_id, order_id, line_item_id, user_id, created_at
		FROM inventory_movements WHERE movement_hash = ?`, hash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mv, nil
}

// LockStockLevelsTx takes row locks on the summary rows for one
// (item, location) key. Missing rows are created first so there is always
// something to lock. Buckets are locked in the given order; callers pass
// them in constant.BucketTypes order to keep lock acquisition stable across
// concurrent transactions.
func (r *SQL) LockStockLevelsTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, buckets []constant.BucketType) error {
	for _, b := range buckets {
		if _, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO stock_levels (item_id, location_id, bucket_type, quantity) VALUES (?, ?, ?, 0)",
			itemID, locationID, b); err != nil {
			return err
		}
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(buckets)), ",")
	args := []interface{}{itemID, locationID}
	for _, b := range buckets {
		args = append(args, b)
	}
	rows, err := tx.QueryxContext(ctx,
		"SELECT item_id FROM stock_levels WHERE item_id = ? AND location_id = ? AND bucket_type IN ("+placeholders+") ORDER BY bucket_type FOR UPDATE",
		args...)
	if err != nil {
		return err
	}
	return rows.Close()
}

func (r *SQL) SumQuantityTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, bucket constant.BucketType) (int64, error) {
	var total sql.NullInt64
	err := tx.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(quantity),0) FROM inventory_movements WHERE item_id = ? AND location_id = ? AND bucket_type = ?",
		itemID, locationID, bucket)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) SumQuantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error) {
	var total sql.NullInt64
	err := r.conn.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(quantity),0) FROM inventory_movements WHERE item_id = ? AND location_id = ? AND bucket_type = ?",
		itemID, locationID, bucket)
	if err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQL) SumQuantityByLocation(ctx context.Context, itemID uint64, bucket constant.BucketType) ([]model.LocationQuantity, error) {
	quantities := make([]model.LocationQuantity, 0)
	err := r.conn.SelectContext(ctx, &quantities,
		`SELECT location_id, COALESCE(SUM(quantity),0) AS quantity
		FROM inventory_movements
		WHERE item_id = ? AND bucket_type = ?
		GROUP BY location_id`,
		itemID, bucket)
	if err != nil {
		return nil, err
	}
	return quantities, nil
}

// RebuildStockLevelTx recomputes one summary row by replaying the ledger
// for its key, returning the rebuilt quantity.
func (r *SQL) RebuildStockLevelTx(ctx context.Context, tx *sqlx.Tx, itemID, locationID uint64, bucket constant.BucketType) (int64, error) {
	if err := r.LockStockLevelsTx(ctx, tx, itemID, locationID, []constant.BucketType{bucket}); err != nil {
		return 0, err
	}
	total, err := r.SumQuantityTx(ctx, tx, itemID, locationID, bucket)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE stock_levels SET quantity = ? WHERE item_id = ? AND location_id = ? AND bucket_type = ?",
		total, itemID, locationID, bucket); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) List(ctx context.Context, itemID, locationID uint64, limit int) ([]model.MovementEntity, error) {
	movements := make([]model.MovementEntity, 0)
	err := r.conn.SelectContext(ctx, &movements,
		`SELECT id, location_id, item_id, movement_hash, quantity, bucket_type, note,
			transfer_id, order_id, line_item_id, user_id, created_at
		FROM inventory_movements
		WHERE item_id = ? AND location_id = ?
		ORDER BY id DESC LIMIT ?`,
		itemID, locationID, limit)
	if err != nil {
		return nil, err
	}
	return movements, nil
}
