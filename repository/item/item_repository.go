package item

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-ledger/model"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.ItemEntity) (*model.ItemEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error)
	GetByPurchasableID(ctx context.Context, purchasableID uint64) (*model.ItemEntity, error)
	UpdateCustoms(ctx context.Context, id uint64, originCountry, originRegion, hsCode string) error
	DeleteByPurchasableID(ctx context.Context, purchasableID uint64) (int64, error)
	Exists(ctx context.Context, id uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewItemRepository(conn *sqlx.DB) ItemRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Create(ctx context.Context, item *model.ItemEntity) (*model.ItemEntity, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO inventory_items (purchasable_id, origin_country, origin_region, hs_code) VALUES (?, ?, ?, ?)",
		item.PurchasableID, item.OriginCountry, item.OriginRegion, item.HSCode)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	item.ID = uint64(id)
	return item, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	var item model.ItemEntity
	err := r.conn.GetContext(ctx, &item,
		"SELECT id, purchasable_id, origin_country, origin_region, hs_code, created_at FROM inventory_items WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SQL) GetByPurchasableID(ctx context.Context, purchasableID uint64) (*model.ItemEntity, error) {
	var item model.ItemEntity
	err := r.conn.GetContext(ctx, &item,
		"SELECT id, purchasable_id, origin_country, origin_region, hs_code, created_at FROM inventory_items WHERE purchasable_id = ?", purchasableID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *SQL) UpdateCustoms(ctx context.Context, id uint64, originCountry, originRegion, hsCode string) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE inventory_items SET origin_country = ?, origin_region = ?, hs_code = ? WHERE id = ?",
		originCountry, originRegion, hsCode, id)
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

func (r *SQL) DeleteByPurchasableID(ctx context.Context, purchasableID uint64) (int64, error) {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM inventory_items WHERE purchasable_id = ?", purchasableID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQL) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.conn.GetContext(ctx, &one, "SELECT 1 FROM inventory_items WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
