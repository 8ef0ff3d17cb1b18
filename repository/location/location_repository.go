package location

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/inventory-ledger/model"
)

type LocationRepository interface {
	Create(ctx context.Context, loc *model.LocationEntity) (*model.LocationEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.LocationEntity, error)
	GetByHandle(ctx context.Context, handle string) (*model.LocationEntity, error)
	List(ctx context.Context, includeDeleted bool) ([]model.LocationEntity, error)
	Update(ctx context.Context, id uint64, name string, addressID *uint64) error
	SoftDelete(ctx context.Context, id uint64) error
	HardDelete(ctx context.Context, id uint64) error
	HasReferences(ctx context.Context, id uint64) (bool, error)
	SetStores(ctx context.Context, locationID uint64, stores []model.StoreAssignment) error
	GetStores(ctx context.Context, locationID uint64) ([]model.LocationStore, error)
	ExistsActive(ctx context.Context, id uint64) (bool, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

func (r *SQL) Create(ctx context.Context, loc *model.LocationEntity) (*model.LocationEntity, error) {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO inventory_locations (handle, name, address_id) VALUES (?, ?, ?)",
		loc.Handle, loc.Name, loc.AddressID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	loc.ID = uint64(id)
	return loc, nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	var loc model.LocationEntity
	err := r.conn.GetContext(ctx, &loc,
		"SELECT id, handle, name, address_id, deleted_at FROM inventory_locations WHERE id = ?", id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *SQL) GetByHandle(ctx context.Context, handle string) (*model.LocationEntity, error) {
	var loc model.LocationEntity
	err := r.conn.GetContext(ctx, &loc,
		"SELECT id, handle, name, address_id, deleted_at FROM inventory_locations WHERE handle = ?", handle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *SQL) List(ctx context.Context, includeDeleted bool) ([]model.LocationEntity, error) {
	q := "SELECT id, handle, name, address_id, deleted_at FROM inventory_locations"
	if !includeDeleted {
		q += " WHERE deleted_at IS NULL"
	}
	q += " ORDER BY id"

	locations := make([]model.LocationEntity, 0)
	if err := r.conn.SelectContext(ctx, &locations, q); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *SQL) Update(ctx context.Context, id uint64, name string, addressID *uint64) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE inventory_locations SET name = ?, address_id = ? WHERE id = ? AND deleted_at IS NULL",
		name, addressID, id)
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

func (r *SQL) SoftDelete(ctx context.Context, id uint64) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE inventory_locations SET deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL", id)
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

func (r *SQL) HardDelete(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, "DELETE FROM inventory_locations WHERE id = ?", id)
	return err
}

// HasReferences reports whether any movement, transfer or store association
// still points at the location. A referenced location may only be
// soft-deleted so historical records stay unambiguous.
func (r *SQL) HasReferences(ctx context.Context, id uint64) (bool, error) {
	var count int64
	q := `SELECT
		(SELECT COUNT(*) FROM inventory_movements WHERE location_id = ?) +
		(SELECT COUNT(*) FROM transfers WHERE origin_location_id = ? OR destination_location_id = ?) +
		(SELECT COUNT(*) FROM inventory_location_stores WHERE location_id = ?)`
	if err := r.conn.GetContext(ctx, &count, q, id, id, id, id); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *SQL) SetStores(ctx context.Context, locationID uint64, stores []model.StoreAssignment) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM inventory_location_stores WHERE location_id = ?", locationID); err != nil {
		return err
	}
	for _, s := range stores {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO inventory_location_stores (location_id, store_id, sort_order) VALUES (?, ?, ?)",
			locationID, s.StoreID, s.SortOrder); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *SQL) GetStores(ctx context.Context, locationID uint64) ([]model.LocationStore, error) {
	stores := make([]model.LocationStore, 0)
	err := r.conn.SelectContext(ctx, &stores,
		"SELECT location_id, store_id, sort_order FROM inventory_location_stores WHERE location_id = ? ORDER BY sort_order", locationID)
	if err != nil {
		return nil, err
	}
	return stores, nil
}

// ExistsActive reports whether the location exists and is not soft-deleted.
// Movements may only target active locations.
func (r *SQL) ExistsActive(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.conn.GetContext(ctx, &one,
		"SELECT 1 FROM inventory_locations WHERE id = ? AND deleted_at IS NULL", id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
