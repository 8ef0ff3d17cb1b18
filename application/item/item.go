package item

import (
	"context"
	"database/sql"

	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	itemrepo "github.com/muhammadheryan/inventory-ledger/repository/item"
	"github.com/muhammadheryan/inventory-ledger/thirdparty/catalog"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// ItemApp is the inventory item registry: exactly one item per
// stock-tracked purchasable. The catalog service stays the authority on
// what exists; this registry only mirrors it with stock identity.
type ItemApp interface {
	Create(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error)
	Get(ctx context.Context, id uint64) (*model.ItemEntity, error)
	UpdateCustoms(ctx context.Context, id uint64, req *model.UpdateCustomsRequest) error
	HandlePurchasableDeleted(ctx context.Context, purchasableID uint64) error
}

type itemAppImpl struct {
	itemRepo itemrepo.ItemRepository
	catalog  catalog.Client
}

func NewItemApp(itemRepo itemrepo.ItemRepository, catalogClient catalog.Client) ItemApp {
	return &itemAppImpl{
		itemRepo: itemRepo,
		catalog:  catalogClient,
	}
}

func (s *itemAppImpl) Create(ctx context.Context, req *model.CreateItemRequest) (*model.ItemEntity, error) {
	exists, err := s.catalog.PurchasableExists(ctx, req.PurchasableID)
	if err != nil {
		logger.Error("[Create] catalog lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	existing, err := s.itemRepo.GetByPurchasableID(ctx, req.PurchasableID)
	if err != nil {
		logger.Error("[Create] check existing", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrItemExists)
	}

	item, err := s.itemRepo.Create(ctx, &model.ItemEntity{
		PurchasableID: req.PurchasableID,
		OriginCountry: req.OriginCountry,
		OriginRegion:  req.OriginRegion,
		HSCode:        req.HSCode,
	})
	if err != nil {
		logger.Error("[Create] insert item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return item, nil
}

func (s *itemAppImpl) Get(ctx context.Context, id uint64) (*model.ItemEntity, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] get item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if item == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return item, nil
}

// UpdateCustoms touches the only mutable item fields: customs metadata.
func (s *itemAppImpl) UpdateCustoms(ctx context.Context, id uint64, req *model.UpdateCustomsRequest) error {
	err := s.itemRepo.UpdateCustoms(ctx, id, req.OriginCountry, req.OriginRegion, req.HSCode)
	if err == sql.ErrNoRows {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err != nil {
		logger.Error("[UpdateCustoms] update item", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// HandlePurchasableDeleted cascades a catalog deletion: the item row goes,
// future movements against it are rejected, historical movements remain
// for audit. Deleting an already-absent item is a no-op so the event
// consumer can redeliver safely.
func (s *itemAppImpl) HandlePurchasableDeleted(ctx context.Context, purchasableID uint64) error {
	deleted, err := s.itemRepo.DeleteByPurchasableID(ctx, purchasableID)
	if err != nil {
		logger.Error("[HandlePurchasableDeleted] delete item", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if deleted > 0 {
		logger.Info("[HandlePurchasableDeleted] item retired", zap.Uint64("purchasable_id", purchasableID))
	}
	return nil
}
