package ledger

import (
	"context"

	"github.com/muhammadheryan/inventory-ledger/cmd/config"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	itemrepo "github.com/muhammadheryan/inventory-ledger/repository/item"
	locationrepo "github.com/muhammadheryan/inventory-ledger/repository/location"
	movementrepo "github.com/muhammadheryan/inventory-ledger/repository/movement"
	redisrepo "github.com/muhammadheryan/inventory-ledger/repository/redis"
	txrepo "github.com/muhammadheryan/inventory-ledger/repository/tx"
	utilsContext "github.com/muhammadheryan/inventory-ledger/utils/context"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// LedgerApp owns appends to the movement ledger and is the only component
// that answers quantity questions. Current stock is always a read-time fold
// over the ledger; the redis cache and stock_levels summary are derived.
type LedgerApp interface {
	Append(ctx context.Context, req *model.AppendMovementRequest) (*model.AppendMovementResponse, error)
	Quantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error)
	QuantityAcrossLocations(ctx context.Context, itemID uint64, bucket constant.BucketType) (map[uint64]int64, error)
	IsAvailable(ctx context.Context, itemID, locationID uint64, quantity int64) (*model.AvailabilityResponse, error)
	RebuildStockLevel(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error)
	ListMovements(ctx context.Context, itemID, locationID uint64, limit int) ([]model.MovementEntity, error)
}

type ledgerAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	movementRepo movementrepo.MovementRepository
	itemRepo     itemrepo.ItemRepository
	locationRepo locationrepo.LocationRepository
	redisRepo    redisrepo.Repository
}

func NewLedgerApp(config *config.Config, txRepo txrepo.TxRepository, movementRepo movementrepo.MovementRepository,
	itemRepo itemrepo.ItemRepository, locationRepo locationrepo.LocationRepository, redisRepo redisrepo.Repository) LedgerApp {
	return &ledgerAppImpl{
		config:       config,
		txRepo:       txRepo,
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		redisRepo:    redisRepo,
	}
}

func (s *ledgerAppImpl) Append(ctx context.Context, req *model.AppendMovementRequest) (*model.AppendMovementResponse, error) {
	bucket := constant.BucketType(req.BucketType)
	if !bucket.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidBucket)
	}
	if req.Quantity == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	exists, err := s.itemRepo.Exists(ctx, req.ItemID)
	if err != nil {
		logger.Error("[Append] check item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	active, err := s.locationRepo.ExistsActive(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Append] check location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !active {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	mv := &model.MovementEntity{
		ItemID:     req.ItemID,
		LocationID: req.LocationID,
		BucketType: bucket,
		Quantity:   req.Quantity,
		Note:       req.Note,
		OrderID:    req.OrderID,
		LineItemID: req.LineItemID,
		UserID:     utilsContext.UserIDRef(ctx),
	}
	mv.MovementHash = req.MovementHash
	if mv.MovementHash == "" {
		mv.MovementHash = mv.ComputeHash()
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Append] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	movementID, err := s.movementRepo.AppendTx(ctx, tx, mv)
	if err != nil {
		logger.Error("[Append] append movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Append] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.InvalidateQuantity(ctx, req.ItemID, req.LocationID, bucket); err != nil {
		// cache self-heals on TTL, the ledger already holds the truth
		logger.Warn("[Append] invalidate cache", zap.String("error", err.Error()))
	}

	return &model.AppendMovementResponse{MovementID: movementID}, nil
}

func (s *ledgerAppImpl) Quantity(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error) {
	if !bucket.Valid() {
		return 0, errors.SetCustomError(constant.ErrInvalidBucket)
	}

	qty, hit, err := s.redisRepo.GetQuantity(ctx, itemID, locationID, bucket)
	if err != nil {
		logger.Warn("[Quantity] cache read", zap.String("error", err.Error()))
	} else if hit {
		return qty, nil
	}

	qty, err = s.movementRepo.SumQuantity(ctx, itemID, locationID, bucket)
	if err != nil {
		logger.Error("[Quantity] sum movements", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetQuantity(ctx, itemID, locationID, bucket, qty, s.config.Redis.QuantityTTL); err != nil {
		logger.Warn("[Quantity] cache write", zap.String("error", err.Error()))
	}

	return qty, nil
}

func (s *ledgerAppImpl) QuantityAcrossLocations(ctx context.Context, itemID uint64, bucket constant.BucketType) (map[uint64]int64, error) {
	if !bucket.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidBucket)
	}

	exists, err := s.itemRepo.Exists(ctx, itemID)
	if err != nil {
		logger.Error("[QuantityAcrossLocations] check item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	quantities, err := s.movementRepo.SumQuantityByLocation(ctx, itemID, bucket)
	if err != nil {
		logger.Error("[QuantityAcrossLocations] sum movements", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := make(map[uint64]int64, len(quantities))
	for _, q := range quantities {
		result[q.LocationID] = q.Quantity
	}
	return result, nil
}

// IsAvailable answers the storefront question: can quantity units be
// committed at this location right now. Open holds count against stock.
func (s *ledgerAppImpl) IsAvailable(ctx context.Context, itemID, locationID uint64, quantity int64) (*model.AvailabilityResponse, error) {
	available, err := s.Quantity(ctx, itemID, locationID, constant.BucketAvailable)
	if err != nil {
		return nil, err
	}
	committed, err := s.Quantity(ctx, itemID, locationID, constant.BucketCommitted)
	if err != nil {
		return nil, err
	}

	free := available - committed
	return &model.AvailabilityResponse{
		ItemID:     itemID,
		LocationID: locationID,
		Quantity:   free,
		Available:  free >= quantity,
	}, nil
}

func (s *ledgerAppImpl) RebuildStockLevel(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) (int64, error) {
	if !bucket.Valid() {
		return 0, errors.SetCustomError(constant.ErrInvalidBucket)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[RebuildStockLevel] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	total, err := s.movementRepo.RebuildStockLevelTx(ctx, tx, itemID, locationID, bucket)
	if err != nil {
		logger.Error("[RebuildStockLevel] rebuild", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[RebuildStockLevel] commit tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.InvalidateQuantity(ctx, itemID, locationID, bucket); err != nil {
		logger.Warn("[RebuildStockLevel] invalidate cache", zap.String("error", err.Error()))
	}

	return total, nil
}

func (s *ledgerAppImpl) ListMovements(ctx context.Context, itemID, locationID uint64, limit int) ([]model.MovementEntity, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	movements, err := s.movementRepo.List(ctx, itemID, locationID, limit)
	if err != nil {
		logger.Error("[ListMovements] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return movements, nil
}
