package commitment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/inventory-ledger/cmd/config"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	commitmentrepo "github.com/muhammadheryan/inventory-ledger/repository/commitment"
	itemrepo "github.com/muhammadheryan/inventory-ledger/repository/item"
	locationrepo "github.com/muhammadheryan/inventory-ledger/repository/location"
	movementrepo "github.com/muhammadheryan/inventory-ledger/repository/movement"
	redisrepo "github.com/muhammadheryan/inventory-ledger/repository/redis"
	txrepo "github.com/muhammadheryan/inventory-ledger/repository/tx"
	"github.com/muhammadheryan/inventory-ledger/thirdparty/rabbitmq"
	utilsContext "github.com/muhammadheryan/inventory-ledger/utils/context"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// CommitmentApp turns checkout holds into ledger truth without overselling.
// The check-then-append in Commit is serialized per (item, location) by row
// locks on the key's stock_levels rows; different keys never contend.
type CommitmentApp interface {
	Commit(ctx context.Context, req *model.CommitRequest) (*model.CommitResponse, error)
	Fulfill(ctx context.Context, reference string) error
	Release(ctx context.Context, reference string) error
	ReleaseExpired(ctx context.Context, reference string) error
}

// serializationBuckets is the lock set for Commit: the decision reads
// available and committed, so both rows are locked, always in this order.
var serializationBuckets = []constant.BucketType{
	constant.BucketAvailable,
	constant.BucketCommitted,
}

type commitmentAppImpl struct {
	config         *config.Config
	txRepo         txrepo.TxRepository
	movementRepo   movementrepo.MovementRepository
	commitmentRepo commitmentrepo.CommitmentRepository
	itemRepo       itemrepo.ItemRepository
	locationRepo   locationrepo.LocationRepository
	redisRepo      redisrepo.Repository
	publisher      *rabbitmq.Publisher
}

func NewCommitmentApp(config *config.Config, txRepo txrepo.TxRepository, movementRepo movementrepo.MovementRepository,
	commitmentRepo commitmentrepo.CommitmentRepository, itemRepo itemrepo.ItemRepository,
	locationRepo locationrepo.LocationRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) CommitmentApp {
	return &commitmentAppImpl{
		config:         config,
		txRepo:         txRepo,
		movementRepo:   movementRepo,
		commitmentRepo: commitmentRepo,
		itemRepo:       itemRepo,
		locationRepo:   locationRepo,
		redisRepo:      redisRepo,
		publisher:      publisher,
	}
}

func (s *commitmentAppImpl) Commit(ctx context.Context, req *model.CommitRequest) (*model.CommitResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	reference := req.Reference
	if reference == "" {
		reference = uuid.NewString()
	}

	exists, err := s.itemRepo.Exists(ctx, req.ItemID)
	if err != nil {
		logger.Error("[Commit] check item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !exists {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	active, err := s.locationRepo.ExistsActive(ctx, req.LocationID)
	if err != nil {
		logger.Error("[Commit] check location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !active {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Commit] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// lock ordering: commitment reference row first, then stock rows,
	// matching Fulfill and Release
	existing, err := s.commitmentRepo.GetByReferenceTx(ctx, tx, reference)
	if err != nil {
		logger.Error("[Commit] get commitment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if err := s.movementRepo.LockStockLevelsTx(ctx, tx, req.ItemID, req.LocationID, serializationBuckets); err != nil {
		logger.Error("[Commit] lock stock levels", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	available, err := s.movementRepo.SumQuantityTx(ctx, tx, req.ItemID, req.LocationID, constant.BucketAvailable)
	if err != nil {
		logger.Error("[Commit] sum available", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	held, err := s.movementRepo.SumQuantityTx(ctx, tx, req.ItemID, req.LocationID, constant.BucketCommitted)
	if err != nil {
		logger.Error("[Commit] sum committed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if available-held < req.Quantity {
		logger.Info("[Commit] insufficient stock",
			zap.Uint64("item_id", req.ItemID),
			zap.Uint64("location_id", req.LocationID),
			zap.Int64("need", req.Quantity),
			zap.Int64("free", available-held))
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	if _, err := s.commitmentRepo.InsertTx(ctx, tx, &model.CommitmentEntity{
		Reference:  reference,
		ItemID:     req.ItemID,
		LocationID: req.LocationID,
		Quantity:   req.Quantity,
	}); err != nil {
		logger.Error("[Commit] insert commitment", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	mv := &model.MovementEntity{
		ItemID:     req.ItemID,
		LocationID: req.LocationID,
		BucketType: constant.BucketCommitted,
		Quantity:   req.Quantity,
		Note:       fmt.Sprintf("commit %s", reference),
		OrderID:    req.OrderID,
		LineItemID: req.LineItemID,
		UserID:     utilsContext.UserIDRef(ctx),
	}
	mv.MovementHash = mv.ComputeHash()
	if _, err := s.movementRepo.AppendTx(ctx, tx, mv); err != nil {
		logger.Error("[Commit] append movement", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Commit] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidate(ctx, req.ItemID, req.LocationID, constant.BucketCommitted)

	expiresAt := time.Now().Add(s.config.Commitment.CommitmentExpiration)
	if s.publisher != nil {
		msg := rabbitmq.CommitmentExpirationMessage{
			Reference: reference,
			ExpiresAt: expiresAt,
		}
		if err := s.publisher.PublishCommitmentExpiration(msg); err != nil {
			logger.Error("[Commit] publish expiration", zap.String("error", err.Error()))
		}
	}

	return &model.CommitResponse{
		Reference: reference,
		ExpiresAt: expiresAt,
	}, nil
}

// Fulfill debits real stock for a held commitment: available goes down by
// the held quantity and the hold nets back to zero.
func (s *commitmentAppImpl) Fulfill(ctx context.Context, reference string) error {
	return s.resolve(ctx, reference, constant.CommitmentStatusFulfilled)
}

// Release returns held stock to circulation without debiting available.
func (s *commitmentAppImpl) Release(ctx context.Context, reference string) error {
	return s.resolve(ctx, reference, constant.CommitmentStatusReleased)
}

// ReleaseExpired is the expiration-consumer path: releasing a commitment
// that was already resolved (or never existed) is a no-op, not an error,
// so delayed messages arriving after fulfillment do not requeue forever.
func (s *commitmentAppImpl) ReleaseExpired(ctx context.Context, reference string) error {
	err := s.resolve(ctx, reference, constant.CommitmentStatusReleased)
	if errors.Is(err, constant.ErrNoSuchCommitment) || errors.Is(err, constant.ErrAlreadyResolved) {
		return nil
	}
	return err
}

func (s *commitmentAppImpl) resolve(ctx context.Context, reference string, status constant.CommitmentStatus) error {
	if reference == "" {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[resolve] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	c, err := s.commitmentRepo.GetByReferenceTx(ctx, tx, reference)
	if err != nil {
		logger.Error("[resolve] get commitment", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if c == nil {
		return errors.SetCustomError(constant.ErrNoSuchCommitment)
	}
	if c.Status != constant.CommitmentStatusOpen {
		return errors.SetCustomError(constant.ErrAlreadyResolved)
	}

	if err := s.movementRepo.LockStockLevelsTx(ctx, tx, c.ItemID, c.LocationID, serializationBuckets); err != nil {
		logger.Error("[resolve] lock stock levels", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	actor := utilsContext.UserIDRef(ctx)
	if status == constant.CommitmentStatusFulfilled {
		debit := &model.MovementEntity{
			ItemID:     c.ItemID,
			LocationID: c.LocationID,
			BucketType: constant.BucketAvailable,
			Quantity:   -c.Quantity,
			Note:       fmt.Sprintf("fulfill %s", reference),
			UserID:     actor,
		}
		debit.MovementHash = debit.ComputeHash()
		if _, err := s.movementRepo.AppendTx(ctx, tx, debit); err != nil {
			logger.Error("[resolve] append available debit", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}

	noteVerb := "release"
	if status == constant.CommitmentStatusFulfilled {
		noteVerb = "fulfill"
	}
	unhold := &model.MovementEntity{
		ItemID:     c.ItemID,
		LocationID: c.LocationID,
		BucketType: constant.BucketCommitted,
		Quantity:   -c.Quantity,
		Note:       fmt.Sprintf("%s %s", noteVerb, reference),
		UserID:     actor,
	}
	unhold.MovementHash = unhold.ComputeHash()
	if _, err := s.movementRepo.AppendTx(ctx, tx, unhold); err != nil {
		logger.Error("[resolve] append committed credit", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.commitmentRepo.ResolveTx(ctx, tx, c.ID, status); err != nil {
		logger.Error("[resolve] resolve commitment", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[resolve] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidate(ctx, c.ItemID, c.LocationID, constant.BucketCommitted)
	if status == constant.CommitmentStatusFulfilled {
		s.invalidate(ctx, c.ItemID, c.LocationID, constant.BucketAvailable)
	}

	return nil
}

func (s *commitmentAppImpl) invalidate(ctx context.Context, itemID, locationID uint64, bucket constant.BucketType) {
	if err := s.redisRepo.InvalidateQuantity(ctx, itemID, locationID, bucket); err != nil {
		logger.Warn("[invalidate] cache", zap.String("error", err.Error()))
	}
}
