package transfer

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	itemrepo "github.com/muhammadheryan/inventory-ledger/repository/item"
	locationrepo "github.com/muhammadheryan/inventory-ledger/repository/location"
	movementrepo "github.com/muhammadheryan/inventory-ledger/repository/movement"
	redisrepo "github.com/muhammadheryan/inventory-ledger/repository/redis"
	transferrepo "github.com/muhammadheryan/inventory-ledger/repository/transfer"
	txrepo "github.com/muhammadheryan/inventory-ledger/repository/tx"
	utilsContext "github.com/muhammadheryan/inventory-ledger/utils/context"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// TransferApp drives the draft -> pending -> partial -> received state
// machine. Every transition appends ledger movements; nothing is ever
// reversed by editing a transfer. A transfer without an origin is a receipt
// from outside the system; without a destination it is a write-off.
type TransferApp interface {
	Create(ctx context.Context, req *model.CreateTransferRequest) (*model.TransferResponse, error)
	Dispatch(ctx context.Context, transferID uint64) error
	Receive(ctx context.Context, transferID uint64, req *model.ReceiveTransferRequest) (*model.TransferResponse, error)
	CancelDraft(ctx context.Context, transferID uint64) error
	Get(ctx context.Context, transferID uint64) (*model.TransferResponse, error)
	List(ctx context.Context, limit int) ([]model.TransferEntity, error)
}

type transferAppImpl struct {
	txRepo       txrepo.TxRepository
	transferRepo transferrepo.TransferRepository
	movementRepo movementrepo.MovementRepository
	itemRepo     itemrepo.ItemRepository
	locationRepo locationrepo.LocationRepository
	redisRepo    redisrepo.Repository
}

func NewTransferApp(txRepo txrepo.TxRepository, transferRepo transferrepo.TransferRepository,
	movementRepo movementrepo.MovementRepository, itemRepo itemrepo.ItemRepository,
	locationRepo locationrepo.LocationRepository, redisRepo redisrepo.Repository) TransferApp {
	return &transferAppImpl{
		txRepo:       txRepo,
		transferRepo: transferRepo,
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
		redisRepo:    redisRepo,
	}
}

func (s *transferAppImpl) Create(ctx context.Context, req *model.CreateTransferRequest) (*model.TransferResponse, error) {
	if req.OriginLocationID == nil && req.DestinationLocationID == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.OriginLocationID != nil && req.DestinationLocationID != nil &&
		*req.OriginLocationID == *req.DestinationLocationID {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if len(req.Details) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	for _, locID := range []*uint64{req.OriginLocationID, req.DestinationLocationID} {
		if locID == nil {
			continue
		}
		active, err := s.locationRepo.ExistsActive(ctx, *locID)
		if err != nil {
			logger.Error("[Create] check location", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !active {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	for _, d := range req.Details {
		if d.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		if d.ItemID == nil {
			// goods may be described textually before being catalogued
			if d.Description == "" {
				return nil, errors.SetCustomError(constant.ErrInvalidRequest)
			}
			continue
		}
		exists, err := s.itemRepo.Exists(ctx, *d.ItemID)
		if err != nil {
			logger.Error("[Create] check item", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if !exists {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Create] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	transferID, err := s.transferRepo.InsertTx(ctx, tx, &model.TransferEntity{
		Status:                constant.TransferStatusDraft,
		OriginLocationID:      req.OriginLocationID,
		DestinationLocationID: req.DestinationLocationID,
	})
	if err != nil {
		logger.Error("[Create] insert transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.transferRepo.InsertDetailsTx(ctx, tx, transferID, req.Details); err != nil {
		logger.Error("[Create] insert details", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Create] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return s.Get(ctx, transferID)
}

// Dispatch freezes the draft and marks the declared goods as on the way:
// one incoming movement per catalogued line at the destination.
func (s *transferAppImpl) Dispatch(ctx context.Context, transferID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Dispatch] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	t, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[Dispatch] get transfer", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if t.Status != constant.TransferStatusDraft {
		return errors.SetCustomError(constant.ErrInvalidTransferStatus)
	}

	details, err := s.transferRepo.GetDetailsTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[Dispatch] get details", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	actor := utilsContext.UserIDRef(ctx)
	invalidations := make([]model.StockLevel, 0)
	if t.DestinationLocationID != nil {
		for _, d := range details {
			if d.ItemID == nil {
				continue
			}
			mv := &model.MovementEntity{
				ItemID:     *d.ItemID,
				LocationID: *t.DestinationLocationID,
				BucketType: constant.BucketIncoming,
				Quantity:   d.Quantity,
				Note:       fmt.Sprintf("transfer %d dispatch detail %d", transferID, d.ID),
				TransferID: &transferID,
				UserID:     actor,
			}
			mv.MovementHash = mv.ComputeHash()
			if _, err := s.movementRepo.AppendTx(ctx, tx, mv); err != nil {
				logger.Error("[Dispatch] append incoming", zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
			invalidations = append(invalidations, model.StockLevel{
				ItemID: *d.ItemID, LocationID: *t.DestinationLocationID, BucketType: constant.BucketIncoming,
			})
		}
	}

	if err := s.transferRepo.UpdateStatusTx(ctx, tx, transferID, constant.TransferStatusPending); err != nil {
		logger.Error("[Dispatch] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Dispatch] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateAll(ctx, invalidations)
	return nil
}

// Receive records one physical receipt. Accepted units become available at
// the destination and leave the origin; rejected freight is never converted
// to available stock. The transfer ends received only when every line is
// fully receipted.
func (s *transferAppImpl) Receive(ctx context.Context, transferID uint64, req *model.ReceiveTransferRequest) (*model.TransferResponse, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Receive] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	t, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[Receive] get transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if t.Status != constant.TransferStatusPending && t.Status != constant.TransferStatusPartial {
		return nil, errors.SetCustomError(constant.ErrInvalidTransferStatus)
	}

	details, err := s.transferRepo.GetDetailsTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[Receive] get details", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	byID := make(map[uint64]*model.TransferDetailEntity, len(details))
	for i := range details {
		byID[details[i].ID] = &details[i]
	}

	actor := utilsContext.UserIDRef(ctx)
	invalidations := make([]model.StockLevel, 0)
	for _, line := range req.Lines {
		d, ok := byID[line.DetailID]
		if !ok {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		if line.QuantityAccepted < 0 || line.QuantityRejected < 0 ||
			line.QuantityAccepted+line.QuantityRejected == 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}

		receipted := d.QuantityAccepted + d.QuantityRejected
		increment := line.QuantityAccepted + line.QuantityRejected
		if receipted+increment > d.Quantity {
			return nil, errors.SetCustomError(constant.ErrInvariantViolation)
		}

		// note carries the receipt range so repeated receipts of the same
		// line hash distinctly while a retried call dedupes
		rangeNote := fmt.Sprintf("units %d-%d", receipted+1, receipted+increment)

		if d.ItemID != nil {
			if t.DestinationLocationID != nil {
				if line.QuantityAccepted > 0 {
					in := &model.MovementEntity{
						ItemID:     *d.ItemID,
						LocationID: *t.DestinationLocationID,
						BucketType: constant.BucketAvailable,
						Quantity:   line.QuantityAccepted,
						Note:       fmt.Sprintf("transfer %d receive detail %d %s", transferID, d.ID, rangeNote),
						TransferID: &transferID,
						UserID:     actor,
					}
					in.MovementHash = in.ComputeHash()
					if _, err := s.movementRepo.AppendTx(ctx, tx, in); err != nil {
						logger.Error("[Receive] append destination available", zap.String("error", err.Error()))
						return nil, errors.SetCustomError(constant.ErrInternal)
					}
					invalidations = append(invalidations, model.StockLevel{
						ItemID: *d.ItemID, LocationID: *t.DestinationLocationID, BucketType: constant.BucketAvailable,
					})
				}

				// the receipted amount is no longer in transit
				transit := &model.MovementEntity{
					ItemID:     *d.ItemID,
					LocationID: *t.DestinationLocationID,
					BucketType: constant.BucketIncoming,
					Quantity:   -increment,
					Note:       fmt.Sprintf("transfer %d receipt detail %d %s", transferID, d.ID, rangeNote),
					TransferID: &transferID,
					UserID:     actor,
				}
				transit.MovementHash = transit.ComputeHash()
				if _, err := s.movementRepo.AppendTx(ctx, tx, transit); err != nil {
					logger.Error("[Receive] append incoming credit", zap.String("error", err.Error()))
					return nil, errors.SetCustomError(constant.ErrInternal)
				}
				invalidations = append(invalidations, model.StockLevel{
					ItemID: *d.ItemID, LocationID: *t.DestinationLocationID, BucketType: constant.BucketIncoming,
				})
			}

			if t.OriginLocationID != nil && line.QuantityAccepted > 0 {
				out := &model.MovementEntity{
					ItemID:     *d.ItemID,
					LocationID: *t.OriginLocationID,
					BucketType: constant.BucketAvailable,
					Quantity:   -line.QuantityAccepted,
					Note:       fmt.Sprintf("transfer %d receive detail %d %s", transferID, d.ID, rangeNote),
					TransferID: &transferID,
					UserID:     actor,
				}
				out.MovementHash = out.ComputeHash()
				if _, err := s.movementRepo.AppendTx(ctx, tx, out); err != nil {
					logger.Error("[Receive] append origin debit", zap.String("error", err.Error()))
					return nil, errors.SetCustomError(constant.ErrInternal)
				}
				invalidations = append(invalidations, model.StockLevel{
					ItemID: *d.ItemID, LocationID: *t.OriginLocationID, BucketType: constant.BucketAvailable,
				})
			}
		}

		if err := s.transferRepo.UpdateDetailReceiptTx(ctx, tx, d.ID, line.QuantityAccepted, line.QuantityRejected); err != nil {
			logger.Error("[Receive] update detail", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		d.QuantityAccepted += line.QuantityAccepted
		d.QuantityRejected += line.QuantityRejected
	}

	status := constant.TransferStatusReceived
	for _, d := range details {
		if d.QuantityAccepted+d.QuantityRejected < d.Quantity {
			status = constant.TransferStatusPartial
			break
		}
	}
	if err := s.transferRepo.UpdateStatusTx(ctx, tx, transferID, status); err != nil {
		logger.Error("[Receive] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Receive] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidateAll(ctx, invalidations)
	return s.Get(ctx, transferID)
}

// CancelDraft deletes a draft outright. Only drafts can be cancelled: once
// dispatched a transfer has ledger movements and stays for audit.
func (s *transferAppImpl) CancelDraft(ctx context.Context, transferID uint64) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CancelDraft] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	t, err := s.transferRepo.GetByIDTx(ctx, tx, transferID)
	if err != nil {
		logger.Error("[CancelDraft] get transfer", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if t.Status != constant.TransferStatusDraft {
		return errors.SetCustomError(constant.ErrInvalidTransferStatus)
	}

	if err := s.transferRepo.DeleteDraftTx(ctx, tx, transferID); err != nil {
		logger.Error("[CancelDraft] delete draft", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CancelDraft] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

func (s *transferAppImpl) Get(ctx context.Context, transferID uint64) (*model.TransferResponse, error) {
	t, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		logger.Error("[Get] get transfer", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if t == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	details, err := s.transferRepo.GetDetails(ctx, transferID)
	if err != nil {
		logger.Error("[Get] get details", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return &model.TransferResponse{Transfer: *t, Details: details}, nil
}

func (s *transferAppImpl) List(ctx context.Context, limit int) ([]model.TransferEntity, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	transfers, err := s.transferRepo.List(ctx, limit)
	if err != nil {
		logger.Error("[List] list transfers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return transfers, nil
}

func (s *transferAppImpl) invalidateAll(ctx context.Context, keys []model.StockLevel) {
	for _, k := range keys {
		if err := s.redisRepo.InvalidateQuantity(ctx, k.ItemID, k.LocationID, k.BucketType); err != nil {
			logger.Warn("[invalidateAll] cache", zap.String("error", err.Error()))
		}
	}
}
