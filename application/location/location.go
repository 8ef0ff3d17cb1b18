package location

import (
	"context"
	"database/sql"

	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	locationrepo "github.com/muhammadheryan/inventory-ledger/repository/location"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

type LocationApp interface {
	Create(ctx context.Context, req *model.CreateLocationRequest) (*model.LocationEntity, error)
	Get(ctx context.Context, id uint64) (*model.LocationEntity, error)
	List(ctx context.Context, includeDeleted bool) ([]model.LocationEntity, error)
	Update(ctx context.Context, id uint64, req *model.UpdateLocationRequest) error
	Delete(ctx context.Context, id uint64) error
	SetStores(ctx context.Context, id uint64, req *model.SetStoresRequest) error
	GetStores(ctx context.Context, id uint64) ([]model.LocationStore, error)
}

type locationAppImpl struct {
	locationRepo locationrepo.LocationRepository
}

func NewLocationApp(locationRepo locationrepo.LocationRepository) LocationApp {
	return &locationAppImpl{locationRepo: locationRepo}
}

func (s *locationAppImpl) Create(ctx context.Context, req *model.CreateLocationRequest) (*model.LocationEntity, error) {
	// handle stays reserved even for soft-deleted locations, so the check
	// spans both
	existing, err := s.locationRepo.GetByHandle(ctx, req.Handle)
	if err != nil {
		logger.Error("[Create] check handle", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrHandleExists)
	}

	loc, err := s.locationRepo.Create(ctx, &model.LocationEntity{
		Handle:    req.Handle,
		Name:      req.Name,
		AddressID: req.AddressID,
	})
	if err != nil {
		logger.Error("[Create] insert location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return loc, nil
}

func (s *locationAppImpl) Get(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Get] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return loc, nil
}

func (s *locationAppImpl) List(ctx context.Context, includeDeleted bool) ([]model.LocationEntity, error) {
	locations, err := s.locationRepo.List(ctx, includeDeleted)
	if err != nil {
		logger.Error("[List] list locations", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return locations, nil
}

func (s *locationAppImpl) Update(ctx context.Context, id uint64, req *model.UpdateLocationRequest) error {
	err := s.locationRepo.Update(ctx, id, req.Name, req.AddressID)
	if err == sql.ErrNoRows {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err != nil {
		logger.Error("[Update] update location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Delete hard-deletes only when nothing references the location. With
// movements, transfers or store links in place it soft-deletes instead and
// reports the conflict, keeping historical records unambiguous.
func (s *locationAppImpl) Delete(ctx context.Context, id uint64) error {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Delete] get location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil || loc.DeletedAt != nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	referenced, err := s.locationRepo.HasReferences(ctx, id)
	if err != nil {
		logger.Error("[Delete] check references", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if referenced {
		if err := s.locationRepo.SoftDelete(ctx, id); err != nil {
			logger.Error("[Delete] soft delete", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		return errors.SetCustomError(constant.ErrReferentialConflict)
	}

	if err := s.locationRepo.HardDelete(ctx, id); err != nil {
		logger.Error("[Delete] hard delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *locationAppImpl) SetStores(ctx context.Context, id uint64, req *model.SetStoresRequest) error {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[SetStores] get location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if loc == nil || loc.DeletedAt != nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.locationRepo.SetStores(ctx, id, req.Stores); err != nil {
		logger.Error("[SetStores] set stores", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *locationAppImpl) GetStores(ctx context.Context, id uint64) ([]model.LocationStore, error) {
	stores, err := s.locationRepo.GetStores(ctx, id)
	if err != nil {
		logger.Error("[GetStores] get stores", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stores, nil
}
