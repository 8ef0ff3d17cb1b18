package location_test

import (
	"context"
	"errors"
	"testing"
	"time"

	applocation "github.com/muhammadheryan/inventory-ledger/application/location"
	"github.com/muhammadheryan/inventory-ledger/constant"
	locationmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/location"
	"github.com/muhammadheryan/inventory-ledger/model"
	cerr "github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func checkErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestLocationApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateLocationRequest
		mockCall func(locationRepo *locationmocks.LocationRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.CreateLocationRequest{Handle: "jakarta-main", Name: "Jakarta Main Warehouse"},
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				locationRepo.On("GetByHandle", mock.Anything, "jakarta-main").Return(nil, nil).Once()
				locationRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *model.LocationEntity) bool {
					return l.Handle == "jakarta-main" && l.Name == "Jakarta Main Warehouse"
				})).Return(&model.LocationEntity{ID: 1, Handle: "jakarta-main", Name: "Jakarta Main Warehouse"}, nil).Once()
			},
		},
		{
			name: "error: handle reserved by a soft-deleted location",
			req:  &model.CreateLocationRequest{Handle: "jakarta-main", Name: "Jakarta Main Warehouse"},
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				deletedAt := time.Now()
				locationRepo.On("GetByHandle", mock.Anything, "jakarta-main").Return(&model.LocationEntity{
					ID:        1,
					Handle:    "jakarta-main",
					DeletedAt: &deletedAt,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrHandleExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			locationRepo := locationmocks.NewLocationRepository(t)
			tt.mockCall(locationRepo)

			app := applocation.NewLocationApp(locationRepo)
			got, err := app.Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
				return
			}
			if got.Handle != tt.req.Handle {
				t.Fatalf("Create() Handle = %s, want %s", got.Handle, tt.req.Handle)
			}
		})
	}
}

func TestLocationApp_Delete(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(locationRepo *locationmocks.LocationRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: unreferenced location is removed outright",
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.LocationEntity{ID: 1, Handle: "tmp"}, nil).Once()
				locationRepo.On("HasReferences", mock.Anything, uint64(1)).Return(false, nil).Once()
				locationRepo.On("HardDelete", mock.Anything, uint64(1)).Return(nil).Once()
			},
		},
		{
			name: "referenced location is soft-deleted and the conflict reported",
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.LocationEntity{ID: 1, Handle: "main"}, nil).Once()
				locationRepo.On("HasReferences", mock.Anything, uint64(1)).Return(true, nil).Once()
				locationRepo.On("SoftDelete", mock.Anything, uint64(1)).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrReferentialConflict,
		},
		{
			name: "error: already deleted",
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				deletedAt := time.Now()
				locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.LocationEntity{
					ID:        1,
					DeletedAt: &deletedAt,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: no such location",
			mockCall: func(locationRepo *locationmocks.LocationRepository) {
				locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			locationRepo := locationmocks.NewLocationRepository(t)
			tt.mockCall(locationRepo)

			app := applocation.NewLocationApp(locationRepo)
			err := app.Delete(context.Background(), 1)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				checkErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestLocationApp_SetStores(t *testing.T) {
	t.Run("success: assignments replaced", func(t *testing.T) {
		locationRepo := locationmocks.NewLocationRepository(t)
		locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.LocationEntity{ID: 1}, nil).Once()
		locationRepo.On("SetStores", mock.Anything, uint64(1), []model.StoreAssignment{
			{StoreID: 10, SortOrder: 0},
			{StoreID: 11, SortOrder: 1},
		}).Return(nil).Once()

		app := applocation.NewLocationApp(locationRepo)
		err := app.SetStores(context.Background(), 1, &model.SetStoresRequest{
			Stores: []model.StoreAssignment{
				{StoreID: 10, SortOrder: 0},
				{StoreID: 11, SortOrder: 1},
			},
		})
		if err != nil {
			t.Fatalf("SetStores() error = %v", err)
		}
	})

	t.Run("error: soft-deleted location rejects assignments", func(t *testing.T) {
		locationRepo := locationmocks.NewLocationRepository(t)
		deletedAt := time.Now()
		locationRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.LocationEntity{
			ID:        1,
			DeletedAt: &deletedAt,
		}, nil).Once()

		app := applocation.NewLocationApp(locationRepo)
		err := app.SetStores(context.Background(), 1, &model.SetStoresRequest{
			Stores: []model.StoreAssignment{{StoreID: 10}},
		})
		if err == nil {
			t.Fatal("SetStores() expected error")
		}
		checkErrCode(t, err, constant.ErrNotFound)
	})
}
