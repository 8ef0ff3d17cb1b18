package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appledger "github.com/muhammadheryan/inventory-ledger/application/ledger"
	"github.com/muhammadheryan/inventory-ledger/cmd/config"
	"github.com/muhammadheryan/inventory-ledger/constant"
	itemmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/item"
	locationmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/location"
	movementmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/movement"
	redismocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/redis"
	txmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-ledger/model"
	cerr "github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func ledgerConfig() *config.Config {
	return &config.Config{
		Redis: config.RedisConfig{
			QuantityTTL: 5 * time.Minute,
		},
	}
}

func TestLedgerApp_Append(t *testing.T) {
	type fields struct {
		txRepo       *txmocks.TxRepository
		movementRepo *movementmocks.MovementRepository
		itemRepo     *itemmocks.ItemRepository
		locationRepo *locationmocks.LocationRepository
		redisRepo    *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.AppendMovementRequest
		mockCall func(f fields)
		wantID   uint64
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: movement appended with computed hash",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				movementRepo: movementmocks.NewMovementRepository(t),
				itemRepo:     itemmocks.NewItemRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			req: &model.AppendMovementRequest{
				ItemID:     1,
				LocationID: 2,
				BucketType: string(constant.BucketAvailable),
				Quantity:   25,
				Note:       "initial stock intake",
			},
			mockCall: func(f fields) {
				f.itemRepo.On("Exists", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.ItemID == 1 && mv.LocationID == 2 &&
						mv.BucketType == constant.BucketAvailable && mv.Quantity == 25 &&
						len(mv.MovementHash) == 64
				})).Return(uint64(50), nil).Once()

				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).Return(nil).Once()
			},
			wantID: 50,
		},
		{
			name: "error: unknown bucket",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				movementRepo: movementmocks.NewMovementRepository(t),
				itemRepo:     itemmocks.NewItemRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			req: &model.AppendMovementRequest{
				ItemID:     1,
				LocationID: 2,
				BucketType: "backorder",
				Quantity:   25,
			},
			wantErr: true,
			errCode: constant.ErrInvalidBucket,
		},
		{
			name: "error: zero quantity",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				movementRepo: movementmocks.NewMovementRepository(t),
				itemRepo:     itemmocks.NewItemRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			req: &model.AppendMovementRequest{
				ItemID:     1,
				LocationID: 2,
				BucketType: string(constant.BucketDamaged),
				Quantity:   0,
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: location soft-deleted",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				movementRepo: movementmocks.NewMovementRepository(t),
				itemRepo:     itemmocks.NewItemRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			req: &model.AppendMovementRequest{
				ItemID:     1,
				LocationID: 8,
				BucketType: string(constant.BucketAvailable),
				Quantity:   3,
			},
			mockCall: func(f fields) {
				f.itemRepo.On("Exists", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(8)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "success: negative quantity is a correction, not an error",
			fields: fields{
				txRepo:       txmocks.NewTxRepository(t),
				movementRepo: movementmocks.NewMovementRepository(t),
				itemRepo:     itemmocks.NewItemRepository(t),
				locationRepo: locationmocks.NewLocationRepository(t),
				redisRepo:    redismocks.NewRepository(t),
			},
			req: &model.AppendMovementRequest{
				ItemID:     1,
				LocationID: 2,
				BucketType: string(constant.BucketDamaged),
				Quantity:   -4,
				Note:       "miscounted damaged units",
			},
			mockCall: func(f fields) {
				f.itemRepo.On("Exists", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.Quantity == -4 && mv.BucketType == constant.BucketDamaged
				})).Return(uint64(51), nil).Once()

				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketDamaged).Return(nil).Once()
			},
			wantID: 51,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appledger.NewLedgerApp(ledgerConfig(), tt.fields.txRepo, tt.fields.movementRepo,
				tt.fields.itemRepo, tt.fields.locationRepo, tt.fields.redisRepo)

			got, err := app.Append(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Append() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.MovementID != tt.wantID {
				t.Fatalf("Append() MovementID = %d, want %d", got.MovementID, tt.wantID)
			}
		})
	}
}

func TestLedgerApp_Quantity(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(movementRepo *movementmocks.MovementRepository, redisRepo *redismocks.Repository)
		want     int64
		wantErr  bool
	}{
		{
			name: "cache hit skips the ledger fold",
			mockCall: func(movementRepo *movementmocks.MovementRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(42), true, nil).Once()
			},
			want: 42,
		},
		{
			name: "cache miss folds the ledger and backfills",
			mockCall: func(movementRepo *movementmocks.MovementRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(0), false, nil).Once()
				movementRepo.On("SumQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(17), nil).Once()
				redisRepo.On("SetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable, int64(17), 5*time.Minute).
					Return(nil).Once()
			},
			want: 17,
		},
		{
			name: "cache failure falls through to the ledger",
			mockCall: func(movementRepo *movementmocks.MovementRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(0), false, errors.New("redis down")).Once()
				movementRepo.On("SumQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(9), nil).Once()
				redisRepo.On("SetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable, int64(9), 5*time.Minute).
					Return(nil).Once()
			},
			want: 9,
		},
		{
			name: "ledger failure surfaces",
			mockCall: func(movementRepo *movementmocks.MovementRepository, redisRepo *redismocks.Repository) {
				redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(0), false, nil).Once()
				movementRepo.On("SumQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
					Return(int64(0), errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			movementRepo := movementmocks.NewMovementRepository(t)
			redisRepo := redismocks.NewRepository(t)
			tt.mockCall(movementRepo, redisRepo)

			app := appledger.NewLedgerApp(ledgerConfig(), txmocks.NewTxRepository(t), movementRepo,
				itemmocks.NewItemRepository(t), locationmocks.NewLocationRepository(t), redisRepo)

			got, err := app.Quantity(context.Background(), 1, 2, constant.BucketAvailable)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quantity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("Quantity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLedgerApp_IsAvailable(t *testing.T) {
	tests := []struct {
		name      string
		available int64
		held      int64
		ask       int64
		wantFree  int64
		wantOK    bool
	}{
		{name: "holds count against stock", available: 10, held: 4, ask: 6, wantFree: 6, wantOK: true},
		{name: "one short", available: 10, held: 5, ask: 6, wantFree: 5, wantOK: false},
		{name: "negative free stock never satisfies", available: 2, held: 5, ask: 1, wantFree: -3, wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).
				Return(tt.available, true, nil).Once()
			redisRepo.On("GetQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketCommitted).
				Return(tt.held, true, nil).Once()

			app := appledger.NewLedgerApp(ledgerConfig(), txmocks.NewTxRepository(t), movementmocks.NewMovementRepository(t),
				itemmocks.NewItemRepository(t), locationmocks.NewLocationRepository(t), redisRepo)

			got, err := app.IsAvailable(context.Background(), 1, 2, tt.ask)
			if err != nil {
				t.Fatalf("IsAvailable() error = %v", err)
			}
			if got.Quantity != tt.wantFree {
				t.Fatalf("IsAvailable() Quantity = %d, want %d", got.Quantity, tt.wantFree)
			}
			if got.Available != tt.wantOK {
				t.Fatalf("IsAvailable() Available = %v, want %v", got.Available, tt.wantOK)
			}
		})
	}
}

func TestLedgerApp_RebuildStockLevel(t *testing.T) {
	txRepo := txmocks.NewTxRepository(t)
	movementRepo := movementmocks.NewMovementRepository(t)
	redisRepo := redismocks.NewRepository(t)

	tx := &sqlx.Tx{}
	txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	txRepo.On("CommitTx", tx).Return(nil).Once()
	movementRepo.On("RebuildStockLevelTx", mock.Anything, tx, uint64(1), uint64(2), constant.BucketAvailable).
		Return(int64(73), nil).Once()
	redisRepo.On("InvalidateQuantity", mock.Anything, uint64(1), uint64(2), constant.BucketAvailable).Return(nil).Once()

	app := appledger.NewLedgerApp(ledgerConfig(), txRepo, movementRepo,
		itemmocks.NewItemRepository(t), locationmocks.NewLocationRepository(t), redisRepo)

	got, err := app.RebuildStockLevel(context.Background(), 1, 2, constant.BucketAvailable)
	if err != nil {
		t.Fatalf("RebuildStockLevel() error = %v", err)
	}
	if got != 73 {
		t.Fatalf("RebuildStockLevel() = %d, want 73", got)
	}
}

func TestLedgerApp_QuantityAcrossLocations(t *testing.T) {
	itemRepo := itemmocks.NewItemRepository(t)
	movementRepo := movementmocks.NewMovementRepository(t)

	itemRepo.On("Exists", mock.Anything, uint64(1)).Return(true, nil).Once()
	movementRepo.On("SumQuantityByLocation", mock.Anything, uint64(1), constant.BucketAvailable).
		Return([]model.LocationQuantity{
			{LocationID: 2, Quantity: 40},
			{LocationID: 3, Quantity: 12},
		}, nil).Once()

	app := appledger.NewLedgerApp(ledgerConfig(), txmocks.NewTxRepository(t), movementRepo,
		itemRepo, locationmocks.NewLocationRepository(t), redismocks.NewRepository(t))

	got, err := app.QuantityAcrossLocations(context.Background(), 1, constant.BucketAvailable)
	if err != nil {
		t.Fatalf("QuantityAcrossLocations() error = %v", err)
	}
	if got[2] != 40 || got[3] != 12 {
		t.Fatalf("QuantityAcrossLocations() = %v", got)
	}
}
