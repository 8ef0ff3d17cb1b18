package transfer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	apptransfer "github.com/muhammadheryan/inventory-ledger/application/transfer"
	"github.com/muhammadheryan/inventory-ledger/constant"
	itemmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/item"
	locationmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/location"
	movementmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/movement"
	redismocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/redis"
	transfermocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/transfer"
	txmocks "github.com/muhammadheryan/inventory-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/inventory-ledger/model"
	cerr "github.com/muhammadheryan/inventory-ledger/utils/errors"
	"github.com/stretchr/testify/mock"
)

func uintRef(v uint64) *uint64 { return &v }

type transferMocks struct {
	txRepo       *txmocks.TxRepository
	transferRepo *transfermocks.TransferRepository
	movementRepo *movementmocks.MovementRepository
	itemRepo     *itemmocks.ItemRepository
	locationRepo *locationmocks.LocationRepository
	redisRepo    *redismocks.Repository
}

func newTransferMocks(t *testing.T) transferMocks {
	return transferMocks{
		txRepo:       txmocks.NewTxRepository(t),
		transferRepo: transfermocks.NewTransferRepository(t),
		movementRepo: movementmocks.NewMovementRepository(t),
		itemRepo:     itemmocks.NewItemRepository(t),
		locationRepo: locationmocks.NewLocationRepository(t),
		redisRepo:    redismocks.NewRepository(t),
	}
}

func (f transferMocks) app() apptransfer.TransferApp {
	return apptransfer.NewTransferApp(f.txRepo, f.transferRepo, f.movementRepo, f.itemRepo, f.locationRepo, f.redisRepo)
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestTransferApp_Create(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateTransferRequest
		mockCall func(f transferMocks)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: draft between two locations",
			req: &model.CreateTransferRequest{
				OriginLocationID:      uintRef(1),
				DestinationLocationID: uintRef(2),
				Details: []model.TransferDetailRequest{
					{ItemID: uintRef(5), Quantity: 10},
				},
			},
			mockCall: func(f transferMocks) {
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()
				f.itemRepo.On("Exists", mock.Anything, uint64(5)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(tr *model.TransferEntity) bool {
					return tr.Status == constant.TransferStatusDraft &&
						tr.OriginLocationID != nil && *tr.OriginLocationID == 1 &&
						tr.DestinationLocationID != nil && *tr.DestinationLocationID == 2
				})).Return(uint64(33), nil).Once()
				f.transferRepo.On("InsertDetailsTx", mock.Anything, tx, uint64(33), mock.Anything).Return(nil).Once()

				f.transferRepo.On("GetByID", mock.Anything, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusDraft,
				}, nil).Once()
				f.transferRepo.On("GetDetails", mock.Anything, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10},
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: external receipt has no origin",
			req: &model.CreateTransferRequest{
				DestinationLocationID: uintRef(2),
				Details: []model.TransferDetailRequest{
					{Description: "uncatalogued freight", Quantity: 4},
				},
			},
			mockCall: func(f transferMocks) {
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(34), nil).Once()
				f.transferRepo.On("InsertDetailsTx", mock.Anything, tx, uint64(34), mock.Anything).Return(nil).Once()

				f.transferRepo.On("GetByID", mock.Anything, uint64(34)).Return(&model.TransferEntity{
					ID:     34,
					Status: constant.TransferStatusDraft,
				}, nil).Once()
				f.transferRepo.On("GetDetails", mock.Anything, uint64(34)).Return([]model.TransferDetailEntity{
					{ID: 2, TransferID: 34, Description: "uncatalogued freight", Quantity: 4},
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: no locations at all",
			req: &model.CreateTransferRequest{
				Details: []model.TransferDetailRequest{{ItemID: uintRef(5), Quantity: 10}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: origin equals destination",
			req: &model.CreateTransferRequest{
				OriginLocationID:      uintRef(1),
				DestinationLocationID: uintRef(1),
				Details:               []model.TransferDetailRequest{{ItemID: uintRef(5), Quantity: 10}},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: textual line without description",
			req: &model.CreateTransferRequest{
				OriginLocationID:      uintRef(1),
				DestinationLocationID: uintRef(2),
				Details:               []model.TransferDetailRequest{{Quantity: 3}},
			},
			mockCall: func(f transferMocks) {
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: unknown item on a line",
			req: &model.CreateTransferRequest{
				OriginLocationID:      uintRef(1),
				DestinationLocationID: uintRef(2),
				Details:               []model.TransferDetailRequest{{ItemID: uintRef(99), Quantity: 3}},
			},
			mockCall: func(f transferMocks) {
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(1)).Return(true, nil).Once()
				f.locationRepo.On("ExistsActive", mock.Anything, uint64(2)).Return(true, nil).Once()
				f.itemRepo.On("Exists", mock.Anything, uint64(99)).Return(false, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Create(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Transfer.Status != constant.TransferStatusDraft {
				t.Fatalf("Create() status = %v, want draft", got.Transfer.Status)
			}
		})
	}
}

func TestTransferApp_Dispatch(t *testing.T) {
	tests := []struct {
		name       string
		transferID uint64
		mockCall   func(f transferMocks)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: catalogued lines become incoming at destination",
			transferID: 33,
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(&model.TransferEntity{
					ID:                    33,
					Status:                constant.TransferStatusDraft,
					OriginLocationID:      uintRef(1),
					DestinationLocationID: uintRef(2),
				}, nil).Once()
				f.transferRepo.On("GetDetailsTx", mock.Anything, tx, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10},
					{ID: 2, TransferID: 33, Description: "pallet of misc", Quantity: 4},
				}, nil).Once()

				// only the catalogued line moves stock
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.ItemID == 5 && mv.LocationID == 2 &&
						mv.BucketType == constant.BucketIncoming && mv.Quantity == 10
				})).Return(uint64(100), nil).Once()

				f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(33), constant.TransferStatusPending).Return(nil).Once()
				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(2), constant.BucketIncoming).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:       "error: already dispatched",
			transferID: 33,
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransferStatus,
		},
		{
			name:       "error: transfer not found",
			transferID: 404,
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().Dispatch(context.Background(), tt.transferID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dispatch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestTransferApp_Receive(t *testing.T) {
	pending := func() *model.TransferEntity {
		return &model.TransferEntity{
			ID:                    33,
			Status:                constant.TransferStatusPending,
			OriginLocationID:      uintRef(1),
			DestinationLocationID: uintRef(2),
		}
	}

	tests := []struct {
		name       string
		req        *model.ReceiveTransferRequest
		mockCall   func(f transferMocks)
		wantStatus constant.TransferStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: full receipt closes the transfer",
			req: &model.ReceiveTransferRequest{
				Lines: []model.ReceiptLine{{DetailID: 1, QuantityAccepted: 8, QuantityRejected: 2}},
			},
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(pending(), nil).Once()
				f.transferRepo.On("GetDetailsTx", mock.Anything, tx, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10},
				}, nil).Once()

				// accepted units land as available at the destination
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 2 && mv.BucketType == constant.BucketAvailable && mv.Quantity == 8
				})).Return(uint64(101), nil).Once()
				// everything receipted leaves incoming, rejects included
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 2 && mv.BucketType == constant.BucketIncoming && mv.Quantity == -10
				})).Return(uint64(102), nil).Once()
				// accepted units leave the origin
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 1 && mv.BucketType == constant.BucketAvailable && mv.Quantity == -8
				})).Return(uint64(103), nil).Once()

				f.transferRepo.On("UpdateDetailReceiptTx", mock.Anything, tx, uint64(1), int64(8), int64(2)).Return(nil).Once()
				f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(33), constant.TransferStatusReceived).Return(nil).Once()

				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(2), constant.BucketAvailable).Return(nil).Once()
				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(2), constant.BucketIncoming).Return(nil).Once()
				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(1), constant.BucketAvailable).Return(nil).Once()

				f.transferRepo.On("GetByID", mock.Anything, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusReceived,
				}, nil).Once()
				f.transferRepo.On("GetDetails", mock.Anything, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10, QuantityAccepted: 8, QuantityRejected: 2},
				}, nil).Once()
			},
			wantStatus: constant.TransferStatusReceived,
		},
		{
			name: "success: short receipt leaves the transfer partial",
			req: &model.ReceiveTransferRequest{
				Lines: []model.ReceiptLine{{DetailID: 1, QuantityAccepted: 4}},
			},
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(pending(), nil).Once()
				f.transferRepo.On("GetDetailsTx", mock.Anything, tx, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10},
				}, nil).Once()

				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 2 && mv.BucketType == constant.BucketAvailable && mv.Quantity == 4
				})).Return(uint64(101), nil).Once()
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 2 && mv.BucketType == constant.BucketIncoming && mv.Quantity == -4
				})).Return(uint64(102), nil).Once()
				f.movementRepo.On("AppendTx", mock.Anything, tx, mock.MatchedBy(func(mv *model.MovementEntity) bool {
					return mv.LocationID == 1 && mv.BucketType == constant.BucketAvailable && mv.Quantity == -4
				})).Return(uint64(103), nil).Once()

				f.transferRepo.On("UpdateDetailReceiptTx", mock.Anything, tx, uint64(1), int64(4), int64(0)).Return(nil).Once()
				f.transferRepo.On("UpdateStatusTx", mock.Anything, tx, uint64(33), constant.TransferStatusPartial).Return(nil).Once()

				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(2), constant.BucketAvailable).Return(nil).Once()
				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(2), constant.BucketIncoming).Return(nil).Once()
				f.redisRepo.On("InvalidateQuantity", mock.Anything, uint64(5), uint64(1), constant.BucketAvailable).Return(nil).Once()

				f.transferRepo.On("GetByID", mock.Anything, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusPartial,
				}, nil).Once()
				f.transferRepo.On("GetDetails", mock.Anything, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10, QuantityAccepted: 4},
				}, nil).Once()
			},
			wantStatus: constant.TransferStatusPartial,
		},
		{
			name: "error: receipt exceeds the declared quantity",
			req: &model.ReceiveTransferRequest{
				Lines: []model.ReceiptLine{{DetailID: 1, QuantityAccepted: 5}},
			},
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(pending(), nil).Once()
				// 7 of 10 already receipted, 5 more would overshoot
				f.transferRepo.On("GetDetailsTx", mock.Anything, tx, uint64(33)).Return([]model.TransferDetailEntity{
					{ID: 1, TransferID: 33, ItemID: uintRef(5), Quantity: 10, QuantityAccepted: 6, QuantityRejected: 1},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvariantViolation,
		},
		{
			name: "error: receiving a draft",
			req: &model.ReceiveTransferRequest{
				Lines: []model.ReceiptLine{{DetailID: 1, QuantityAccepted: 1}},
			},
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusDraft,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransferStatus,
		},
		{
			name:    "error: no lines",
			req:     &model.ReceiveTransferRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Receive(context.Background(), 33, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Receive() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Transfer.Status != tt.wantStatus {
				t.Fatalf("Receive() status = %v, want %v", got.Transfer.Status, tt.wantStatus)
			}
		})
	}
}

func TestTransferApp_CancelDraft(t *testing.T) {
	tests := []struct {
		name       string
		transferID uint64
		mockCall   func(f transferMocks)
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: draft removed",
			transferID: 33,
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusDraft,
				}, nil).Once()
				f.transferRepo.On("DeleteDraftTx", mock.Anything, tx, uint64(33)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name:       "error: dispatched transfers stay for audit",
			transferID: 33,
			mockCall: func(f transferMocks) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.transferRepo.On("GetByIDTx", mock.Anything, tx, uint64(33)).Return(&model.TransferEntity{
					ID:     33,
					Status: constant.TransferStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransferStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newTransferMocks(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().CancelDraft(context.Background(), tt.transferID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelDraft() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}
