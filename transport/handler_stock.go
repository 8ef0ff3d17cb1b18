package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-ledger/utils/validator"
)

// AppendMovement handler
// @Summary Append a ledger movement
// @Description Record a signed stock adjustment against an (item, location, bucket)
// @Tags Ledger
// @Accept json
// @Produce json
// @Param request body model.AppendMovementRequest true "Append Movement Request"
// @Success 200 {object} model.AppendMovementResponse
// @Failure 400 {object} errors.CustomError
// @Router /movements [post]
func (s *RestHandler) AppendMovement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AppendMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LedgerApp.Append(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseUint(r.URL.Query().Get("item_id"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	locationID, err := strconv.ParseUint(r.URL.Query().Get("location_id"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := s.LedgerApp.ListMovements(ctx, itemID, locationID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Quantity handler
// @Summary Current quantity for one (item, location, bucket)
// @Tags Stock
// @Produce json
// @Param itemID path int true "Item ID"
// @Param locationID path int true "Location ID"
// @Param bucket query string true "Bucket type"
// @Success 200 {object} model.QuantityResponse
// @Failure 400 {object} errors.CustomError
// @Router /stock/{itemID}/locations/{locationID} [get]
func (s *RestHandler) Quantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, locationID, err := stockVars(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bucket := bucketParam(r)

	qty, err := s.LedgerApp.Quantity(ctx, itemID, locationID, bucket)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.QuantityResponse{
		ItemID:     itemID,
		LocationID: locationID,
		BucketType: string(bucket),
		Quantity:   qty,
	})
}

func (s *RestHandler) QuantityAcrossLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, err := strconv.ParseUint(mux.Vars(r)["itemID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LedgerApp.QuantityAcrossLocations(ctx, itemID, bucketParam(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Availability(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, locationID, err := stockVars(r)
	if err != nil {
		writeError(w, err)
		return
	}
	quantity, err := strconv.ParseInt(r.URL.Query().Get("quantity"), 10, 64)
	if err != nil || quantity <= 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LedgerApp.IsAvailable(ctx, itemID, locationID, quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) RebuildStockLevel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID, locationID, err := stockVars(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bucket := bucketParam(r)

	qty, err := s.LedgerApp.RebuildStockLevel(ctx, itemID, locationID, bucket)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.QuantityResponse{
		ItemID:     itemID,
		LocationID: locationID,
		BucketType: string(bucket),
		Quantity:   qty,
	})
}

func stockVars(r *http.Request) (uint64, uint64, error) {
	vars := mux.Vars(r)
	itemID, err := strconv.ParseUint(vars["itemID"], 10, 64)
	if err != nil {
		return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	locationID, err := strconv.ParseUint(vars["locationID"], 10, 64)
	if err != nil {
		return 0, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return itemID, locationID, nil
}

func bucketParam(r *http.Request) constant.BucketType {
	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		bucket = string(constant.BucketAvailable)
	}
	return constant.BucketType(bucket)
}
