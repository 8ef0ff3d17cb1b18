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

// CreateItem handler
// @Summary Register a stock-tracked item
// @Description Create the inventory item for a purchasable
// @Tags Items
// @Accept json
// @Produce json
// @Param request body model.CreateItemRequest true "Create Item Request"
// @Success 200 {object} model.ItemEntity
// @Failure 400 {object} errors.CustomError
// @Router /items [post]
func (s *RestHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ItemApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ItemApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateItemCustoms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateCustomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ItemApp.UpdateCustoms(ctx, id, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// RetireItem is the internal cascade endpoint called by the consumer when
// the catalog deletes a purchasable.
func (s *RestHandler) RetireItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	purchasableID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.ItemApp.HandlePurchasableDeleted(ctx, purchasableID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
