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

// CreateTransfer handler
// @Summary Create a draft transfer
// @Description Declare quantities to move between locations; omit origin for a receipt, destination for a write-off
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body model.CreateTransferRequest true "Create Transfer Request"
// @Success 200 {object} model.TransferResponse
// @Failure 400 {object} errors.CustomError
// @Router /transfers [post]
func (s *RestHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	res, err := s.TransferApp.List(ctx, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := transferID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.TransferApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DispatchTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := transferID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.TransferApp.Dispatch(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ReceiveTransfer handler
// @Summary Receipt goods against a transfer
// @Description Record accepted and rejected units per detail line
// @Tags Transfers
// @Accept json
// @Produce json
// @Param id path int true "Transfer ID"
// @Param request body model.ReceiveTransferRequest true "Receive Transfer Request"
// @Success 200 {object} model.TransferResponse
// @Failure 400 {object} errors.CustomError
// @Router /transfers/{id}/receive [post]
func (s *RestHandler) ReceiveTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := transferID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReceiveTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.TransferApp.Receive(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CancelTransfer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := transferID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.TransferApp.CancelDraft(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func transferID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}
