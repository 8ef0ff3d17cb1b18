package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/inventory-ledger/constant"
	"github.com/muhammadheryan/inventory-ledger/model"
	"github.com/muhammadheryan/inventory-ledger/utils/errors"
	validatorx "github.com/muhammadheryan/inventory-ledger/utils/validator"
)

// Commit handler
// @Summary Hold stock for an order line
// @Description Atomically checks free stock and appends a committed movement
// @Tags Commitments
// @Accept json
// @Produce json
// @Param request body model.CommitRequest true "Commit Request"
// @Success 200 {object} model.CommitResponse
// @Failure 409 {object} errors.CustomError
// @Router /commitments [post]
func (s *RestHandler) Commit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CommitmentApp.Commit(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference := mux.Vars(r)["reference"]
	if err := s.CommitmentApp.Fulfill(ctx, reference); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func (s *RestHandler) Release(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference := mux.Vars(r)["reference"]
	if err := s.CommitmentApp.Release(ctx, reference); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ReleaseExpired is the internal consumer path: releasing an already
// resolved hold is treated as success.
func (s *RestHandler) ReleaseExpired(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reference := mux.Vars(r)["reference"]
	if err := s.CommitmentApp.ReleaseExpired(ctx, reference); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
