package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrInvalidBucket
	ErrNoSuchCommitment
	ErrAlreadyResolved
	ErrInvariantViolation
	ErrReferentialConflict
	ErrInvalidTransferStatus
	ErrHandleExists
	ErrItemExists
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrInsufficientStock:     "insufficient stock",
	ErrInvalidBucket:         "unknown stock bucket",
	ErrNoSuchCommitment:      "no open commitment for reference",
	ErrAlreadyResolved:       "commitment already resolved",
	ErrInvariantViolation:    "accepted plus rejected exceeds requested quantity",
	ErrReferentialConflict:   "location still referenced",
	ErrInvalidTransferStatus: "transfer status does not allow this operation",
	ErrHandleExists:          "location handle already exists",
	ErrItemExists:            "purchasable already has an inventory item",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrInsufficientStock:     http.StatusConflict,
	ErrInvalidBucket:         http.StatusBadRequest,
	ErrNoSuchCommitment:      http.StatusBadRequest,
	ErrAlreadyResolved:       http.StatusConflict,
	ErrInvariantViolation:    http.StatusBadRequest,
	ErrReferentialConflict:   http.StatusConflict,
	ErrInvalidTransferStatus: http.StatusConflict,
	ErrHandleExists:          http.StatusBadRequest,
	ErrItemExists:            http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrInsufficientStock:     "0005",
	ErrInvalidBucket:         "0006",
	ErrNoSuchCommitment:      "0007",
	ErrAlreadyResolved:       "0008",
	ErrInvariantViolation:    "0009",
	ErrReferentialConflict:   "0010",
	ErrInvalidTransferStatus: "0011",
	ErrHandleExists:          "0012",
	ErrItemExists:            "0013",
}
