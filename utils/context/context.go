package context

import (
	"context"

	"github.com/muhammadheryan/inventory-ledger/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// UserIDRef returns the acting user as a nullable ledger causal ref.
func UserIDRef(ctx context.Context) *uint64 {
	id, ok := GetUserID(ctx)
	if !ok {
		return nil
	}
	return &id
}
