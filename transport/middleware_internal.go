package transport

import (
	"net/http"

	"github.com/muhammadheryan/inventory-ledger/utils/logger"
	"go.uber.org/zap"
)

// InternalMiddleware guards the consumer-only endpoints (commitment expiry,
// purchasable cascade) with the static service key. Callers also identify
// themselves via X-Internal-Service for the access log.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+apiKey {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			if svc := r.Header.Get("X-Internal-Service"); svc != "" {
				logger.Debug("internal call", zap.String("service", svc), zap.String("path", r.URL.Path))
			}
			next.ServeHTTP(w, r)
		})
	}
}
