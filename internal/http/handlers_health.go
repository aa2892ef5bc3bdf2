package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is a dependency the readiness probe pings, such as redis.
type HealthChecker interface {
	Health(ctx context.Context) error
}

const healthCheckTimeout = 2 * time.Second

// healthHandler answers readiness/liveness checks. Every named checker must
// answer within healthCheckTimeout for a 200.
func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{"status": "ok"}
		if len(checks) > 0 {
			results := make(map[string]string, len(checks))
			for name, c := range checks {
				if err := c.Health(ctx); err != nil {
					results[name] = err.Error()
					status = http.StatusServiceUnavailable
					body["status"] = "degraded"
					continue
				}
				results[name] = "ok"
			}
			body["checks"] = results
		}

		if r.Method == http.MethodHead {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			return
		}
		WriteJSON(w, status, body)
	}
}
