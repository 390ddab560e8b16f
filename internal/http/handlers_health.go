package httpx

import "net/http"

// healthHandler answers liveness probes. It runs inside the middleware chain
// but ahead of any session or database wiring, so it stays green while the
// backing store is down.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
