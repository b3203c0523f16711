package handler

import "net/http"

// HealthCheck answers liveness probes with an empty 200 response.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
