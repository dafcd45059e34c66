package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/clearhire/screening/internal/audit"
)

// GET /events?limit=N
func RecentEventsHandler(trail *audit.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		events, err := trail.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "events: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(events)
	}
}
