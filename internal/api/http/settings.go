package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/clearhire/screening/internal/assessment"
	"github.com/clearhire/screening/internal/audit"
	"github.com/clearhire/screening/internal/auth"
	"github.com/clearhire/screening/internal/scoring"
)

// GET /settings
func GetSettingsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := store.GetSettings()
		if err != nil {
			http.Error(w, "settings: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(cfg)
	}
}

// PUT /settings
func PutSettingsHandler(store assessment.Store, trail *audit.Log, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg scoring.Settings
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.PutSettings(cfg); err != nil {
			http.Error(w, "save settings: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if trail != nil {
			sub := auth.SubjectFromContext(r.Context())
			if err := trail.Append(r.Context(), audit.TypeSettingsUpdated, sub, cfg); err != nil {
				log.Warn("audit write failed", zap.Error(err))
			}
		}
		_ = json.NewEncoder(w).Encode(cfg)
	}
}
