package auth

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/clearhire/screening/internal/audit"
)

// AdminLoginHandler authenticates the configured admin user against the
// bcrypt hash and issues an admin token.
//
// POST /auth/login  { "username": "...", "password": "..." }
func AdminLoginHandler(a *AuthService, adminUser, adminPassHash string, trail *audit.Log, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		valid := req.Username == adminUser &&
			bcrypt.CompareHashAndPassword([]byte(adminPassHash), []byte(req.Password)) == nil
		if !valid {
			if trail != nil {
				if err := trail.RecordLogin(r.Context(), req.Username, false, "bad credentials"); err != nil {
					log.Warn("audit write failed", zap.Error(err))
				}
			}
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		tok, err := a.IssueJWT(req.Username, "admin")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		if trail != nil {
			if err := trail.RecordLogin(r.Context(), req.Username, true, ""); err != nil {
				log.Warn("audit write failed", zap.Error(err))
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
	}
}
