package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/clearhire/screening/internal/assessment"
	"github.com/clearhire/screening/internal/audit"
	"github.com/clearhire/screening/internal/auth"
)

// POST /applicants
func UpsertApplicantHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a assessment.Applicant
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(a.DNI) == "" {
			http.Error(w, "dni required", http.StatusBadRequest)
			return
		}
		if err := store.PutApplicant(a); err != nil {
			http.Error(w, "save applicant: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

// GET /applicants/{applicantID}
func GetApplicantHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "applicantID"))
		if id == "" {
			http.Error(w, "applicantID required", http.StatusBadRequest)
			return
		}
		a, err := store.GetApplicant(id)
		if err != nil {
			if errors.Is(err, assessment.ErrApplicantNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "get applicant: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

// DELETE /applicants/{applicantID}
func DeleteApplicantHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "applicantID"))
		if id == "" {
			http.Error(w, "applicantID required", http.StatusBadRequest)
			return
		}
		if err := store.DeleteApplicant(id); err != nil {
			if errors.Is(err, assessment.ErrApplicantNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "delete applicant: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// GET /applicants
func ListApplicantsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.ListApplicants()
		if err != nil {
			http.Error(w, "list applicants: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(list)
	}
}

// POST /auth/applicant-login  { "dni": "..." }
//
// Checks the applicant's access status and issues an applicant token when
// allowed. Every attempt lands in the audit trail.
func ApplicantLoginHandler(svc *assessment.Service, authSvc *auth.AuthService, trail *audit.Log, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			DNI string `json:"dni"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		dni := strings.TrimSpace(req.DNI)
		if dni == "" {
			http.Error(w, "dni required", http.StatusBadRequest)
			return
		}
		ok, reason := svc.ValidateLogin(r.Context(), dni)
		if trail != nil {
			if err := trail.RecordLogin(r.Context(), dni, ok, reason); err != nil {
				log.Warn("audit write failed", zap.Error(err))
			}
		}
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]any{"allowed": false, "reason": reason})
			return
		}
		tok, err := authSvc.IssueJWT(dni, "applicant")
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"allowed": true, "access_token": tok})
	}
}
