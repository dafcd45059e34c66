package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/clearhire/screening/internal/assessment"
	"github.com/clearhire/screening/internal/audit"
	"github.com/clearhire/screening/internal/auth"
)

// GET /applicants/{applicantID}/evaluation
func EvaluateApplicantHandler(svc *assessment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "applicantID"))
		if id == "" {
			http.Error(w, "applicantID required", http.StatusBadRequest)
			return
		}
		ev, err := svc.Evaluate(r.Context(), id)
		if err != nil {
			if errors.Is(err, assessment.ErrApplicantNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "evaluate: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(ev)
	}
}

// GET /evaluations
func EvaluateAllHandler(svc *assessment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evals, err := svc.EvaluateAll(r.Context())
		if err != nil {
			http.Error(w, "evaluate: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(evals)
	}
}

// GET /applicants/{applicantID}/analysis
func AnalyzeApplicantHandler(svc *assessment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "applicantID"))
		if id == "" {
			http.Error(w, "applicantID required", http.StatusBadRequest)
			return
		}
		sig, err := svc.Analyze(r.Context(), id)
		if err != nil {
			if errors.Is(err, assessment.ErrApplicantNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, "analyze: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(sig)
	}
}

// GET /reports/export
//
// Streams the evaluation report as CSV, best exam totals first.
func ExportReportHandler(svc *assessment.Service, trail *audit.Log, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evals, err := svc.EvaluateAll(r.Context())
		if err != nil {
			http.Error(w, "evaluate: "+err.Error(), http.StatusInternalServerError)
			return
		}
		sort.SliceStable(evals, func(i, j int) bool {
			return evals[i].ExamTotal > evals[j].ExamTotal
		})
		if trail != nil {
			sub := auth.SubjectFromContext(r.Context())
			payload := map[string]int{"applicants": len(evals)}
			if err := trail.Append(r.Context(), audit.TypeReportExported, sub, payload); err != nil {
				log.Warn("audit write failed", zap.Error(err))
			}
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="screening-report.csv"`)
		if err := assessment.WriteCSV(w, evals); err != nil {
			log.Warn("csv export failed", zap.Error(err))
		}
	}
}
