package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	api "github.com/clearhire/screening/internal/api/http"
	"github.com/clearhire/screening/internal/assessment"
	"github.com/clearhire/screening/internal/audit"
	"github.com/clearhire/screening/internal/auth"
	"github.com/clearhire/screening/internal/config"
	"github.com/clearhire/screening/internal/db"
	"github.com/clearhire/screening/internal/logging"
	"github.com/clearhire/screening/internal/rbac"
)

func main() {
	cfg := config.FromEnv()
	log := logging.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	store := assessment.NewSQLStore(dbh, cfg.DBDriver)
	if err := store.EnsureSettings(cfg.Scoring); err != nil {
		log.Fatal("seed settings failed", zap.Error(err))
	}
	trail := audit.NewLog(dbh)
	svc := assessment.NewService(store, log)

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Logins are the only unauthenticated surface.
	r.Post("/auth/login", auth.AdminLoginHandler(authSvc, cfg.AdminUser, cfg.AdminPassHash, trail, log))
	r.Post("/auth/applicant-login", api.ApplicantLoginHandler(svc, authSvc, trail, log))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("applicant:write")).
			Post("/applicants", api.UpsertApplicantHandler(store))
		pr.With(rbac.Require("applicant:view")).
			Get("/applicants", api.ListApplicantsHandler(store))
		pr.With(rbac.Require("applicant:view")).
			Get("/applicants/{applicantID}", api.GetApplicantHandler(store))
		pr.With(rbac.Require("applicant:write")).
			Delete("/applicants/{applicantID}", api.DeleteApplicantHandler(store))

		pr.With(rbac.Require("reference:write")).
			Post("/tests/{testType}/model-answers", api.UpsertModelAnswerHandler(store))
		pr.With(rbac.Require("reference:view")).
			Get("/tests/{testType}/model-answers", api.ListModelAnswersHandler(store))
		pr.With(rbac.Require("reference:write")).
			Post("/tests/{testType}/questions", api.UpsertQuestionHandler(store))
		pr.With(rbac.RequireAny("question:view", "reference:view")).
			Get("/tests/{testType}/questions", api.ListQuestionsHandler(store))

		pr.With(rbac.Require("settings:view")).
			Get("/settings", api.GetSettingsHandler(store))
		pr.With(rbac.Require("settings:write")).
			Put("/settings", api.PutSettingsHandler(store, trail, log))

		pr.With(rbac.Require("evaluation:view")).
			Get("/evaluations", api.EvaluateAllHandler(svc))
		pr.With(rbac.Require("evaluation:view")).
			Get("/applicants/{applicantID}/evaluation", api.EvaluateApplicantHandler(svc))
		pr.With(rbac.Require("evaluation:view")).
			Get("/applicants/{applicantID}/analysis", api.AnalyzeApplicantHandler(svc))

		pr.With(rbac.Require("report:export")).
			Get("/reports/export", api.ExportReportHandler(svc, trail, log))

		pr.With(rbac.Require("audit:view")).
			Get("/events", api.RecentEventsHandler(trail))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DBDriver))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
