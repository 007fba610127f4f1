package api

import (
	"fmt"

	"github.com/gorilla/mux"

	"github.com/garnizeh/recruitd/internal/config"
	"github.com/garnizeh/recruitd/internal/db"
	"github.com/garnizeh/recruitd/internal/recruit"
	"github.com/garnizeh/recruitd/internal/repository/sqlite"
	"github.com/garnizeh/recruitd/internal/security"
	"github.com/garnizeh/recruitd/pkg/models"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, conn *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	schemas, err := loadRequestSchemas()
	if err != nil {
		return nil, fmt.Errorf("load request schemas: %w", err)
	}

	store := sqlite.New(conn, logger)
	svc := recruit.NewService(store, logger, cfg.QueryTimeout)
	hasher := security.NewHasher(cfg.PasswordPepper)
	issuer := security.NewTokenIssuer(cfg.JWTSecret, cfg.TokenDuration)

	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(svc, hasher, issuer, schemas)
	jobsHandler := NewJobsHandler(svc)
	appsHandler := NewApplicationsHandler(svc, schemas)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/v1/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/v1/auth/signin", authHandler.Signin).Methods("POST")

	// API v1 protected routes
	apiV1 := r.PathPrefix("/v1").Subrouter()
	apiV1.Use(AuthMiddleware(issuer))

	apiV1.HandleFunc("/jobs", jobsHandler.ListJobs).Methods("GET")

	// Applicant endpoints
	applicant := apiV1.NewRoute().Subrouter()
	applicant.Use(RequireRole(models.RoleApplicant))
	applicant.HandleFunc("/applications", appsHandler.Register).Methods("POST")

	// Recruiter endpoints
	recruiter := apiV1.NewRoute().Subrouter()
	recruiter.Use(RequireRole(models.RoleRecruiter))
	recruiter.HandleFunc("/applications", appsHandler.List).Methods("GET")
	recruiter.HandleFunc("/applications/pages", appsHandler.PageCount).Methods("GET")
	recruiter.HandleFunc("/applications/{id:[0-9]+}", appsHandler.Detail).Methods("GET")
	recruiter.HandleFunc("/applications/{id:[0-9]+}/decision", appsHandler.Decide).Methods("POST")

	return r, nil
}
