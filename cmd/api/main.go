package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/bryanwahyu/ai-readiness/internal/application"
	appassessment "github.com/bryanwahyu/ai-readiness/internal/application/assessment"
	appdocuments "github.com/bryanwahyu/ai-readiness/internal/application/documents"
	appprojects "github.com/bryanwahyu/ai-readiness/internal/application/projects"
	appquestionnaire "github.com/bryanwahyu/ai-readiness/internal/application/questionnaire"
	"github.com/bryanwahyu/ai-readiness/internal/config"
	"github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
	"github.com/bryanwahyu/ai-readiness/internal/domain/documents"
	"github.com/bryanwahyu/ai-readiness/internal/domain/projects"
	"github.com/bryanwahyu/ai-readiness/internal/domain/users"
	"github.com/bryanwahyu/ai-readiness/internal/infra/ai/modeljson"
	aiclient "github.com/bryanwahyu/ai-readiness/internal/infra/ai/openai"
	"github.com/bryanwahyu/ai-readiness/internal/infra/auth"
	mysqlp "github.com/bryanwahyu/ai-readiness/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/ai-readiness/internal/infra/db/postgres"
	"github.com/bryanwahyu/ai-readiness/internal/infra/httpserver"
	"github.com/bryanwahyu/ai-readiness/internal/infra/report"
	minioStore "github.com/bryanwahyu/ai-readiness/internal/infra/storage"
	"github.com/bryanwahyu/ai-readiness/internal/infra/textextract"
	"github.com/bryanwahyu/ai-readiness/internal/middleware"
)

type repos struct {
	db          *sql.DB
	projects    projects.Repository
	documents   documents.Repository
	submissions assessment.SubmissionRepository
	reports     assessment.ReportRepository
	users       users.Repository
}

func connectRepos(ctx context.Context, cfg *config.Config) (*repos, error) {
	switch cfg.Database.Driver {
	case "", "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		return &repos{
			db:          db,
			projects:    mysqlp.NewProjectRepository(db),
			documents:   mysqlp.NewDocumentRepository(db),
			submissions: mysqlp.NewSubmissionRepository(db),
			reports:     mysqlp.NewReportRepository(db),
			users:       mysqlp.NewUserRepository(db),
		}, nil
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		return &repos{
			db:          db,
			projects:    postgresp.NewProjectRepository(db),
			documents:   postgresp.NewDocumentRepository(db),
			submissions: postgresp.NewSubmissionRepository(db),
			reports:     postgresp.NewReportRepository(db),
			users:       postgresp.NewUserRepository(db),
		}, nil
	}
	return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
}

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect database
	rp, err := connectRepos(ctx, cfg)
	if err != nil {
		log.Fatalf("database connect error: %v", err)
	}
	defer rp.db.Close()

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init LLM client and parser
	llm := aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	parser := modeljson.Extractor{}
	clock := application.SystemClock{}

	projectsSvc := &appprojects.Service{Repo: rp.projects, Clock: clock}
	documentsSvc := &appdocuments.Service{
		Repo:      rp.documents,
		Store:     store,
		Extractor: textextract.New(),
		AI:        llm,
		Clock:     clock,
	}
	questionnaireSvc := &appquestionnaire.Service{
		Submissions: rp.submissions,
		Reports:     rp.reports,
		Documents:   rp.documents,
		AI:          llm,
		Parser:      parser,
		Clock:       clock,
	}
	assessmentSvc := &appassessment.Service{
		Submissions: rp.submissions,
		Reports:     rp.reports,
		Documents:   rp.documents,
		AI:          llm,
		Parser:      parser,
		Renderer:    report.NewPDFRenderer(),
		Clock:       clock,
	}

	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	oauth := auth.NewGoogle(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret, cfg.Auth.RedirectURL)

	api := httpserver.NewRouter(httpserver.Deps{
		Projects:      projectsSvc,
		Documents:     documentsSvc,
		Questionnaire: questionnaireSvc,
		Assessment:    assessmentSvc,
		Users:         rp.users,
		OAuth:         oauth,
		Sessions:      sessions,
		FrontendURL:   cfg.Server.FrontendURL,
	})

	// middleware chain + ops endpoints
	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	rl := cfg.RateLimit
	if rl.Capacity > 0 && rl.RefillRate > 0 {
		mux.Use(middleware.RateLimitMiddleware(rl.Capacity, rl.RefillRate))
	}
	mux.Get("/metrics", middleware.MetricsHandler)
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/healthz", middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database":     &middleware.DatabaseHealthChecker{DB: rp.db},
		"object_store": &middleware.ObjectStoreHealthChecker{Store: store},
	}))
	mux.Mount("/", api)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis fans out four LLM calls
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
