package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/common/pagination"
	appconfig "newsdesk/internal/config"
	"newsdesk/internal/infra/adapter/persistence/memory"
	pgRepo "newsdesk/internal/infra/adapter/persistence/postgres"
	"newsdesk/internal/infra/db"
	"newsdesk/internal/observability/logging"
	"newsdesk/internal/observability/slo"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/resilience/circuitbreaker"
	pkgconfig "newsdesk/pkg/config"

	articleUC "newsdesk/internal/usecase/article"
	categoryUC "newsdesk/internal/usecase/category"
	departmentUC "newsdesk/internal/usecase/department"
	userUC "newsdesk/internal/usecase/user"

	hhttp "newsdesk/internal/handler/http"
	harticle "newsdesk/internal/handler/http/article"
	hauth "newsdesk/internal/handler/http/auth"
	hcategory "newsdesk/internal/handler/http/category"
	hdepartment "newsdesk/internal/handler/http/department"
	"newsdesk/internal/handler/http/middleware"
	"newsdesk/internal/handler/http/requestid"
	huser "newsdesk/internal/handler/http/user"
	authservice "newsdesk/internal/service/auth"

	_ "newsdesk/docs" // swagger docs
)

// @title           Newsdesk API
// @version         1.0
// @description     Newsroom content management REST API: staff manage
// @description     articles, categories, departments and accounts, while
// @description     readers get the published feed and the breaking ticker.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication. Provide the token as "Bearer {token}".

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	secret := loadJWTSecret(logger)
	version := pkgconfig.GetEnvString("VERSION", "dev")

	seedCfg, err := appconfig.LoadSeedConfig()
	if err != nil {
		logger.Error("failed to load seed configuration", slog.Any("error", err))
		os.Exit(1)
	}

	repos, database := buildRepositories(logger, seedCfg)
	if database != nil {
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", slog.Any("error", err))
			}
		}()
	}

	handler := buildHandler(logger, repos, database, secret, version)
	runServer(logger, handler, version)
}

// loadJWTSecret reads and validates JWT_SECRET. The server refuses to
// start with a missing, short, or well-known secret.
func loadJWTSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	for _, weak := range []string{"secret", "password", "test", "admin", "default"} {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value")
			os.Exit(1)
		}
	}
	return []byte(secret)
}

// repositories bundles the storage implementations behind one type so
// the handler wiring does not care which backend is active.
type repositories struct {
	Articles    repository.ArticleRepository
	Users       repository.UserRepository
	Categories  repository.CategoryRepository
	Departments repository.DepartmentRepository
	Backend     string
}

// buildRepositories selects the storage backend from STORAGE_BACKEND
// (memory or postgres, memory by default), runs migrations and seeding,
// and returns the repository set. The *sql.DB is nil for the memory
// backend.
func buildRepositories(logger *slog.Logger, seedCfg appconfig.SeedConfig) (repositories, *sql.DB) {
	backend := pkgconfig.GetEnvString("STORAGE_BACKEND", "memory")

	switch backend {
	case "postgres":
		database := db.Open()
		if err := db.MigrateUp(database); err != nil {
			logger.Error("failed to migrate database", slog.Any("error", err))
			os.Exit(1)
		}
		if err := db.Seed(database, seedCfg); err != nil {
			logger.Error("failed to seed database", slog.Any("error", err))
			os.Exit(1)
		}

		// Reads and writes go through the breaker; migrations above
		// intentionally do not.
		breaker := circuitbreaker.NewDBCircuitBreaker(database)
		logger.Info("storage backend ready", slog.String("backend", backend))
		return repositories{
			Articles:    pgRepo.NewArticleRepo(breaker),
			Users:       pgRepo.NewUserRepo(breaker),
			Categories:  pgRepo.NewCategoryRepo(breaker),
			Departments: pgRepo.NewDepartmentRepo(breaker),
			Backend:     backend,
		}, database

	case "memory":
		store := memory.NewStore()
		if err := memory.Seed(context.Background(), store, seedCfg); err != nil {
			logger.Error("failed to seed memory store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("storage backend ready", slog.String("backend", backend))
		return repositories{
			Articles:    memory.NewArticleRepo(store),
			Users:       memory.NewUserRepo(store),
			Categories:  memory.NewCategoryRepo(store),
			Departments: memory.NewDepartmentRepo(store),
			Backend:     backend,
		}, nil

	default:
		logger.Error("unknown STORAGE_BACKEND", slog.String("value", backend))
		os.Exit(1)
		return repositories{}, nil
	}
}

// buildHandler wires services, routes and the middleware chain.
func buildHandler(logger *slog.Logger, repos repositories, database *sql.DB, secret []byte, version string) http.Handler {
	articleSvc := &articleUC.Service{Repo: repos.Articles}
	userSvc := &userUC.Service{Repo: repos.Users}
	categorySvc := &categoryUC.Service{Repo: repos.Categories}
	departmentSvc := &departmentUC.Service{Repo: repos.Departments}
	authSvc := authservice.NewService(repos.Users)

	paginationCfg := pagination.LoadFromEnv()

	health := &hhttp.HealthHandler{DB: database, Version: version, Backend: repos.Backend}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	mux.Handle("POST /auth/token", hauth.NewTokenHandler(authSvc, secret))

	harticle.Register(mux, articleSvc, paginationCfg)
	huser.Register(mux, userSvc)
	hcategory.Register(mux, categorySvc)
	hdepartment.Register(mux, departmentSvc)

	apiLimiter := hhttp.NewRateLimiter(
		pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", 50),
		pkgconfig.GetEnvInt("RATE_LIMIT_BURST", 100),
	)

	// Innermost to outermost: authz guards the handlers, then metrics,
	// security headers, body limit, logging, recovery, rate limiting,
	// tracing, request IDs and CORS on the outside.
	chain := hauth.Authz(secret)(mux)
	chain = hhttp.MetricsMiddleware(chain)
	chain = middleware.SecurityHeaders(chain)
	chain = hhttp.Timeout(pkgconfig.GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second))(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = apiLimiter.Middleware(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.LoadCORSConfig(logger))(chain)

	return chain
}

// runServer starts the HTTP server and the SLO flusher, blocks until
// SIGINT/SIGTERM, then drains in-flight requests.
func runServer(logger *slog.Logger, handler http.Handler, version string) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := pkgconfig.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		slo.Run(gctx, time.Minute)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
