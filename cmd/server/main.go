package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gauravmb/portfolio-backend/internal/config"
	"github.com/gauravmb/portfolio-backend/internal/handler"
	"github.com/gauravmb/portfolio-backend/internal/logging"
	"github.com/gauravmb/portfolio-backend/internal/repository"
	"github.com/gauravmb/portfolio-backend/internal/service"
	"github.com/gauravmb/portfolio-backend/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	projectRepo := repository.NewPgProjectRepository(pool)
	inquiryRepo := repository.NewPgInquiryRepository(pool)
	profileRepo := repository.NewPgProfileRepository(pool)

	projectService := service.NewProjectService(projectRepo)
	inquiryService := service.NewInquiryService(inquiryRepo, cfg.ContactRateLimit, cfg.ContactRateWindow)
	profileService := service.NewProfileService(profileRepo)

	store, err := newStorage(ctx, cfg)
	if err != nil {
		logging.Fatal("failed to initialize storage", "error", err)
	}

	h := handler.New(pool, cfg.AllowedOrigins)
	projectHandler := handler.NewProjectHandler(projectService)
	contactHandler := handler.NewContactHandler(inquiryService,
		int(cfg.ContactRateWindow.Seconds()), cfg.TrustedProxyCount)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	profileHandler := handler.NewProfileHandler(profileService)
	uploadHandler := handler.NewUploadHandler(store, projectService)

	admin := handler.RequireAdmin([]byte(cfg.AdminTokenSecret))
	wrap := func(fn http.HandlerFunc) http.Handler { return admin(fn) }

	mux := http.NewServeMux()

	// Public routes. Each path also registers a method-less fallback so an
	// unsupported method answers with the JSON 405 envelope instead of
	// ServeMux's bare-text default.
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("/api/health", handler.MethodNotAllowed)
	mux.HandleFunc("GET /api/projects", projectHandler.List)
	mux.HandleFunc("/api/projects", handler.MethodNotAllowed)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.Get)
	mux.HandleFunc("/api/projects/{id}", handler.MethodNotAllowed)
	mux.HandleFunc("GET /api/profile", profileHandler.Get)
	mux.HandleFunc("/api/profile", handler.MethodNotAllowed)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("/api/contact", handler.MethodNotAllowed)

	// Admin routes, bearer-token required.
	mux.Handle("GET /api/admin/projects", wrap(projectHandler.AdminList))
	mux.Handle("POST /api/admin/projects", wrap(projectHandler.Create))
	mux.HandleFunc("/api/admin/projects", handler.MethodNotAllowed)
	mux.Handle("GET /api/admin/projects/{id}", wrap(projectHandler.AdminGet))
	mux.Handle("PUT /api/admin/projects/{id}", wrap(projectHandler.Update))
	mux.Handle("DELETE /api/admin/projects/{id}", wrap(projectHandler.Delete))
	mux.HandleFunc("/api/admin/projects/{id}", handler.MethodNotAllowed)
	mux.Handle("POST /api/admin/projects/{id}/image", wrap(uploadHandler.Attach))
	mux.HandleFunc("/api/admin/projects/{id}/image", handler.MethodNotAllowed)
	mux.Handle("PUT /api/admin/profile", wrap(profileHandler.Update))
	mux.HandleFunc("/api/admin/profile", handler.MethodNotAllowed)
	mux.Handle("GET /api/admin/inquiries", wrap(inquiryHandler.List))
	mux.HandleFunc("/api/admin/inquiries", handler.MethodNotAllowed)
	mux.Handle("PATCH /api/admin/inquiries/{id}", wrap(inquiryHandler.UpdateFlags))
	mux.Handle("DELETE /api/admin/inquiries/{id}", wrap(inquiryHandler.Delete))
	mux.HandleFunc("/api/admin/inquiries/{id}", handler.MethodNotAllowed)
	mux.Handle("POST /api/admin/upload", wrap(uploadHandler.Upload))
	mux.HandleFunc("/api/admin/upload", handler.MethodNotAllowed)

	// Uploaded files are served directly only with the local backend;
	// with S3 the bucket's own URL is public.
	if cfg.StorageBackend == "local" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(cfg.UploadDir))))
	}

	limiter := handler.NewRequestLimiter(cfg.RequestRateRPS, cfg.RequestRateBurst, cfg.TrustedProxyCount)
	root := handler.RequestLogger(handler.SecurityHeaders(h.CORS(limiter.Middleware(mux))))

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == "s3" {
		return storage.NewS3Storage(ctx, storage.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			BaseURL:         cfg.S3BaseURL,
		})
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL), nil
}
