package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/internal/about"
	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/db"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/header"
	"portfolio-backend/internal/home"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/notifications"
	"portfolio-backend/internal/projects"
	"portfolio-backend/internal/skills"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, cols, err := db.Connect(connectCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Error("mongo connect failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := db.EnsureIndexes(connectCtx, cols); err != nil {
		log.Error("index setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("mongo connected", slog.String("db", cfg.MongoDB))

	var store cache.Cache = cache.NewNoop()
	switch {
	case cfg.RedisURL != "":
		redisCache, err := cache.NewRedisFromURL(cfg.RedisURL)
		if err != nil {
			log.Warn("redis url invalid, caching disabled", slog.String("error", err.Error()))
		} else if err := redisCache.Ping(connectCtx); err != nil {
			log.Warn("redis unreachable, caching disabled", slog.String("error", err.Error()))
		} else {
			store = redisCache
			log.Info("redis cache enabled")
		}
	case cfg.RedisAddr != "":
		redisCache := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisCache.Ping(connectCtx); err != nil {
			log.Warn("redis unreachable, caching disabled", slog.String("error", err.Error()))
		} else {
			store = redisCache
			log.Info("redis cache enabled")
		}
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:     []byte(cfg.JWTSecret),
			AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
			Issuer:     "portfolio-backend",
		}
	} else {
		log.Warn("JWT_SECRET not set, cookie sessions disabled")
	}

	images := storage.NewCloudinary(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadPreset)
	if images == nil {
		log.Warn("cloudinary not configured, uploads disabled")
	}
	var projectImages projects.ImageStore
	var headerImages header.ImageStore
	var aboutImages about.ImageStore
	if images != nil {
		projectImages = images
		headerImages = images
		aboutImages = images
	}

	brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	if brevo == nil {
		log.Warn("brevo not configured, contact notifications disabled")
	}
	var mailer contact.Mailer
	if brevo != nil {
		mailer = brevo
	}

	val := validation.New()

	projectService := projects.NewService(projects.NewRepository(cols.Projects), cfg.Timezone)
	skillService := skills.NewService(skills.NewRepository(cols.Skills), cfg.Timezone)
	headerService := header.NewService(header.NewRepository(cols.Headers), cfg.Timezone)
	aboutService := about.NewService(about.NewRepository(cols.About), cfg.Timezone)
	contactService := contact.NewService(contact.NewRepository(cols.ContactMessages), cfg.Timezone)

	projectHandler := projects.NewHandler(projectService, val, log, store, cacheTTL, projectImages)
	skillHandler := skills.NewHandler(skillService, val, log, store, cacheTTL)
	headerHandler := header.NewHandler(headerService, val, log, store, headerImages)
	aboutHandler := about.NewHandler(aboutService, val, log, store, aboutImages)
	contactHandler := contact.NewHandler(contactService, val, log, mailer, cfg.BrevoNotifyEmail)
	homeHandler := home.NewHandler(headerService, aboutService, log, store, cacheTTL)

	server := &handlers.Server{
		Cfg:     cfg,
		Users:   cols.Users,
		Val:     val,
		Log:     log,
		Cache:   store,
		JWT:     jwtManager,
		Storage: images,
	}

	contactLimiter := middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", server.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects", projectHandler.PublicList)
		r.Get("/projects/{id}", projectHandler.PublicGet)
		r.Get("/skills", skillHandler.PublicList)
		r.Get("/about", aboutHandler.PublicActive)
		r.Get("/header", headerHandler.PublicActive)
		r.Get("/home", homeHandler.Hero)
		r.With(contactLimiter.Middleware).Post("/contact", contactHandler.PublicCreate)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/register", server.AdminRegister)
			r.Post("/auth/login", server.AdminLogin)
			r.Post("/auth/refresh", server.AdminRefresh)
			r.Post("/auth/logout", server.AdminLogout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminAuth(cfg.AdminAPIKey, jwtManager))

				r.Get("/projects", projectHandler.AdminList)
				r.Post("/projects", projectHandler.AdminCreate)
				r.Get("/projects/{id}", projectHandler.AdminGet)
				r.Put("/projects/{id}", projectHandler.AdminUpdate)
				r.Delete("/projects/{id}", projectHandler.AdminDelete)

				r.Get("/skills", skillHandler.AdminList)
				r.Post("/skills", skillHandler.AdminCreate)
				r.Get("/skills/{id}", skillHandler.AdminGet)
				r.Put("/skills/{id}", skillHandler.AdminUpdate)
				r.Delete("/skills/{id}", skillHandler.AdminDelete)

				r.Get("/header", headerHandler.AdminList)
				r.Post("/header", headerHandler.AdminCreate)
				r.Get("/header/{id}", headerHandler.AdminGet)
				r.Put("/header/{id}", headerHandler.AdminUpdate)
				r.Delete("/header/{id}", headerHandler.AdminDelete)

				r.Get("/about", aboutHandler.AdminList)
				r.Post("/about", aboutHandler.AdminSave)
				r.Get("/about/{id}", aboutHandler.AdminGet)
				r.Delete("/about/{id}", aboutHandler.AdminDelete)

				r.Get("/messages", contactHandler.AdminList)
				r.Get("/messages/{id}", contactHandler.AdminGet)
				r.Patch("/messages/{id}/read", contactHandler.AdminMarkRead)
				r.Delete("/messages/{id}", contactHandler.AdminDelete)

				r.Post("/uploads", server.AdminUpload)
				r.Delete("/uploads", server.AdminDeleteUpload)
			})
		})
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", slog.String("error", err.Error()))
	}
}
