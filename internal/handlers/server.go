package handlers

import (
	"log/slog"
	"net/http"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"

	"go.mongodb.org/mongo-driver/mongo"
)

type Server struct {
	Cfg     *config.Config
	Users   *mongo.Collection
	Val     *validation.Validator
	Log     *slog.Logger
	Cache   cache.Cache
	JWT     *auth.Manager
	Storage *storage.Client
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
