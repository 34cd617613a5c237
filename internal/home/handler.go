package home

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"portfolio-backend/internal/about"
	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/header"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/transport"
)

const heroCacheKey = "home:hero"

type Handler struct {
	headers  *header.Service
	profiles *about.Service
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(headers *header.Service, profiles *about.Service, log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		headers:  headers,
		profiles: profiles,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

// Hero serves the merged home hero. The header and profile are fetched
// concurrently; a missing document is not an error, the precedence chain
// just falls through.
func (h *Handler) Hero(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.cache != nil {
		if cached, ok, err := h.cache.Get(r.Context(), heroCacheKey); err == nil && ok {
			log.Info("home hero: cache hit")
			transport.WriteCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var (
		wg         sync.WaitGroup
		activeHdr  *header.Header
		activePro  *about.About
		hdrErr     error
		profileErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		item, err := h.headers.Active(ctx)
		if err != nil {
			hdrErr = err
			return
		}
		activeHdr = &item
	}()
	go func() {
		defer wg.Done()
		item, err := h.profiles.Active(ctx)
		if err != nil {
			profileErr = err
			return
		}
		activePro = &item
	}()
	wg.Wait()

	if hdrErr != nil && !errors.Is(hdrErr, header.ErrNotFound) {
		log.Error("home hero: header fetch failed", slog.String("error", hdrErr.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}
	if profileErr != nil && !errors.Is(profileErr, about.ErrNotFound) {
		log.Error("home hero: profile fetch failed", slog.String("error", profileErr.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	hero := ResolveHero(activeHdr, activePro)

	if payload, err := json.Marshal(hero); err == nil && h.cache != nil {
		_ = h.cache.Set(r.Context(), heroCacheKey, payload, h.cacheTTL)
	}

	log.Info("home hero: ok")
	transport.WriteJSON(w, http.StatusOK, hero)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
