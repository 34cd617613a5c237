package about

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/cache"
	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/transport"
	"portfolio-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type ImageStore interface {
	Destroy(ctx context.Context, publicID string) error
}

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
	cache   cache.Cache
	images  ImageStore
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, images ImageStore) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
		cache:   c,
		images:  images,
	}
}

func (h *Handler) PublicActive(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Active(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("about public active: none")
			transport.WriteError(w, http.StatusNotFound, "about profile not found", nil)
			return
		}
		log.Error("about public active: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.List(ctx)
	if err != nil {
		log.Error("admin about list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin about list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items": items,
	})
}

func (h *Handler) AdminGet(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin about get: not found", slog.String("about_id", id))
			transport.WriteError(w, http.StatusNotFound, "about profile not found", nil)
			return
		}
		log.Error("admin about get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, item)
}

// AdminSave mirrors the admin form's upsert: update when the body carries an
// id, create otherwise.
func (h *Handler) AdminSave(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin about save: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("admin about save: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	created := strings.TrimSpace(req.ID) == ""
	item, replaced, err := h.service.Save(ctx, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin about save: not found", slog.String("about_id", req.ID))
			transport.WriteError(w, http.StatusNotFound, "about profile not found", nil)
			return
		}
		log.Error("admin about save: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.cleanupReplacedImage(r.Context(), log, replaced)
	h.invalidate(r.Context())
	log.Info("admin about save: ok", slog.String("about_id", item.ID), slog.Bool("created", created))
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	transport.WriteJSON(w, status, item)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin about delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("admin about delete: not found", slog.String("about_id", id))
			transport.WriteError(w, http.StatusNotFound, "about profile not found", nil)
			return
		}
		log.Error("admin about delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	h.invalidate(r.Context())
	log.Info("admin about delete: ok", slog.String("about_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) cleanupReplacedImage(ctx context.Context, log *slog.Logger, replaced *ReplacedImage) {
	if replaced == nil || h.images == nil {
		return
	}
	publicID := replaced.PublicID
	if publicID == "" {
		publicID = storage.PublicIDFromURL(replaced.URL)
	}
	if publicID == "" {
		log.Warn("about image cleanup: no public id", slog.String("url", replaced.URL))
		return
	}

	destroyCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := h.images.Destroy(destroyCtx, publicID); err != nil {
		log.Warn("about image cleanup: destroy failed", slog.String("public_id", publicID), slog.String("error", err.Error()))
	}
}

// Profile writes feed the public hero, so drop its cached aggregate.
func (h *Handler) invalidate(ctx context.Context) {
	if h.cache == nil {
		return
	}
	_ = h.cache.Delete(ctx, "home:hero")
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
