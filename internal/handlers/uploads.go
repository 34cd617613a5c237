package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"portfolio-backend/internal/httpx"
	"portfolio-backend/internal/storage"
	"portfolio-backend/internal/transport"
)

const maxUploadBytes = 10 << 20

type uploadFolder struct {
	Folder string `validate:"required,imagefolder"`
}

type DeleteUploadRequest struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// AdminUpload receives a multipart image and stores it under the requested
// folder. The document referencing the returned URL is written in a separate
// request, so a crash in between leaves an orphan object, not a broken page.
func (s *Server) AdminUpload(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	if s.Storage == nil {
		log.Warn("admin upload: storage not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "storage not configured", nil)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Warn("admin upload: invalid multipart body", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, "invalid multipart body", nil)
		return
	}

	folder := strings.TrimSpace(r.FormValue("folder"))
	if err := s.Val.Struct(uploadFolder{Folder: folder}); err != nil {
		log.Warn("admin upload: invalid folder", slog.String("folder", folder))
		transport.WriteError(w, http.StatusBadRequest, "folder must be one of projects, profile, header", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Warn("admin upload: missing file")
		transport.WriteError(w, http.StatusBadRequest, "missing file", nil)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := s.Storage.Upload(ctx, folder, header.Filename, file)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			transport.WriteError(w, http.StatusServiceUnavailable, "storage not configured", nil)
			return
		}
		log.Error("admin upload: upload failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "upload failed", nil)
		return
	}

	log.Info("admin upload: ok", slog.String("public_id", result.PublicID))
	transport.WriteJSON(w, http.StatusCreated, result)
}

// AdminDeleteUpload destroys a stored image by public id, or by delivery URL
// for documents that predate stored public ids.
func (s *Server) AdminDeleteUpload(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	if s.Storage == nil {
		log.Warn("admin delete upload: storage not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "storage not configured", nil)
		return
	}

	var req DeleteUploadRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin delete upload: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	publicID := strings.TrimSpace(req.PublicID)
	if publicID == "" && req.URL != "" {
		publicID = storage.PublicIDFromURL(req.URL)
	}
	if publicID == "" {
		log.Warn("admin delete upload: missing public id")
		transport.WriteError(w, http.StatusBadRequest, "publicId or url required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := s.Storage.Destroy(ctx, publicID); err != nil {
		log.Error("admin delete upload: destroy failed", slog.String("public_id", publicID), slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "delete failed", nil)
		return
	}

	log.Info("admin delete upload: ok", slog.String("public_id", publicID))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
