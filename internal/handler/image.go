package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/colefield/ripple/internal/domain"
	"github.com/colefield/ripple/internal/service"
)

const maxUploadBytes = 10 << 20 // keep in step with the image service cap

// ImageHandler handles post image uploads and serving.
type ImageHandler struct {
	images *service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// HandleUpload stores a multipart image upload and returns its filename.
// POST /images (multipart field "image")
// Response: {"filename": "..."}
func (h *ImageHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing image field.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read image data.")
		return
	}

	name, err := h.images.Upload(r.Context(), header.Header.Get("Content-Type"), data)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("upload image", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"filename": name})
}

// HandleServe streams a stored image.
// GET /images/{name}
func (h *ImageHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	data, contentType, err := h.images.Get(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Image not found.")
			return
		}
		slog.Error("serve image", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
