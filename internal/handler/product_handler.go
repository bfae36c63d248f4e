package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/service"
	"moshood-fashion/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxImageUploadBytes caps a single image upload.
const maxImageUploadBytes = 10 << 20

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	images  storage.ImageStore
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, images storage.ImageStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		images:  images,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with pagination. A q query
// parameter switches to name/category search.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limit, offset, err := paginationParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), h.logger)
		return
	}

	var products interface{}
	if q := r.URL.Query().Get("q"); q != "" {
		products, err = h.service.Search(r.Context(), q, limit, offset)
	} else {
		products, err = h.service.GetAll(r.Context(), limit, offset)
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := h.pathID(w, r, "/api/products/")
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve product", h.logger)
		return
	}
	if product == nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/admin/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to create product", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/admin/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := h.pathID(w, r, "/api/admin/products/")
	if !ok {
		return
	}
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		writeDomainError(w, err, "failed to update product", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/admin/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	id, ok := h.pathID(w, r, "/api/admin/products/")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete product", h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles POST /api/admin/products/images requests. The
// multipart field name is "image"; the response carries the public URL.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUploadBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "image file is required", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusBadRequest, "file must be an image", h.logger)
		return
	}

	key := fmt.Sprintf("products/%d-%s%s",
		time.Now().UnixNano(), uuid.New().String()[:8], filepath.Ext(header.Filename))

	url, err := h.images.Upload(r.Context(), key, contentType, file)
	if err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("image upload failed")
		writeError(w, http.StatusInternalServerError, "failed to store image", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *ProductHandler) decodeInput(w http.ResponseWriter, r *http.Request) (*model.ProductInput, bool) {
	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return nil, false
	}
	return &input, true
}

// pathID extracts and parses the UUID segment after the given prefix.
func (h *ProductHandler) pathID(w http.ResponseWriter, r *http.Request, prefix string) (uuid.UUID, bool) {
	idStr := strings.TrimPrefix(r.URL.Path, prefix)
	if idStr == "" || idStr == r.URL.Path {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(strings.TrimSuffix(idStr, "/"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return uuid.Nil, false
	}
	return id, true
}
