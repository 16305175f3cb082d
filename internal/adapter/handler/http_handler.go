package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/rl1809/product-factory/internal/core/domain"
	"github.com/rl1809/product-factory/internal/core/service"
)

type HTTPHandler struct {
	catalog     *service.CatalogService
	logger      *zap.Logger
	rateLimiter *rate.Limiter
}

type ProductJSON struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type CreateProductHTTPRequest struct {
	Variant string `json:"variant"`
}

type BuildProductHTTPRequest struct {
	Name        *string `json:"name"`
	Price       *string `json:"price"`
	Description *string `json:"description"`
}

type VariantJSON struct {
	Name    string      `json:"name"`
	Family  string      `json:"family"`
	Product ProductJSON `json:"product"`
}

type RegisterHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPHandler wires the catalog API. A limit of zero disables rate
// limiting.
func NewHTTPHandler(catalog *service.CatalogService, logger *zap.Logger, limit float64, burst int) *HTTPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &HTTPHandler{catalog: catalog, logger: logger}
	if limit > 0 {
		h.rateLimiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
	return h
}

// Routes returns the mux with every endpoint behind the middleware chain.
func (h *HTTPHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.withMiddleware(h.HealthCheck))
	mux.HandleFunc("/api/variants", h.withMiddleware(h.ListVariants))
	mux.HandleFunc("/api/products", h.withMiddleware(h.CreateProduct))
	mux.HandleFunc("/api/products/build", h.withMiddleware(h.BuildProduct))
	mux.HandleFunc("/api/products/clone", h.withMiddleware(h.CloneProduct))
	mux.HandleFunc("/api/inventory", h.withMiddleware(h.RegisterProduct))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateProductHTTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	variant, err := domain.ParseVariant(req.Variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.catalog.Create(r.Context(), variant)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(product))
}

func (h *HTTPHandler) BuildProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BuildProductHTTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	draft := service.Draft{Name: req.Name, Description: req.Description}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		draft.Price = &price
	}

	product, err := h.catalog.Build(r.Context(), draft)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(product))
}

func (h *HTTPHandler) CloneProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	source, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	clone, err := h.catalog.Clone(r.Context(), source)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productJSON(clone))
}

func (h *HTTPHandler) RegisterProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	product, ok := decodeProduct(w, r)
	if !ok {
		return
	}

	if err := h.catalog.Register(r.Context(), product); err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, RegisterHTTPResponse{
		Success: true,
		Message: fmt.Sprintf("Product %s added to inventory.", product.Name),
	})
}

func (h *HTTPHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	infos := h.catalog.Variants()
	out := make([]VariantJSON, 0, len(infos))
	for _, info := range infos {
		out = append(out, VariantJSON{
			Name:    info.Variant.String(),
			Family:  string(info.Family),
			Product: productJSON(info.Product),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProductData):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnknownVariant):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// maxBodyBytes caps request bodies; every payload here is a single product.
const maxBodyBytes = 64 << 10

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func decodeProduct(w http.ResponseWriter, r *http.Request) (domain.Product, bool) {
	var req ProductJSON
	if !decodeBody(w, r, &req) {
		return domain.Product{}, false
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.Product{}, false
	}

	return domain.Product{Name: req.Name, Price: price, Description: req.Description}, true
}

func productJSON(p domain.Product) ProductJSON {
	return ProductJSON{Name: p.Name, Price: p.PriceText(), Description: p.Description}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, RegisterHTTPResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
