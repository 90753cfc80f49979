package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"food-delivery/internal/domain"
	"food-delivery/internal/service"
	"food-delivery/internal/storage"

	"github.com/gorilla/mux"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Orders      service.OrderServiceInterface
	Seeder      service.SeedServiceInterface
	Diagnostics service.DiagnosticsInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, orderSvc service.OrderServiceInterface, seedSvc service.SeedServiceInterface, diagSvc service.DiagnosticsInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Orders:      orderSvc,
		Seeder:      seedSvc,
		Diagnostics: diagSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/test", h.storeStatus).Methods("GET")
	r.HandleFunc("/seed", h.seed).Methods("POST")

	r.HandleFunc("/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurants/{id}/menu", h.getMenu).Methods("GET")

	r.HandleFunc("/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Food Delivery Backend Ready"})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "food-delivery",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) storeStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Diagnostics.Status(r.Context()))
}

func (h *Handler) seed(w http.ResponseWriter, r *http.Request) {
	if err := h.Seeder.Seed(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Restaurants.Menu(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateOrderRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}

	receipt, err := h.Orders.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	ordersCreated.Inc()
	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	limit := int64(service.DefaultOrderListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, domain.NewValidationError("limit", "value is not a valid integer"))
			return
		}
		limit = parsed
	}

	orders, err := h.Orders.List(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateStatusRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.QRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

type errorResponse struct {
	Detail string              `json:"detail"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// statusFor maps service and storage errors onto an HTTP status and a client-facing detail.
func statusFor(err error) (int, errorResponse) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errorResponse{Detail: "Validation error", Fields: validationErr.Fields}
	case errors.Is(err, storage.ErrInvalidID):
		return http.StatusBadRequest, errorResponse{Detail: "Invalid id"}
	case errors.Is(err, service.ErrInvalidItems):
		return http.StatusBadRequest, errorResponse{Detail: "Invalid items"}
	case errors.Is(err, service.ErrMenuItemNotFound):
		return http.StatusBadRequest, errorResponse{Detail: "Menu item not found"}
	case errors.Is(err, service.ErrRestaurantNotFound):
		return http.StatusNotFound, errorResponse{Detail: "Restaurant not found"}
	case errors.Is(err, service.ErrOrderNotFound):
		return http.StatusNotFound, errorResponse{Detail: "Order not found"}
	case errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict, errorResponse{Detail: err.Error()}
	case errors.Is(err, service.ErrStoreNotConfigured):
		return http.StatusInternalServerError, errorResponse{Detail: "Database not configured"}
	default:
		return http.StatusInternalServerError, errorResponse{Detail: "Internal server error"}
	}
}

func writeError(w http.ResponseWriter, err error) {
	code, body := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("[food-delivery] request failed: %v", err)
	}
	writeJSON(w, code, body)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[food-delivery] encode response: %v", err)
	}
}

// decodeJSON reports malformed bodies as validation errors so they share the 400 path.
// The body must hold exactly one JSON value.
func decodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	err := dec.Decode(v)
	if err == nil {
		var trailing json.RawMessage
		if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
			return domain.NewValidationError("body", "invalid JSON")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		return domain.NewValidationError(typeErr.Field, "invalid type, expected "+typeErr.Type.String())
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "field required")
	default:
		return domain.NewValidationError("body", "invalid JSON")
	}
}
