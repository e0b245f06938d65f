package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/agustin-pizzeria/order-service/internal/entities"
	"github.com/agustin-pizzeria/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type OrderService interface {
	PriceOrder(ctx context.Context, lines []entities.OrderLineRequest, address string) (entities.PricedOrder, error)
	CreateOrder(ctx context.Context, priced entities.PricedOrder) (entities.Order, error)
	GetOrder(ctx context.Context, trackingID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  CatalogService
	orders   OrderService
}

func NewHTTPHandler(logger *slog.Logger, catalog CatalogService, orders OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		catalog:  catalog,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Post("/api/orders/calculate", h.CalculateOrder)
	r.Post("/api/orders", h.CreateOrder)
	r.Get("/api/orders/{order_tracking_id}", h.GetOrder)
	r.Get("/", h.Dashboard)
	r.Get("/dashboard", h.Dashboard)
}

// ListProducts returns the menu grouped by category.
// @Summary      List catalog
// @Description  Returns all products grouped by category, sorted by category and name
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  utils.SuccessResponse{data=CatalogResponse}
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteSuccess(w, GroupProductsByCategory(products), http.StatusOK)
}

// CalculateOrder prices a prospective order without persisting anything.
// @Summary      Price an order
// @Description  Resolves the requested items against the catalog and returns line and order totals
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      OrderRequest  true  "Requested items and delivery address"
// @Success      200  {object}  utils.SuccessResponse{data=PricedOrder}
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/calculate [post]
func (h *HTTPHandler) CalculateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	priced, err := h.orders.PriceOrder(ctx, OrderLinesToEntities(req.OrderItems), req.CustomerAddress)
	if err != nil {
		orderQuotesFailed.Inc()
		h.writeOrderError(ctx, w, err)
		return
	}

	orderQuotesTotal.Inc()
	utils.WriteSuccess(w, PricedOrderEntityToJSON(priced), http.StatusOK)
}

// CreateOrder prices and persists an order.
// @Summary      Create an order
// @Description  Prices the requested items and persists the order atomically; returns the generated tracking id
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      OrderRequest  true  "Requested items and delivery address"
// @Success      201  {object}  utils.SuccessResponse{data=CreateOrderResponse}
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req OrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	priced, err := h.orders.PriceOrder(ctx, OrderLinesToEntities(req.OrderItems), req.CustomerAddress)
	if err != nil {
		ordersFailed.Inc()
		h.writeOrderError(ctx, w, err)
		return
	}

	order, err := h.orders.CreateOrder(ctx, priced)
	if err != nil {
		ordersFailed.Inc()
		h.writeOrderError(ctx, w, err)
		return
	}

	ordersCreated.Inc()
	utils.WriteSuccess(w, CreateOrderResponse{
		OrderTrackingID: order.TrackingID,
		Order:           OrderEntityToJSON(order),
	}, http.StatusCreated)
}

// GetOrder returns an order by tracking id.
// @Summary      Get an order
// @Description  Returns the order with its items embedded from the catalog
// @Tags         orders
// @Produce      json
// @Param        order_tracking_id  path  string  true  "Order tracking identifier"
// @Success      200  {object}  utils.SuccessResponse{data=GetOrderResponse}
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/orders/{order_tracking_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	trackingID := chi.URLParam(r, "order_tracking_id")

	if err := h.validate.Var(trackingID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrder(ctx, trackingID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err),
			slog.String("tracking_id", trackingID),
		)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteSuccess(w, GetOrderResponse{Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// writeOrderError maps pricing and persistence failures onto the wire.
// Client mistakes are 400s; anything else is a 500 and gets logged.
func (h *HTTPHandler) writeOrderError(ctx context.Context, w http.ResponseWriter, err error) {
	var notFound entities.ProductNotFoundError
	switch {
	case errors.As(err, &notFound):
		utils.WriteError(w, notFound.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyOrderItems),
		errors.Is(err, entities.ErrEmptyAddress),
		errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "order operation failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
