package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/commands"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/application/usecases/queries"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/kernel"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/core/domain/model/order"
	"github.com/sumaaiiraa236/drug-inventory-system/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP API for the inventory and ordering workflows.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addDrugHandler           commands.AddDrugCommandHandler
	adjustDrugStockHandler   commands.AdjustDrugStockCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createShipmentHandler    commands.CreateShipmentCommandHandler

	// Query handlers
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
	getLowStockDrugsHandler  queries.GetLowStockDrugsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addDrugHandler commands.AddDrugCommandHandler,
	adjustDrugStockHandler commands.AdjustDrugStockCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
	getLowStockDrugsHandler queries.GetLowStockDrugsQueryHandler,
) *Server {
	return &Server{
		addDrugHandler:           addDrugHandler,
		adjustDrugStockHandler:   adjustDrugStockHandler,
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createShipmentHandler:    createShipmentHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
		getLowStockDrugsHandler:  getLowStockDrugsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/drugs", s.AddDrug)
	e.POST("/api/v1/drugs/:id/adjust", s.AdjustDrugStock)
	e.GET("/api/v1/drugs/low-stock", s.GetLowStockDrugs)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
	e.PATCH("/api/v1/orders/:id/status", s.ChangeOrderStatus)
	e.POST("/api/v1/shipments", s.CreateShipment)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDrugRequest is the request body for registering a drug.
type NewDrugRequest struct {
	Name         string     `json:"name"`
	GenericName  string     `json:"genericName"`
	DrugCode     string     `json:"drugCode"`
	Category     string     `json:"category"`
	Manufacturer string     `json:"manufacturer"`
	BatchNumber  string     `json:"batchNumber"`
	ExpiryDate   *time.Time `json:"expiryDate"`
	Quantity     int        `json:"quantity"`
	UnitPrice    float64    `json:"unitPrice"`
	ReorderLevel int        `json:"reorderLevel"`
}

// AdjustStockRequest is the request body for a manual stock adjustment.
type AdjustStockRequest struct {
	Delta int `json:"delta"`
}

// NewOrderItemRequest is a single line item of a new purchase order.
type NewOrderItemRequest struct {
	DrugID    string  `json:"drugId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// NewOrderRequest is the request body for placing a purchase order.
type NewOrderRequest struct {
	VendorID   string                `json:"vendorId"`
	HospitalID *string               `json:"hospitalId"`
	Items      []NewOrderItemRequest `json:"items"`
	Priority   string                `json:"priority"`
}

// ChangeStatusRequest is the request body for an order status transition.
type ChangeStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// NewShipmentRequest is the request body for registering a shipment.
type NewShipmentRequest struct {
	OrderID           string     `json:"orderId"`
	TrackingNumber    string     `json:"trackingNumber"`
	Carrier           string     `json:"carrier"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OrderResponse is a row of the order listing.
type OrderResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	VendorID    string  `json:"vendorId"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	TotalAmount float64 `json:"totalAmount"`
}

// LowStockDrugResponse is a row of the reorder report.
type LowStockDrugResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DrugCode     string `json:"drugCode"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
	Status       string `json:"status"`
}

// AddDrug handles POST /api/v1/drugs - registers a new drug in the catalog.
func (s *Server) AddDrug(ctx echo.Context) error {
	var request NewDrugRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	drugID := kernel.NewUUID()
	cmd, err := commands.NewAddDrugCommand(
		drugID,
		request.Name, request.GenericName, request.DrugCode,
		request.Category, request.Manufacturer, request.BatchNumber,
		request.ExpiryDate,
		request.Quantity, request.UnitPrice, request.ReorderLevel,
	)
	if err != nil {
		return badRequest(ctx, "Invalid drug data: "+err.Error())
	}

	if handleErr := s.addDrugHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr, "Failed to register drug")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: drugID.String()})
}

// AdjustDrugStock handles POST /api/v1/drugs/:id/adjust - applies a manual
// stock correction.
func (s *Server) AdjustDrugStock(ctx echo.Context) error {
	drugID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid drug id")
	}

	var request AdjustStockRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustDrugStockCommand(drugID, request.Delta)
	if err != nil {
		return badRequest(ctx, "Invalid adjustment: "+err.Error())
	}

	if handleErr := s.adjustDrugStockHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr, "Failed to adjust stock")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetLowStockDrugs handles GET /api/v1/drugs/low-stock - lists drugs at or
// below their reorder level.
func (s *Server) GetLowStockDrugs(ctx echo.Context) error {
	query := queries.NewGetLowStockDrugsQuery()

	drugs, err := s.getLowStockDrugsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve low stock drugs")
	}

	response := make([]LowStockDrugResponse, len(drugs))
	for i, d := range drugs {
		response[i] = LowStockDrugResponse{
			ID:           d.ID.String(),
			Name:         d.Name,
			DrugCode:     d.DrugCode,
			Quantity:     d.Quantity,
			ReorderLevel: d.ReorderLevel,
			Status:       d.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request NewOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id")
	}

	var hospitalID *kernel.UUID
	if request.HospitalID != nil {
		parsed, parseErr := kernel.UUIDFromString(*request.HospitalID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid hospital id")
		}
		hospitalID = &parsed
	}

	priority := order.Medium
	if request.Priority != "" {
		priority, err = order.PriorityFromString(request.Priority)
		if err != nil {
			return badRequest(ctx, "Invalid priority: "+err.Error())
		}
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		drugID, parseErr := kernel.UUIDFromString(itemRequest.DrugID)
		if parseErr != nil {
			return badRequest(ctx, "Invalid drug id in order items")
		}

		item, itemErr := order.NewItem(drugID, itemRequest.Quantity, itemRequest.UnitPrice)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, vendorID, hospitalID, items, priority)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists orders, optionally filtered
// by the status query parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.StatusFromString(statusParam)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}

		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			VendorID:    o.VendorID.String(),
			Status:      o.Status,
			Priority:    o.Priority,
			TotalAmount: o.TotalAmount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request ChangeStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, targetStatus, request.Note)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/shipments - registers a shipment for a
// shipped order.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request NewShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(
		shipmentID, orderID,
		request.TrackingNumber, request.Carrier,
		request.EstimatedDelivery,
	)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr, "Failed to create shipment")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// mapDomainError translates application errors into HTTP status codes.
// Unrecognized errors fall back to 500 with the given message.
func mapDomainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrOrderAlreadyTerminal),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
