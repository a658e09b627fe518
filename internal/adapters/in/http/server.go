// Package http provides the inbound HTTP API: the partner's status webhook
// and read endpoints for support tooling.
package http

import (
	"errors"
	"net/http"

	"ordermail/internal/core/application/usecases/commands"
	"ordermail/internal/core/application/usecases/queries"
	"ordermail/internal/core/domain/model/kernel"
	"ordermail/internal/core/domain/model/statusreport"
	"ordermail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderOnHold represents one held order in API responses.
type OrderOnHold struct {
	Id            string `json:"id"`
	CustomerEmail string `json:"customerEmail"`
}

// RejectionTracker represents one tracker in API responses.
type RejectionTracker struct {
	ModelId      string   `json:"modelId"`
	DeviationIds []string `json:"deviationIds"`
	SentCount    int      `json:"sentCount"`
	OrderItemIds []string `json:"orderItemIds"`
	RejectionKey string   `json:"rejectionKey"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	processOrderStatusHandler commands.ProcessOrderStatusCommandHandler

	// Query handlers
	getOrdersOnHoldHandler      queries.GetOrdersOnHoldQueryHandler
	getRejectionTrackersHandler queries.GetRejectionTrackersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	processOrderStatusHandler commands.ProcessOrderStatusCommandHandler,
	getOrdersOnHoldHandler queries.GetOrdersOnHoldQueryHandler,
	getRejectionTrackersHandler queries.GetRejectionTrackersQueryHandler,
) *Server {
	return &Server{
		processOrderStatusHandler:   processOrderStatusHandler,
		getOrdersOnHoldHandler:      getOrdersOnHoldHandler,
		getRejectionTrackersHandler: getRejectionTrackersHandler,
	}
}

// RegisterRoutes attaches the API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders/:orderId/status", s.ProcessOrderStatus)
	e.GET("/api/v1/orders/on-hold", s.GetOrdersOnHold)
	e.GET("/api/v1/orders/:orderId/rejection-trackers", s.GetRejectionTrackers)
}

// ProcessOrderStatus handles POST /api/v1/orders/:orderId/status - the partner
// status webhook. Runs one rejection processing pass over the pushed document.
func (s *Server) ProcessOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	var report statusreport.OrderStatus
	if err = ctx.Bind(&report); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewProcessOrderStatusCommand(orderID, &report)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status report: " + err.Error(),
		})
	}

	if handleErr := s.processOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to process status report",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersOnHold handles GET /api/v1/orders/on-hold - retrieves all orders
// currently held for model fixes.
func (s *Server) GetOrdersOnHold(ctx echo.Context) error {
	query := queries.NewGetOrdersOnHoldQuery()

	orders, err := s.getOrdersOnHoldHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve held orders",
		})
	}

	response := make([]OrderOnHold, len(orders))
	for i, heldOrder := range orders {
		response[i] = OrderOnHold{
			Id:            heldOrder.ID.String(),
			CustomerEmail: heldOrder.CustomerEmail,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRejectionTrackers handles GET /api/v1/orders/:orderId/rejection-trackers -
// retrieves the order's rejection notification history.
func (s *Server) GetRejectionTrackers(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid order id",
		})
	}

	query, err := queries.NewGetRejectionTrackersQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid query: " + err.Error(),
		})
	}

	trackers, err := s.getRejectionTrackersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve rejection trackers",
		})
	}

	response := make([]RejectionTracker, len(trackers))
	for i, t := range trackers {
		response[i] = RejectionTracker{
			ModelId:      t.ModelID,
			DeviationIds: t.DeviationIDs,
			SentCount:    t.SentCount,
			OrderItemIds: t.OrderItemIDs,
			RejectionKey: t.RejectionKey,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
