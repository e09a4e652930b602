package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP API of the fulfillment service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	changeOrderStatusHandler     commands.ChangeOrderStatusCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	createServiceAreaHandler     commands.CreateServiceAreaCommandHandler
	createMealSlotHandler        commands.CreateMealSlotCommandHandler
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler

	// Query handlers
	getUnassignedOrdersHandler   queries.GetUnassignedOrdersQueryHandler
	getActiveServiceAreasHandler queries.GetActiveServiceAreasQueryHandler
	getDeliveryWindowsHandler    queries.GetDeliveryWindowsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	createServiceAreaHandler commands.CreateServiceAreaCommandHandler,
	createMealSlotHandler commands.CreateMealSlotCommandHandler,
	updatePartnerLocationHandler commands.UpdatePartnerLocationCommandHandler,
	getUnassignedOrdersHandler queries.GetUnassignedOrdersQueryHandler,
	getActiveServiceAreasHandler queries.GetActiveServiceAreasQueryHandler,
	getDeliveryWindowsHandler queries.GetDeliveryWindowsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		changeOrderStatusHandler:     changeOrderStatusHandler,
		acceptOrderHandler:           acceptOrderHandler,
		createServiceAreaHandler:     createServiceAreaHandler,
		createMealSlotHandler:        createMealSlotHandler,
		updatePartnerLocationHandler: updatePartnerLocationHandler,
		getUnassignedOrdersHandler:   getUnassignedOrdersHandler,
		getActiveServiceAreasHandler: getActiveServiceAreasHandler,
		getDeliveryWindowsHandler:    getDeliveryWindowsHandler,
	}
}

// RegisterRoutes wires the API routes into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/unassigned", s.GetUnassignedOrders)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/accept", s.AcceptOrder)

	api.POST("/service-areas", s.CreateServiceArea)
	api.GET("/service-areas/active", s.GetActiveServiceAreas)

	api.POST("/meal-slots", s.CreateMealSlot)
	api.GET("/meal-slots/:id/windows", s.GetDeliveryWindows)

	api.POST("/partners/:id/location", s.UpdatePartnerLocation)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(newOrder.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	method := parseMethod(newOrder.Method)

	var addressPoint *kernel.GeoPoint
	addressText := ""
	if newOrder.Address != nil {
		point, pointErr := kernel.NewGeoPoint(newOrder.Address.Lat, newOrder.Address.Lon)
		if pointErr != nil {
			return badRequest(ctx, "Invalid delivery address: "+pointErr.Error())
		}
		addressPoint = &point
		addressText = newOrder.Address.Text
	}

	var mealSlotID *kernel.UUID
	if newOrder.MealSlotID != "" {
		slotID, slotErr := kernel.UUIDFromString(newOrder.MealSlotID)
		if slotErr != nil {
			return badRequest(ctx, "Invalid meal slot id: "+slotErr.Error())
		}
		mealSlotID = &slotID
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		vendorID,
		method,
		addressPoint,
		addressText,
		mealSlotID,
		newOrder.WindowStart,
		newOrder.WindowEnd,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status - moves an order
// along its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var statusChange StatusChange
	if err = ctx.Bind(&statusChange); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus := parseStatus(statusChange.Status)

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, newStatus, statusChange.Note)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to change order status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/:id/accept - a delivery partner
// claims an order. The first claim wins; later claims get 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var acceptOrder AcceptOrder
	if err = ctx.Bind(&acceptOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(acceptOrder.PartnerID)
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, partnerID)
	if err != nil {
		return badRequest(ctx, "Invalid accept request: "+err.Error())
	}

	if handleErr := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to accept order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateServiceArea handles POST /api/v1/service-areas - registers a new
// service area.
func (s *Server) CreateServiceArea(ctx echo.Context) error {
	var newArea NewServiceArea
	if err := ctx.Bind(&newArea); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vertices := make([]kernel.GeoPoint, 0, len(newArea.Vertices))
	for _, vertex := range newArea.Vertices {
		point, pointErr := kernel.NewGeoPoint(vertex.Lat, vertex.Lon)
		if pointErr != nil {
			return badRequest(ctx, "Invalid boundary vertex: "+pointErr.Error())
		}
		vertices = append(vertices, point)
	}

	areaID := kernel.NewUUID()

	cmd, err := commands.NewCreateServiceAreaCommand(areaID, newArea.Name, vertices, newArea.Pincodes)
	if err != nil {
		return badRequest(ctx, "Invalid service area data: "+err.Error())
	}

	if handleErr := s.createServiceAreaHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create service area")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: areaID.String()})
}

// CreateMealSlot handles POST /api/v1/meal-slots - registers a meal slot
// for a vendor.
func (s *Server) CreateMealSlot(ctx echo.Context) error {
	var newSlot NewMealSlot
	if err := ctx.Bind(&newSlot); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vendorID, err := kernel.UUIDFromString(newSlot.VendorID)
	if err != nil {
		return badRequest(ctx, "Invalid vendor id: "+err.Error())
	}

	slotID := kernel.NewUUID()

	cmd, err := commands.NewCreateMealSlotCommand(
		slotID,
		vendorID,
		newSlot.StartTime,
		newSlot.EndTime,
		newSlot.CutoffTime,
		newSlot.DurationMinutes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid meal slot data: "+err.Error())
	}

	if handleErr := s.createMealSlotHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to create meal slot")
	}

	return ctx.JSON(http.StatusCreated, Created{ID: slotID.String()})
}

// UpdatePartnerLocation handles POST /api/v1/partners/:id/location - records
// a partner location ping.
func (s *Server) UpdatePartnerLocation(ctx echo.Context) error {
	partnerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid partner id: "+err.Error())
	}

	var ping LocationPing
	if err = ctx.Bind(&ping); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(ping.Lat, ping.Lon)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	cmd, err := commands.NewUpdatePartnerLocationCommand(partnerID, location)
	if err != nil {
		return badRequest(ctx, "Invalid location ping: "+err.Error())
	}

	if handleErr := s.updatePartnerLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "Failed to update partner location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnassignedOrders handles GET /api/v1/orders/unassigned - retrieves the
// worklist of delivery orders awaiting a partner.
func (s *Server) GetUnassignedOrders(ctx echo.Context) error {
	query := queries.NewGetUnassignedOrdersQuery()

	orders, err := s.getUnassignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unassigned orders",
		})
	}

	response := make([]UnassignedOrder, len(orders))
	for i, unassigned := range orders {
		response[i] = UnassignedOrder{
			ID:          unassigned.ID.String(),
			VendorID:    unassigned.VendorID.String(),
			AddressText: unassigned.AddressText,
			WindowStart: unassigned.WindowStart,
			WindowEnd:   unassigned.WindowEnd,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActiveServiceAreas handles GET /api/v1/service-areas/active.
func (s *Server) GetActiveServiceAreas(ctx echo.Context) error {
	query := queries.NewGetActiveServiceAreasQuery()

	areas, err := s.getActiveServiceAreasHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve service areas",
		})
	}

	response := make([]ServiceArea, len(areas))
	for i, area := range areas {
		response[i] = ServiceArea{
			ID:   area.ID.String(),
			Name: area.Name,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryWindows handles GET /api/v1/meal-slots/:id/windows - lists the
// selectable delivery windows of a meal slot.
func (s *Server) GetDeliveryWindows(ctx echo.Context) error {
	slotID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid meal slot id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryWindowsQuery(slotID)
	if err != nil {
		return badRequest(ctx, "Invalid meal slot id: "+err.Error())
	}

	windows, err := s.getDeliveryWindowsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Meal slot not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve delivery windows",
		})
	}

	response := make([]DeliveryWindow, len(windows))
	for i, window := range windows {
		response[i] = DeliveryWindow{
			Start: window.Start,
			End:   window.End,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseMethod maps the wire name of a fulfillment method onto the domain
// value. Unrecognized names map to MethodUnknown, which fails command
// validation with a clear error.
func parseMethod(name string) order.FulfillmentMethod {
	switch name {
	case "EatIn":
		return order.EatIn
	case "Pickup":
		return order.Pickup
	case "Delivery":
		return order.Delivery
	default:
		return order.MethodUnknown
	}
}

// parseStatus maps the wire name of an order status onto the domain value.
func parseStatus(name string) order.Status {
	switch name {
	case "Pending":
		return order.Pending
	case "Accepted":
		return order.Accepted
	case "Preparing":
		return order.Preparing
	case "ReadyForPickup":
		return order.ReadyForPickup
	case "AssignedToDelivery":
		return order.AssignedToDelivery
	case "PickedUp":
		return order.PickedUp
	case "InTransit":
		return order.InTransit
	case "Delivered":
		return order.Delivered
	case "Cancelled":
		return order.Cancelled
	case "Rejected":
		return order.Rejected
	default:
		return order.Unknown
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps a command handler failure onto an HTTP status. Missing
// referenced entities become 404, assignment and lifecycle conflicts become
// 409, policy and validation failures become 422.
func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrVendorNotFound),
		errors.Is(err, commands.ErrMealSlotNotFound),
		errors.Is(err, commands.ErrPartnerNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrMethodNotEnabled),
		errors.Is(err, services.ErrAddressNotServiceable),
		errors.Is(err, services.ErrVendorCannotReach),
		errors.Is(err, services.ErrAreaNotFound),
		errors.Is(err, commands.ErrSlotVendorMismatch),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
