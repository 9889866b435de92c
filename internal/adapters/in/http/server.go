// Package http exposes the shipment consolidation API over HTTP.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"
	"strconv"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/shipment"
	"parcelhub/internal/core/domain/model/tariff"

	"github.com/labstack/echo/v4"
)

// Server handles the HTTP surface of the consolidation service.
type Server struct {
	// Command handlers
	addLockerItemHandler       commands.AddLockerItemCommandHandler
	createConsolidationHandler commands.CreateConsolidationCommandHandler
	changeStatusHandler        commands.ChangeShipmentStatusCommandHandler
	addTrackingEventHandler    commands.AddTrackingEventCommandHandler

	// Query handlers
	getShipmentHandler        queries.GetShipmentQueryHandler
	listShipmentsHandler      queries.ListShipmentsQueryHandler
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler
	getPendingItemsHandler    queries.GetPendingItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addLockerItemHandler commands.AddLockerItemCommandHandler,
	createConsolidationHandler commands.CreateConsolidationCommandHandler,
	changeStatusHandler commands.ChangeShipmentStatusCommandHandler,
	addTrackingEventHandler commands.AddTrackingEventCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
	getPendingItemsHandler queries.GetPendingItemsQueryHandler,
) *Server {
	return &Server{
		addLockerItemHandler:       addLockerItemHandler,
		createConsolidationHandler: createConsolidationHandler,
		changeStatusHandler:        changeStatusHandler,
		addTrackingEventHandler:    addTrackingEventHandler,
		getShipmentHandler:         getShipmentHandler,
		listShipmentsHandler:       listShipmentsHandler,
		getTrackingHistoryHandler:  getTrackingHistoryHandler,
		getPendingItemsHandler:     getPendingItemsHandler,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/lockers/:code/items", s.AddLockerItem)
	api.GET("/lockers/:code/items", s.GetPendingItems)
	api.POST("/consolidations", s.CreateConsolidation)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.POST("/shipments/:id/status", s.ChangeShipmentStatus)
	api.POST("/shipments/:id/events", s.AddTrackingEvent)
	api.GET("/shipments/:id/events", s.GetTrackingHistory)
}

// AddLockerItem handles POST /api/v1/lockers/:code/items - registers an arrived item.
func (s *Server) AddLockerItem(ctx echo.Context) error {
	var req AddItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddLockerItemCommand(itemID, ctx.Param("code"), req.Description, req.WeightKg)
	if err != nil {
		return respondBadRequest(ctx, "Invalid item data: "+err.Error())
	}

	if err = s.addLockerItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AddItemResponse{ID: itemID.String()})
}

// GetPendingItems handles GET /api/v1/lockers/:code/items - lists a locker's
// pending items in arrival order.
func (s *Server) GetPendingItems(ctx echo.Context) error {
	query, err := queries.NewGetPendingItemsQuery(ctx.Param("code"))
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	items, err := s.getPendingItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingItem, len(items))
	for i, item := range items {
		response[i] = PendingItem{
			ID:          item.ID.String(),
			LockerCode:  item.LockerCode,
			Description: item.Description,
			WeightKg:    item.WeightKg,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateConsolidation handles POST /api/v1/consolidations - groups a locker's
// pending items into a shipment. Replaying a request_id returns the shipment
// created by the first attempt.
func (s *Server) CreateConsolidation(ctx echo.Context) error {
	var req CreateConsolidationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	serviceTier, err := tariff.ServiceTierFromString(req.ServiceTier)
	if err != nil {
		return respondBadRequest(ctx, "Invalid service tier: "+req.ServiceTier)
	}

	initialStatus := shipment.ReadyToBook
	if req.InitialStatus != "" {
		initialStatus, err = shipment.StatusFromString(req.InitialStatus)
		if err != nil {
			return respondBadRequest(ctx, "Invalid initial status: "+req.InitialStatus)
		}
	}

	var zone *tariff.Zone
	if req.DestinationZone != nil {
		z, zoneErr := tariff.NewZone(*req.DestinationZone)
		if zoneErr != nil {
			return respondBadRequest(ctx, "Invalid destination zone: "+zoneErr.Error())
		}
		zone = &z
	}

	cmd, err := commands.NewCreateConsolidationCommand(
		kernel.NewUUID(),
		req.RequestID,
		req.LockerCode,
		req.RecipientName,
		serviceTier,
		zone,
		initialStatus,
	)
	if err != nil {
		return respondBadRequest(ctx, "Invalid consolidation data: "+err.Error())
	}

	shipmentID, err := s.createConsolidationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateConsolidationResponse{ShipmentID: shipmentID.String()})
}

// ListShipments handles GET /api/v1/shipments - returns a page of shipments,
// optionally filtered by status and locker_code.
func (s *Server) ListShipments(ctx echo.Context) error {
	var statusFilter *shipment.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := shipment.StatusFromString(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid status filter: "+raw)
		}
		statusFilter = &parsed
	}

	page := 1
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid page: "+raw)
		}
		page = parsed
	}

	pageSize := 0
	if raw := ctx.QueryParam("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid page_size: "+raw)
		}
		pageSize = parsed
	}

	query, err := queries.NewListShipmentsQuery(statusFilter, ctx.QueryParam("locker_code"), page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := ShipmentPage{
		Total:     result.Total,
		Page:      result.Page,
		PageSize:  result.PageSize,
		Shipments: make([]ShipmentSummary, len(result.Shipments)),
	}
	for i, summary := range result.Shipments {
		response.Shipments[i] = ShipmentSummary{
			ID:            summary.ID.String(),
			LockerCode:    summary.LockerCode,
			RecipientName: summary.RecipientName,
			ServiceTier:   summary.ServiceTier,
			TotalWeightKg: summary.TotalWeightKg,
			TotalPrice:    summary.TotalPrice,
			Status:        summary.Status,
			CreatedAt:     summary.CreatedAt,
			LastUpdate:    summary.LastUpdate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/shipments/:id - returns a shipment with its
// item snapshots.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := Shipment{
		ID:              result.ID.String(),
		LockerCode:      result.LockerCode,
		RecipientName:   result.RecipientName,
		ServiceTier:     result.ServiceTier,
		DestinationZone: result.DestinationZone,
		TotalWeightKg:   result.TotalWeightKg,
		TotalPrice:      result.TotalPrice,
		Status:          result.Status,
		CreatedAt:       result.CreatedAt,
		LastUpdate:      result.LastUpdate,
		Items:           make([]ShipmentItem, len(result.Items)),
	}
	for i, item := range result.Items {
		response.Items[i] = ShipmentItem{
			ItemID:      item.ItemID.String(),
			Description: item.Description,
			WeightKg:    item.WeightKg,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeShipmentStatus handles POST /api/v1/shipments/:id/status - advances a
// shipment through its lifecycle.
func (s *Server) ChangeShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	nextStatus, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status: "+req.Status)
	}

	cmd, err := commands.NewChangeShipmentStatusCommand(shipmentID, nextStatus)
	if err != nil {
		return respondBadRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddTrackingEvent handles POST /api/v1/shipments/:id/events - appends a
// manual tracking event. Omitting the timestamp stamps the event at handling
// time; an explicit one back-fills it.
func (s *Server) AddTrackingEvent(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	var req AddEventRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAddTrackingEventCommand(shipmentID, req.Timestamp, req.Location, req.Details)
	if err != nil {
		return respondBadRequest(ctx, "Invalid tracking event: "+err.Error())
	}

	if err = s.addTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTrackingHistory handles GET /api/v1/shipments/:id/events - returns the
// shipment's tracking history ordered by event time.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetTrackingHistoryQuery(shipmentID)
	if err != nil {
		return respondBadRequest(ctx, err.Error())
	}

	events, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]TrackingEvent, len(events))
	for i, event := range events {
		response[i] = TrackingEvent{
			Timestamp: event.Timestamp,
			Location:  event.Location,
			Details:   event.Details,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
