package http

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddItemRequest is the body of POST /api/v1/lockers/:code/items.
type AddItemRequest struct {
	Description string  `json:"description"`
	WeightKg    float64 `json:"weight_kg"`
}

// AddItemResponse returns the identifier assigned to a registered item.
type AddItemResponse struct {
	ID string `json:"id"`
}

// PendingItem is one entry of GET /api/v1/lockers/:code/items.
type PendingItem struct {
	ID          string  `json:"id"`
	LockerCode  string  `json:"locker_code"`
	Description string  `json:"description,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
}

// CreateConsolidationRequest is the body of POST /api/v1/consolidations.
type CreateConsolidationRequest struct {
	RequestID       string `json:"request_id"`
	LockerCode      string `json:"locker_code"`
	RecipientName   string `json:"recipient_name"`
	ServiceTier     string `json:"service_tier"`
	DestinationZone *int   `json:"destination_zone,omitempty"`
	InitialStatus   string `json:"initial_status,omitempty"`
}

// CreateConsolidationResponse returns the identifier of the resulting
// shipment. A replayed request returns the shipment from the first attempt.
type CreateConsolidationResponse struct {
	ShipmentID string `json:"shipment_id"`
}

// ShipmentItem is one consolidated item snapshot inside a shipment.
type ShipmentItem struct {
	ItemID      string  `json:"item_id"`
	Description string  `json:"description,omitempty"`
	WeightKg    float64 `json:"weight_kg"`
}

// Shipment is the full read model returned by GET /api/v1/shipments/:id.
type Shipment struct {
	ID              string         `json:"id"`
	LockerCode      string         `json:"locker_code"`
	RecipientName   string         `json:"recipient_name"`
	ServiceTier     string         `json:"service_tier"`
	DestinationZone *int           `json:"destination_zone,omitempty"`
	TotalWeightKg   float64        `json:"total_weight_kg"`
	TotalPrice      float64        `json:"total_price"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	LastUpdate      time.Time      `json:"last_update"`
	Items           []ShipmentItem `json:"items"`
}

// ShipmentSummary is one entry of the shipment listing.
type ShipmentSummary struct {
	ID            string    `json:"id"`
	LockerCode    string    `json:"locker_code"`
	RecipientName string    `json:"recipient_name"`
	ServiceTier   string    `json:"service_tier"`
	TotalWeightKg float64   `json:"total_weight_kg"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastUpdate    time.Time `json:"last_update"`
}

// ShipmentPage is the response of GET /api/v1/shipments.
type ShipmentPage struct {
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
	Shipments []ShipmentSummary `json:"shipments"`
}

// ChangeStatusRequest is the body of POST /api/v1/shipments/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// AddEventRequest is the body of POST /api/v1/shipments/:id/events.
// A missing timestamp means "now"; an explicit one back-fills the event.
type AddEventRequest struct {
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Location  string     `json:"location,omitempty"`
	Details   string     `json:"details"`
}

// TrackingEvent is one entry of GET /api/v1/shipments/:id/events.
type TrackingEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location,omitempty"`
	Details   string    `json:"details"`
}
