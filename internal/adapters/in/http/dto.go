package http

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address carries delivery address fields in requests and responses.
type Address struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Text string  `json:"text"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	VendorID    string   `json:"vendor_id"`
	Method      string   `json:"method"`
	Address     *Address `json:"address,omitempty"`
	MealSlotID  string   `json:"meal_slot_id,omitempty"`
	WindowStart string   `json:"window_start,omitempty"`
	WindowEnd   string   `json:"window_end,omitempty"`
}

// OrderCreated is the response body for order creation.
type OrderCreated struct {
	ID string `json:"id"`
}

// StatusChange is the request body for an order status transition.
type StatusChange struct {
	Status string `json:"status"`
	Note   string `json:"note,omitempty"`
}

// AcceptOrder is the request body for a partner accepting an order.
type AcceptOrder struct {
	PartnerID string `json:"partner_id"`
}

// NewServiceArea is the request body for service area creation.
type NewServiceArea struct {
	Name     string     `json:"name"`
	Vertices []GeoPoint `json:"vertices"`
	Pincodes []string   `json:"pincodes,omitempty"`
}

// GeoPoint carries a coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ServiceArea is the read model of an active service area.
type ServiceArea struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewMealSlot is the request body for meal slot creation.
type NewMealSlot struct {
	VendorID        string `json:"vendor_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	CutoffTime      string `json:"cutoff_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DeliveryWindow is one selectable window of a meal slot.
type DeliveryWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// LocationPing is the request body for a partner location update.
type LocationPing struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UnassignedOrder is the read model of an order awaiting a partner.
type UnassignedOrder struct {
	ID          string  `json:"id"`
	VendorID    string  `json:"vendor_id"`
	AddressText string  `json:"address_text,omitempty"`
	WindowStart *string `json:"window_start,omitempty"`
	WindowEnd   *string `json:"window_end,omitempty"`
}

// Created is the response body carrying the identifier of a created resource.
type Created struct {
	ID string `json:"id"`
}
