package dto

// PriceLookupResponse result of GET /api/catalog/prices. The UI auto-fills
// when exactly one candidate comes back, forces a manual pick for several
// and clears the field for none.
type PriceLookupResponse struct {
	Location string  `json:"location"`
	Size     string  `json:"size,omitempty"`
	Prices   []int64 `json:"prices"`
	AutoFill *int64  `json:"auto_fill,omitempty"` // set iff exactly one candidate
}

// ReferenceDataResponse the select-option lists for the row editor.
type ReferenceDataResponse struct {
	ContainerStatuses []string `json:"container_statuses"`
	ContainerSizes    []string `json:"container_sizes"`
	PickupLocations   []string `json:"pickup_locations"`
	Depos             []string `json:"depos"`
	Destinations      []string `json:"destinations"`
}
