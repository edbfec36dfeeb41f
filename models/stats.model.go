package models

// Stats holds application-wide counters for the dashboard endpoint.
type Stats struct {
	TotalProducts int64   `json:"total_products"`
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	CatalogValue  float64 `json:"catalog_value"`
}
