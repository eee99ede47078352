// Package responses defines API response types used by itemsvc HTTP handlers.
package responses

import "git.home.luguber.info/inful/itemsvc/internal/items"

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status string `json:"status"`
}

// ItemsResponse lists stored items in store order.
type ItemsResponse struct {
	Items []items.Item `json:"items"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
