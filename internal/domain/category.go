package domain

import "time"

// Category groups products. Timestamps are assigned by the API.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`

	// Products is only populated on detail fetches.
	Products []Product `json:"products,omitempty"`
}

// CategoryPayload is the body sent on create and update.
type CategoryPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
