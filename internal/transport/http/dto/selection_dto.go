package dto

import "time"

type SelectionCreateRequest struct {
	Email      string `json:"email"`
	ClassID    string `json:"class_id"`
	ClassName  string `json:"class_name"`
	PriceCents int64  `json:"price_cents"`
}

type SelectionCreateResponse struct {
	InsertedID string `json:"inserted_id"`
}

type SelectionResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	ClassID    string    `json:"class_id"`
	ClassName  string    `json:"class_name"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type SelectionDeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
