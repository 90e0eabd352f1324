package dto

import (
	"encoding/json"
	"time"
)

type PaymentIntentRequest struct {
	// Price stays a json.Number so the decimal string reaches the cents
	// parser without a float round trip.
	Price json.Number `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentRecordRequest struct {
	Email            string      `json:"email"`
	Price            json.Number `json:"price"`
	TransactionID    string      `json:"transaction_id"`
	SelectedClassIDs []string    `json:"selected_class_id"`
}

type PaymentRecordResponse struct {
	InsertResult InsertResult `json:"insert_result"`
	DeleteResult DeleteResult `json:"delete_result"`
}

type InsertResult struct {
	InsertedID string `json:"inserted_id"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}

type PaymentResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	AmountCents      int64     `json:"amount_cents"`
	Currency         string    `json:"currency"`
	TransactionID    string    `json:"transaction_id"`
	SelectedClassIDs []string  `json:"selected_class_id"`
	CreatedAt        time.Time `json:"created_at"`
}
