package dto

import "time"

type InstructorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Image        string    `json:"image"`
	ClassesCount int       `json:"classes_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type ClassResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Image           string    `json:"image"`
	InstructorName  string    `json:"instructor_name"`
	InstructorEmail string    `json:"instructor_email"`
	PriceCents      int64     `json:"price_cents"`
	Seats           int       `json:"seats"`
	Enrolled        int       `json:"enrolled"`
	CreatedAt       time.Time `json:"created_at"`
}
