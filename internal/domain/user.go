package domain

import "time"

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	CreatedOn   time.Time `json:"created_on"`
}
