package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	ChatID    *int64    `json:"chat_id"`
	CreatedAt time.Time `json:"created_at"`
}
