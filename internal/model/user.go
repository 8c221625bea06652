package model

import "time"

type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CharacterID  int64     `json:"character_id"`
	CreatedAt    time.Time `json:"created_at"`
}
