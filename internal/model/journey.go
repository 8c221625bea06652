package model

import "time"

// Time is an in-universe/on-planet time pair. A fresh row is created for every
// journey; there is no deduplication across journeys.
type Time struct {
	ID           int64  `json:"id"`
	UniverseTime string `json:"universe_time"`
	PlanetTime   string `json:"planet_time"`
}

type Journey struct {
	ID          int64  `json:"id"`
	PlanetID    int64  `json:"planet_id"`
	TimeID      int64  `json:"time_id"`
	DoctorID    int64  `json:"doctor_id"`
	Description string `json:"description"`
}

type Message struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	ToUserID   int64     `json:"to_user_id"`
	Body       string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
