package model

import "time"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CharacterSummary struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	State        string `json:"state"`
	Relationship string `json:"relationship"`
}

// CharacterDetail is the full character view: user_id is null when no
// user owns the character, and the doctor/enemy fields appear only for the
// matching relationship.
type CharacterDetail struct {
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	State        string  `json:"state"`
	Relationship string  `json:"relationship"`
	UserID       *int64  `json:"user_id"`
	Race         string  `json:"race"`
	Appearance   *string `json:"appearance,omitempty"`
	Personality  *string `json:"personality,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

type JourneyEntry struct {
	ID          int64  `json:"id"`
	PlanetID    int64  `json:"planet_id"`
	Time        string `json:"time"`
	DoctorID    int64  `json:"doctor_id"`
	Description string `json:"description"`
}

type MessageEntry struct {
	ID         int64     `json:"id"`
	FromUserID int64     `json:"from_user_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type JourneyCreatedResponse struct {
	Message   string `json:"message"`
	JourneyID int64  `json:"journey_id"`
}

type MessageSentResponse struct {
	Message   string `json:"message"`
	MessageID int64  `json:"message_id"`
}
