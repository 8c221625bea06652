package model

type SignupRequest struct {
	Login        string `json:"login"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Race         string `json:"race"`
	Age          int    `json:"age"`
	Relationship string `json:"relationship"`
	Reason       string `json:"reason,omitempty"`
	Appearance   string `json:"appearance,omitempty"`
	Personality  string `json:"personality,omitempty"`
}

type JourneyRequest struct {
	Planet      int64  `json:"planet"`
	Time        string `json:"time"`
	Doctor      int64  `json:"doctor"`
	Description string `json:"description"`
}

type MessageRequest struct {
	ToUserID int64  `json:"to_user_id"`
	Message  string `json:"message"`
}
