package handler

import (
	"encoding/json"
	"net/http"

	"tardis-journal/internal/middleware"
	"tardis-journal/internal/model"
	"tardis-journal/internal/service"
	"tardis-journal/pkg/apierror"
)

type JourneyHandler struct {
	journeys *service.JourneyService
}

func NewJourneyHandler(journeys *service.JourneyService) *JourneyHandler {
	return &JourneyHandler{journeys: journeys}
}

// List returns the journeys belonging to the caller's character.
func (h *JourneyHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Not authenticated"))
		return
	}

	journeys, err := h.journeys.ListForCharacter(r.Context(), user.CharacterID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, journeys)
}

func (h *JourneyHandler) Add(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Not authenticated"))
		return
	}

	var payload model.JourneyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid request body"))
		return
	}

	journeyID, err := h.journeys.Add(r.Context(), user.CharacterID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.JourneyCreatedResponse{
		Message:   "Journey added successfully",
		JourneyID: journeyID,
	})
}
