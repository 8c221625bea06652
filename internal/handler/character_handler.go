package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"tardis-journal/internal/service"
	"tardis-journal/pkg/apierror"
)

type CharacterHandler struct {
	characters *service.CharacterService
}

func NewCharacterHandler(characters *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characters: characters}
}

func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characters.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, characters)
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, apierror.Validation("Invalid character id"))
		return
	}

	detail, err := h.characters.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
