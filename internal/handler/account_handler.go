package handler

import (
	"encoding/json"
	"net/http"

	"tardis-journal/internal/model"
	"tardis-journal/internal/service"
	"tardis-journal/pkg/apierror"
)

type AccountHandler struct {
	accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid request body"))
		return
	}

	userID, err := h.accounts.Signup(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.SignupResponse{
		Message: "User created successfully",
		UserID:  userID,
	})
}
