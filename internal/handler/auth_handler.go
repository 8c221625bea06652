package handler

import (
	"net/http"

	"tardis-journal/internal/service"
	"tardis-journal/pkg/apierror"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Token implements the OAuth2 password flow endpoint: form-encoded
// username/password in, bearer token out.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	if err := r.ParseForm(); err != nil {
		writeError(w, apierror.Validation("Invalid form data"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		writeError(w, apierror.Validation("username and password are required"))
		return
	}

	tokens, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}
