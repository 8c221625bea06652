package handler

import (
	"encoding/json"
	"net/http"

	"tardis-journal/internal/middleware"
	"tardis-journal/internal/model"
	"tardis-journal/internal/service"
	"tardis-journal/pkg/apierror"
)

type MessageHandler struct {
	messages *service.MessageService
}

func NewMessageHandler(messages *service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Not authenticated"))
		return
	}

	var payload model.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid request body"))
		return
	}

	messageID, err := h.messages.Send(r.Context(), user.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageSentResponse{
		Message:   "Message sent successfully",
		MessageID: messageID,
	})
}

func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("Not authenticated"))
		return
	}

	messages, err := h.messages.Inbox(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
