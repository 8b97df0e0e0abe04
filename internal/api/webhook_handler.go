package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"braseria/internal/service"
)

// WhatsAppWebhookHandler receives Twilio's inbound-message callbacks
// (form-encoded From/Body) and feeds them to the conversation machine.
type WhatsAppWebhookHandler struct {
	Conversation *service.ConversationService
}

func NewWhatsAppWebhookHandler(conversation *service.ConversationService) *WhatsAppWebhookHandler {
	return &WhatsAppWebhookHandler{Conversation: conversation}
}

func (h *WhatsAppWebhookHandler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	from := strings.TrimPrefix(r.FormValue("From"), "whatsapp:")
	body := r.FormValue("Body")
	if from == "" {
		http.Error(w, "From required", http.StatusBadRequest)
		return
	}

	if err := h.Conversation.HandleIncomingMessage(from, body); err != nil {
		// The reply (if any) already went out through the messenger;
		// Twilio only needs a 200 so it stops retrying.
		log.Printf("Error handling inbound message from %s: %v", from, err)
	}

	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprint(w, "<Response></Response>")
}
