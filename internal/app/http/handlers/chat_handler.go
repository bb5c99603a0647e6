package handlers

import "net/http"

func (h *Handlers) ChatMessage(w http.ResponseWriter, r *http.Request) {
	h.Chat.Handle(w, r)
}
