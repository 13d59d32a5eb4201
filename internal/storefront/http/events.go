package http

import (
	"fmt"
	"net/http"

	"github.com/oakleaftoys/storefront/internal/storefront/signal"
)

// EventsHandler serves GET /v1/events: a server-sent event stream of state
// change topics so the UI can refetch without polling.
type EventsHandler struct {
	Hub *signal.Hub
}

// ServeHTTP godoc
//
//	@Summary		State Change Events
//	@Description	Server-sent event stream. Each event names the state that changed:
//	@Description	cart, wishlist or session.
//	@Tags			Events
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"event stream"
//	@Router			/v1/events [get].
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Subscribe before the headers go out so a client that has seen the
	// response start cannot miss a notification.
	events, cancel := h.Hub.Subscribe(signal.TopicCart, signal.TopicWishlist, signal.TopicSession)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case topic := <-events:
			fmt.Fprintf(w, "event: %s\ndata: {}\n\n", topic)
			flusher.Flush()
		}
	}
}
