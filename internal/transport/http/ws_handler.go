package http

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"cyberaware-service/internal/app"
)

// WSHandler streams live alert and report-trend events over websockets.
type WSHandler struct {
	feed     *app.AlertFeed
	catalog  *app.CatalogService
	upgrader websocket.Upgrader
}

func NewWSHandler(feed *app.AlertFeed, catalog *app.CatalogService) *WSHandler {
	return &WSHandler{
		feed:    feed,
		catalog: catalog,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type outboundMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// ServeWS upgrades the request, sends the current alert snapshot, then
// forwards feed events until the client disconnects.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	alerts, total, err := h.catalog.Alerts(r.Context(), 10, 0)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage{Type: "error", Payload: map[string]string{"message": "failed to load alerts"}})
		return
	}

	events, cancel := h.feed.Subscribe()
	defer cancel()

	send := make(chan outboundMessage, 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				msg := outboundMessage{Type: event.Kind}
				switch event.Kind {
				case app.EventAlert:
					msg.Payload = event.Alert
				case app.EventReportTrend:
					msg.Payload = event.Trend
				default:
					continue
				}
				select {
				case send <- msg:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage{Type: "snapshot", Payload: map[string]any{"data": alerts, "total": total}}

	// Drain the connection so client closes are noticed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}
