package handlers

import (
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/events"
	"github.com/localnerve/decideforme/internal/metrics"
)

// DefaultHeartbeat is the keep-alive interval of an event stream
const DefaultHeartbeat = 30 * time.Second

// EventsHandler streams the notification topics of a profile as Server-Sent Events
type EventsHandler struct {
	Bus       *events.Bus
	Heartbeat time.Duration
}

// Stream handles GET /api/events
// @Summary Change notifications
// @Description Server-Sent Events; each event is named after the topic that changed, with no payload
// @Tags Events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	scope := session(c).ProfileID

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	ch := make(chan events.Topic, 32)
	cancel := h.Bus.SubscribeAll(scope, func(topic events.Topic) {
		select {
		case ch <- topic:
		default:
			log.Printf("Event stream of %s is full, dropped %s", scope, topic)
		}
	})

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		metrics.SSEClients.Inc()
		defer metrics.SSEClients.Dec()
		defer cancel()

		streamEvents(w, ch, heartbeat)
	})
	return nil
}

// streamEvents writes topics from ch until ch is closed or the client goes away
func streamEvents(w *bufio.Writer, ch <-chan events.Topic, heartbeat time.Duration) {
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil || w.Flush() != nil {
		return
	}

	for {
		select {
		case topic, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", topic, topic); err != nil {
				return
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		}

		// A failed flush means the client disconnected
		if err := w.Flush(); err != nil {
			return
		}
	}
}
