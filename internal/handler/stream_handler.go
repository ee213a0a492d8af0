package handler

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"mindtrack/internal/middleware"
	"mindtrack/internal/service/hub"
)

const keepaliveInterval = 25 * time.Second

// StreamHandler serves the live notification feed over Server-Sent Events.
// Each connection subscribes to the hub under the authenticated user's ID
// and stays open until the client disconnects or the server shuts down.
type StreamHandler struct {
	hub *hub.Hub
}

func NewStreamHandler(liveHub *hub.Hub) *StreamHandler {
	return &StreamHandler{hub: liveHub}
}

func (h *StreamHandler) Subscribe(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	sub := h.hub.Subscribe(user.ID)

	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()

		// Tell the client the stream is live before the first event.
		fmt.Fprint(w, ": connected\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		keepalive := time.NewTicker(keepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case payload, ok := <-sub.C():
				if !ok {
					return
				}
				body, err := json.Marshal(payload)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", payload.EventType, body)
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))

	return nil
}
