package hub

import (
	"context"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kitchen-voice-assistant/internal/model"
)

// HandleWS upgrades the request and serves one executor connection until it
// closes. Registered as a gin route.
func (h *Hub) HandleWS(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "hub: upgrade failed: %v", err)
		return
	}

	cl := &client{conn: conn}
	h.register(cl)
	defer h.unregister(cl)

	h.l.Infof(ctx, "hub: executor connected (total=%d)", h.ClientCount())

	if err := cl.write(model.StatusEvent{
		Type:    model.TypeConnected,
		Message: "connected to the kitchen voice assistant",
	}); err != nil {
		h.l.Warnf(ctx, "hub: hello frame failed: %v", err)
		return
	}

	h.readLoop(cl)
	h.l.Infof(ctx, "hub: executor disconnected (total=%d)", h.ClientCount())
}

// readLoop consumes frames from one client until the connection drops.
func (h *Hub) readLoop(cl *client) {
	ctx := context.Background()

	for {
		_, data, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.l.Warnf(ctx, "hub: read error: %v", err)
			}
			return
		}

		var frame model.InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			h.l.Warnf(ctx, "hub: dropping malformed frame: %v", err)
			continue
		}

		switch frame.Type {
		case model.TypePing:
			if err := cl.write(model.StatusEvent{Type: model.TypePong}); err != nil {
				return
			}

		case model.TypeUpdateContext:
			if h.contexts != nil && frame.Context != nil {
				h.contexts.MergeContext("", frame.Context)
			}

		case model.TypeFunctionResponse:
			if frame.RequestID == "" || h.resolver == nil {
				continue
			}
			if !h.resolver.Resolve(frame.RequestID, frame.Result) {
				h.l.Debugf(ctx, "hub: discarded reply for unknown request_id %s", frame.RequestID)
			}

		default:
			h.l.Debugf(ctx, "hub: ignoring frame type %q", frame.Type)
		}
	}
}

// Broadcast sends the message to every attached executor. Clients whose
// write fails are detached.
func (h *Hub) Broadcast(ctx context.Context, message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for cl := range h.clients {
		targets = append(targets, cl)
	}
	h.mu.RUnlock()

	for _, cl := range targets {
		if err := cl.writeRaw(data); err != nil {
			h.l.Warnf(ctx, "hub: dropping client after write error: %v", err)
			h.unregister(cl)
		}
	}
	return nil
}

// ClientCount returns the number of attached executors.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	h.clients[cl] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	_, ok := h.clients[cl]
	if ok {
		delete(h.clients, cl)
	}
	h.mu.Unlock()
	if ok {
		_ = cl.conn.Close()
	}
}

func (cl *client) write(message any) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return cl.writeRaw(data)
}

func (cl *client) writeRaw(data []byte) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.conn.WriteMessage(websocket.TextMessage, data)
}
