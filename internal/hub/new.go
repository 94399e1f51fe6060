package hub

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	pkgLog "kitchen-voice-assistant/pkg/log"
)

// Resolver routes inbound function_response frames to their waiting caller.
type Resolver interface {
	Resolve(requestID string, result json.RawMessage) bool
}

// ContextSink receives update_context frames from executor clients.
type ContextSink interface {
	MergeContext(sessionID string, ctx map[string]any)
}

// Hub owns the set of attached executor clients on the /ws endpoint and the
// broadcast fan-out to them. The connected-client set lives here behind a
// lock rather than as module-level shared state.
type Hub struct {
	l        pkgLog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}

	resolver Resolver
	contexts ContextSink
}

// client wraps one websocket connection. Writes are serialized per client
// because gorilla connections allow a single concurrent writer.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// New creates the Hub. The resolver is attached later via SetResolver
// because the broker needs the hub as its outbound channel first.
func New(l pkgLog.Logger, contexts ContextSink) *Hub {
	return &Hub{
		l:       l,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Executors connect from the local web client; origin checks are
			// the reverse proxy's concern.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		contexts: contexts,
	}
}

// SetResolver attaches the function-response resolver.
func (h *Hub) SetResolver(r Resolver) {
	h.resolver = r
}
