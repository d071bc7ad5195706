package config

import (
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/gorilla/websocket"
)

// WebSocket describes how game connections are accepted. An empty Origins
// list accepts every origin.
type WebSocket struct {
	Origins     []string
	ReadBuffer  int
	WriteBuffer int
}

// NewWebSocket reads ALLOWED_ORIGINS (comma separated), WS_READ_BUFFER and
// WS_WRITE_BUFFER. A board view of a large game is a few kilobytes, hence
// the bigger write buffer.
func NewWebSocket() (*WebSocket, error) {
	ws := &WebSocket{
		Origins: splitList(os.Getenv("ALLOWED_ORIGINS")),
	}

	var err error
	if ws.ReadBuffer, err = lookupInt("WS_READ_BUFFER", 1024); err != nil {
		return nil, err
	}
	if ws.WriteBuffer, err = lookupInt("WS_WRITE_BUFFER", 4096); err != nil {
		return nil, err
	}
	if ws.ReadBuffer <= 0 || ws.WriteBuffer <= 0 {
		return nil, fmt.Errorf("websocket buffers must be positive, got %d and %d",
			ws.ReadBuffer, ws.WriteBuffer)
	}
	return ws, nil
}

func (ws WebSocket) Allowed(origin string) bool {
	return len(ws.Origins) == 0 || slices.Contains(ws.Origins, origin)
}

func (ws WebSocket) Upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  ws.ReadBuffer,
		WriteBufferSize: ws.WriteBuffer,
		CheckOrigin: func(r *http.Request) bool {
			return ws.Allowed(r.Header.Get("Origin"))
		},
	}
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
