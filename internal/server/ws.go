package server

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// wsLineConn adapts a WebSocket connection to the lineConn transport. Each
// text frame carries exactly one protocol line.
type wsLineConn struct {
	conn *websocket.Conn
}

func (c *wsLineConn) ReadLine() (string, error) {
	for {
		messageType, payload, err := c.conn.ReadMessage()
		if err != nil {
			return "", err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		return string(payload), nil
	}
}

func (c *wsLineConn) WriteLine(line string) error {
	return c.conn.WriteMessage(websocket.TextMessage, []byte(line))
}

func (c *wsLineConn) Close() error {
	return c.conn.Close()
}

func (c *wsLineConn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// WebSocketHandler upgrades the request and runs a relay session over the
// bridge. The session speaks the identical protocol as a TCP peer, identity
// negotiation included.
func (s *Server) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. WebSocket endpoint only accepts GET requests.", http.StatusMethodNotAllowed)
		return
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(int64(s.cfg.MaxLineBytes))

	s.startSession(&wsLineConn{conn: conn})
}
