package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// session is one live client connection. It implements hub.Conn: Deliver
// enqueues onto a buffered channel drained by the write pump, so publishing
// never blocks on a slow socket.
type session struct {
	id   string
	conn *websocket.Conn
	send chan any
	done chan struct{}
	log  *zap.Logger
}

func newSession(id string, conn *websocket.Conn, log *zap.Logger) *session {
	return &session{
		id:   id,
		conn: conn,
		send: make(chan any, sendBuffer),
		done: make(chan struct{}),
		log:  log,
	}
}

func (s *session) ID() string { return s.id }

// Deliver enqueues an event envelope for the write pump. A full buffer means
// a slow consumer; the event is dropped rather than blocking the publisher.
func (s *session) Deliver(event any) {
	s.enqueue(eventFrame{Event: "orderChanged", Payload: event})
}

func (s *session) reply(r resultFrame) {
	s.enqueue(r)
}

func (s *session) enqueue(msg any) {
	select {
	case s.send <- msg:
	case <-s.done:
	default:
		s.log.Debug("send_buffer_full", zap.String("conn_id", s.id))
	}
}

// writePump serializes all socket writes and keeps the connection alive
// with pings. Exits when done closes.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-s.done:
			return
		}
	}
}
