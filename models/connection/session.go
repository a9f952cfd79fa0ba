package connection

import (
	"log"
	"net"
	"time"

	"github.com/gorilla/websocket"

	mb "github.com/mvrba/battleship-engine/models/battleship"
)

const (
	maxWriteWsRetries uint8         = 2
	backOffFactor     uint8         = 2
	gracePeriod       time.Duration = time.Minute * 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	reconnect(conn *websocket.Conn)
	readErrDisposition(err error, retries uint8) uint8
	writeWithRetry(msg interface{}, msgType uint8) error
	classifyConnErr(err error) uint8
}

type Session struct {
	id                     string
	conn                   *websocket.Conn
	reconnectionSignalChan chan bool
	createdAt              time.Time
	game                   *mb.Game
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:                     id,
		conn:                   conn,
		reconnectionSignalChan: make(chan bool),
		createdAt:              time.Now(),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

// Maps a connection error to the loop action the caller takes.
// Timeouts and server overload are worth a retry, an abnormal
// closure gets the reconnection grace period, every other close
// code ends the session.
func (s *Session) classifyConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		log.Println("timeout error:", err)
		return ConnLoopRetry
	}

	closeErr, ok := err.(*websocket.CloseError)
	if !ok {
		log.Println("unexpected error:", err)
		return ConnLoopBreak
	}

	switch closeErr.Code {
	case websocket.CloseTryAgainLater:
		log.Println("high server load/traffic error:", err)
		return ConnLoopRetry

	// Happens if a mobile client goes to background
	case websocket.CloseAbnormalClosure:
		log.Println("abnormal closure error:", err)
		return ConnLoopAbnormalClosureRetry

	default:
		log.Println("close error:", err)
		return ConnLoopBreak
	}
}

func (s *Session) writeOnce(msg interface{}, msgType uint8) error {
	switch msgType {
	case MessageTypeJSON:
		return s.conn.WriteJSON(msg)

	case MessageTypeBytes:
		respBytes, ok := msg.([]byte)
		if !ok {
			return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
		}
		return s.conn.WriteMessage(websocket.TextMessage, respBytes)

	default:
		return NewConnErr(ConnInvalidMsgType).AddDesc("unknown message type for session write")
	}
}

// Writes to the session connection, retrying transient failures
// with a linear backoff before giving up on the session.
func (s *Session) writeWithRetry(msg interface{}, msgType uint8) error {
	for retries := uint8(0); ; {
		err := s.writeOnce(msg, msgType)
		if err == nil {
			return nil
		}
		if connErr, ok := err.(ConnErr); ok {
			return connErr
		}

		switch s.classifyConnErr(err) {
		case ConnLoopRetry:
			if retries == maxWriteWsRetries {
				log.Printf("max retries reached for writing to ws [%s]: %s", s.conn.RemoteAddr().String(), err)
				return NewConnErr(ConnLoopBreak)
			}
			retries++
			log.Printf("writing failed to ws [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
			time.Sleep(time.Duration(retries*backOffFactor) * time.Second)

		case ConnLoopAbnormalClosureRetry:
			return NewConnErr(ConnLoopAbnormalClosureRetry)

		default:
			return NewConnErr(ConnLoopBreak).AddDesc("session write gave up: " + err.Error())
		}
	}
}

// Decides whether a failed read is retried, handed to the
// abnormal-closure flow, or terminal for the session loop.
func (s *Session) readErrDisposition(err error, retries uint8) uint8 {
	switch s.classifyConnErr(err) {
	case ConnLoopAbnormalClosureRetry:
		return ConnLoopAbnormalClosureRetry

	case ConnLoopRetry:
		if retries == maxWriteWsRetries {
			return ConnLoopBreak
		}
		log.Printf("failed to read from ws conn [%s]; retrying... (retry no. %d)\n", s.conn.RemoteAddr().String(), retries)
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
		return ConnLoopContinue

	default:
		return ConnLoopBreak
	}
}

func (s *Session) reconnect(conn *websocket.Conn) {
	// Unblocks whoever is waiting out the grace period
	close(s.reconnectionSignalChan)

	s.conn = conn
	s.reconnectionSignalChan = make(chan bool)
}
