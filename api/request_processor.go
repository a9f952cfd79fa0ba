package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sqlc-dev/pqtype"

	"github.com/mvrba/battleship-engine/db/sqlc"
	mb "github.com/mvrba/battleship-engine/models/battleship"
	mc "github.com/mvrba/battleship-engine/models/connection"
)

const (
	URLQuerySessionIDKeyword string = "sessionID"
)

var upgrader = websocket.Upgrader{

	// good average time since this is not a high-latency operation such as video streaming
	HandshakeTimeout: time.Second * 5,

	// probably more than enough but this is a good average size
	ReadBufferSize:  2048,
	WriteBufferSize: 2048,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	q              sqlc.Querier
	ipnet          net.IPNet
}

func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	q sqlc.Querier,
) RequestProcessor {
	rp := RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		q:              q,
	}

	rp = rp.mustGetServerIpNet()
	return rp
}

func (rp RequestProcessor) mustGetServerIpNet() RequestProcessor {
	ifaces, err := net.Interfaces()
	if err != nil {
		panic(err)
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			panic(err)
		}

		for _, addr := range addrs {
			var ipnet *net.IPNet
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ipnet = v
				ip = v.IP

			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				rp.ipnet = *ipnet
				return rp
			}
		}
	}

	panic("ipnet could not be found!")
}

// Expose this method to use it in testing
func (rp RequestProcessor) GetIpNet() net.IPNet {
	return rp.ipnet
}

// Analytics must never kill a game; a nil querier (no database
// configured) skips them entirely.
func (rp *RequestProcessor) recordAnalytics(increment func(q sqlc.Querier, ctx context.Context, serverIp pqtype.Inet) error) {
	if rp.q == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	if err := increment(rp.q, ctx, pqtype.Inet{IPNet: rp.ipnet, Valid: true}); err != nil {
		log.Println(err)
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		http.Error(w, "could not open websocket connection", http.StatusBadRequest)
		return
	}

	sessionIdQuery := r.URL.Query().Get(URLQuerySessionIDKeyword)
	switch sessionIdQuery {
	case "":
		log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
		go rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn))

	default:
		session, err := rp.sessionManager.FindSession(sessionIdQuery)
		if err != nil {
			// Expired session or invalid session ID
			_ = conn.WriteJSON(mc.NewMessage[mc.NoPayload](mc.CodeReceivedInvalidSessionID))
			conn.Close()
			return
		}
		rp.sessionManager.ReconnectSession(session, conn)
	}
}

func (rp *RequestProcessor) processSessionRequests(session *mc.Session) {
	sessionId := session.Id()

	defer func() {
		if game := rp.sessionManager.GetSessionGame(session); game != nil {
			rp.gameManager.TerminateGame(game.Uuid())
		}
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(session)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			// This error happens after retries. If it's not nil,
			// something was wrong with the session connection
			// and couldn't be resolved
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		switch signal.Code {

		// Initializes the game: both fleets are auto-placed and
		// the bot targeter is armed
		case mc.CodeCreateGame:
			game, respMsg := NewRequest(payload).HandleCreateGame(rp.gameManager)
			if game != nil {
				rp.sessionManager.SetSessionGame(session, game)
				rp.recordAnalytics(sqlc.Querier.AnalyticsIncrementGamesCreatedCount)
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Host asks for their own auto-placed defence grid
		case mc.CodePlaceFleet:
			respMsg := NewRequest(payload).HandlePlaceFleet(rp.sessionManager.GetSessionGame(session))
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// Host shot resolved against the bot board, then the bot
		// fires back at the host board
		case mc.CodeAttack:
			game := rp.sessionManager.GetSessionGame(session)
			respMsg := NewRequest(payload).HandleAttack(game)

			if respMsg.Error == nil {
				rp.recordAnalytics(sqlc.Querier.AnalyticsIncrementShotsFiredCount)
				if respMsg.Payload.Host.IsSunk || respMsg.Payload.Bot.IsSunk {
					rp.recordAnalytics(sqlc.Querier.AnalyticsIncrementShipsSunkCount)
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			if respMsg.Error != nil {
				continue sessionLoop
			}

			if game.IsFinished() {
				respEnd := mc.NewMessage[mc.RespEndGame](mc.CodeEndGame)
				respEnd.AddPayload(mc.RespEndGame{PlayerMatchStatus: game.HostPlayer().MatchStatus()})
				if err := rp.sessionManager.WriteToSessionConn(session, respEnd, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
