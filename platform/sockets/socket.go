package socket

import (
	"encoding/json"
	"net/http"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/queries"
	"github.com/DedS3t/monopoly-engine/platform/session"
)

func parse(jsonStr string) map[string]string {
	var result map[string]string
	json.Unmarshal([]byte(jsonStr), &result)
	return result
}

// CreateSocketIOServer runs the realtime layer. Every event resolves the
// caller's game session and executes the engine call inside the session
// lock; results and fresh state snapshots are broadcast to the room.
func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	broadcastState := func(game_id string, s *session.Session) {
		var dto models.GameStateDto
		s.Do(func(g *game.Game) error {
			dto = models.NewGameState(g)
			return nil
		})
		if payload, err := json.Marshal(dto); err == nil {
			server.BroadcastToRoom("/", game_id, "game-state", string(payload))
		}
	}

	// tradeEvent wires the boolean engine operations (buy, build,
	// mortgage...) that share one request shape and failure behavior.
	tradeEvent := func(event string, op func(g *game.Game, playerID, propertyID string) bool) {
		server.OnEvent("/", event, func(s socketio.Conn, jsonStr string) {
			conn := pool.Get()
			defer conn.Close()
			result := parse(jsonStr)

			player_id, err := queries.ResolveSeat(result["game_id"], result["user_id"], &conn)
			if err != nil {
				s.Emit("error-message", "You are not seated in this game")
				return
			}
			sess, err := session.Default.Get(result["game_id"])
			if err != nil {
				s.Emit("error-message", "Invalid game")
				return
			}
			ok := false
			sess.Do(func(g *game.Game) error {
				ok = op(g, player_id, result["property_id"])
				return nil
			})
			if !ok {
				s.Emit("error-message", "Not allowed")
				return
			}
			broadcastState(result["game_id"], sess)
		})
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		result := parse(jsonStr)

		game_id, ok := result["game_id"]
		if !ok || !queries.VerifyGame(game_id, db) {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		user_id, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}
		user, err := queries.GetUserData(user_id, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}

		sess, err := session.Default.Get(game_id)
		if err != nil {
			s.Emit("error-message", "Game is not live")
			s.Emit("failed")
			return
		}
		var seat *game.Player
		err = sess.Do(func(g *game.Game) error {
			p, err := g.AddPlayer(user.Email)
			seat = p
			return err
		})
		if err != nil {
			s.Emit("error-message", "Unable to join: "+err.Error())
			s.Emit("failed")
			return
		}

		queries.SeatPlayer(game_id, user_id, seat.ID, &conn)
		if err := queries.CreatePlayer(models.Player{
			Game_id:  game_id,
			User_id:  user_id,
			Username: user.Email,
		}, db); err != nil {
			logrus.WithError(err).Warn("failed to record lobby membership")
		}

		s.Join(game_id)
		server.BroadcastToRoom("/", game_id, "player-join", seat.ID)
		s.Emit("joined-game", seat.ID)
		logrus.WithFields(logrus.Fields{"game": game_id, "player": seat.ID}).Info("player joined")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, game_id string) {
		conn := pool.Get()
		defer conn.Close()

		sess, err := session.Default.Get(game_id)
		if err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}
		var current string
		err = sess.Do(func(g *game.Game) error {
			if err := g.Start(); err != nil {
				return err
			}
			current = g.CurrentPlayer().ID
			return nil
		})
		if err != nil {
			s.Emit("error-message", "Unable to start game: "+err.Error())
			return
		}

		queries.SetGameStatus(game_id, string(game.StatusInProgress), db)
		queries.SetCurrentTurn(game_id, current, &conn)
		broadcastState(game_id, sess)
		server.BroadcastToRoom("/", game_id, "game-start")
		server.BroadcastToRoom("/", game_id, "change-turn", current)
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		result := parse(jsonStr)
		game_id := result["game_id"]

		player_id, err := queries.ResolveSeat(game_id, result["user_id"], &conn)
		if err != nil {
			s.Emit("error-message", "You are not seated in this game")
			return
		}
		sess, err := session.Default.Get(game_id)
		if err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}

		var turn *game.TurnResult
		var finished bool
		var next string
		err = sess.Do(func(g *game.Game) error {
			res, err := g.TakeTurn(player_id)
			if err != nil {
				return err
			}
			turn = res
			finished = g.Status == game.StatusFinished
			if cur := g.CurrentPlayer(); cur != nil {
				next = cur.ID
			}
			return nil
		})
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}

		if payload, err := json.Marshal(turn); err == nil {
			server.BroadcastToRoom("/", game_id, "turn-result", string(payload))
		}
		broadcastState(game_id, sess)

		if finished {
			queries.SetGameStatus(game_id, string(game.StatusFinished), db)
			queries.CleanUp(game_id, db, &conn)
			server.BroadcastToRoom("/", game_id, "game-over")
			return
		}
		queries.SetCurrentTurn(game_id, next, &conn)
		server.BroadcastToRoom("/", game_id, "change-turn", next)
	})

	server.OnEvent("/", "pay-out-jail", func(s socketio.Conn, jsonStr string) {
		conn := pool.Get()
		defer conn.Close()
		result := parse(jsonStr)

		player_id, err := queries.ResolveSeat(result["game_id"], result["user_id"], &conn)
		if err != nil {
			s.Emit("error-message", "You are not seated in this game")
			return
		}
		sess, err := session.Default.Get(result["game_id"])
		if err != nil {
			s.Emit("error-message", "Invalid game")
			return
		}
		ok := false
		sess.Do(func(g *game.Game) error {
			ok = g.PayJailFine(player_id)
			return nil
		})
		if !ok {
			s.Emit("error-message", "To pay out of jail it must be your turn and you must afford the fine")
			return
		}
		broadcastState(result["game_id"], sess)
	})

	tradeEvent("request-buy", func(g *game.Game, playerID, propertyID string) bool {
		return g.BuyProperty(playerID, propertyID)
	})
	tradeEvent("buy-house", func(g *game.Game, playerID, propertyID string) bool {
		return g.BuildHouse(playerID, propertyID)
	})
	tradeEvent("buy-hotel", func(g *game.Game, playerID, propertyID string) bool {
		return g.BuildHotel(playerID, propertyID)
	})
	tradeEvent("sell-house", func(g *game.Game, playerID, propertyID string) bool {
		return g.SellHouse(playerID, propertyID)
	})
	tradeEvent("sell-hotel", func(g *game.Game, playerID, propertyID string) bool {
		return g.SellHotel(playerID, propertyID)
	})
	tradeEvent("mortgage", func(g *game.Game, playerID, propertyID string) bool {
		return g.MortgageProperty(playerID, propertyID)
	})
	tradeEvent("unmortgage", func(g *game.Game, playerID, propertyID string) bool {
		return g.UnmortgageProperty(playerID, propertyID)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
