package queries

import (
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"

	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/cache"
)

// Lobby rows live in Postgres, seat mappings and the current-turn marker
// in Redis. The engine never sees either; the realtime layer keeps them
// in step with the in-memory game.

func VerifyGame(id string, db *pg.DB) bool {
	row := &models.Game{Id: id}
	return db.Model(row).WherePK().Select() == nil
}

func SetGameStatus(id string, status string, db *pg.DB) error {
	row := &models.Game{Id: id}
	_, err := db.Model(row).WherePK().Set("status = ?", status).Update()
	return err
}

func GetUserData(user_id string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: user_id}
	if err := db.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func CreatePlayer(player models.Player, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

// SeatPlayer remembers which engine seat a user controls.
func SeatPlayer(game_id, user_id, player_id string, conn *redis.Conn) error {
	return cache.HSET(seatsKey(game_id), user_id, player_id, conn)
}

// ResolveSeat maps a user back to their engine seat.
func ResolveSeat(game_id, user_id string, conn *redis.Conn) (string, error) {
	return cache.HGET(seatsKey(game_id), user_id, conn)
}

// SetCurrentTurn mirrors the engine's current player for lobby queries.
func SetCurrentTurn(game_id, player_id string, conn *redis.Conn) error {
	return cache.Set(game_id, player_id, conn)
}

func CurrentTurn(game_id string, conn *redis.Conn) (string, error) {
	return cache.Get(game_id, conn)
}

// CleanUp drops every trace of a finished game from Postgres and Redis.
func CleanUp(game_id string, db *pg.DB, conn *redis.Conn) {
	player := new(models.Player)
	db.Model(player).Where("game_id = ?", game_id).Delete()

	cache.Del(game_id, conn)
	cache.Del(seatsKey(game_id), conn)
}

func seatsKey(game_id string) string {
	return fmt.Sprintf("%s.seats", game_id)
}
