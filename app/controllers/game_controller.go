package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/DedS3t/monopoly-engine/app/game"
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/session"
)

// CreateGame opens a lobby row and its in-memory session. The optional
// seed makes the whole game replayable; zero means a clock seed.
func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	_, id, err := session.Default.Create("", gameCreateDto.Seed)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	row := &models.Game{
		Id:     id,
		Name:   gameCreateDto.Name,
		Status: string(game.StatusWaiting),
		Seed:   gameCreateDto.Seed,
	}
	if _, err := db.Model(row).Insert(); err != nil {
		logrus.WithError(err).Error("failed to insert game row")
		session.Default.Delete(id)
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"id": id})
}

// GetAllAvailGames lists lobbies still waiting for players.
func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	err := db.Model(&games).Where("status = ?", string(game.StatusWaiting)).Select()
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

// FindAvailGame picks one joinable lobby for quick matchmaking.
func FindAvailGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	row := new(models.Game)
	err := db.Model(row).Where("status = ?", string(game.StatusWaiting)).Limit(1).Select()
	if err != nil {
		return c.JSON(fiber.Map{"id": ""})
	}
	return c.JSON(fiber.Map{"id": row.Id})
}

// VerifyGame checks that a join code names a known lobby.
func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	row := &models.Game{Id: verifyGameDto.Code}
	if err := db.Model(row).WherePK().Select(); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}

// GameState serves the live snapshot of a running table.
func GameState(c *fiber.Ctx) error {
	s, err := session.Default.Get(c.Query("code"))
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	var dto models.GameStateDto
	s.Do(func(g *game.Game) error {
		dto = models.NewGameState(g)
		return nil
	})
	return c.JSON(dto)
}
