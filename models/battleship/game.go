package battleship

import (
	cerr "github.com/mvrba/battleship-engine/internal/error"
)

const (
	GameDifficultyEasy int = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	GridSizeEasy   int = 8
	GridSizeNormal int = 10
	GridSizeHard   int = 12
)

// A failed fleet placement leaves the board unusable; it is reset
// and retried this many times before game creation fails.
const maxPlacementRetries = 5

func shipCensusForDifficulty(difficulty int) map[int]int {
	switch difficulty {
	case GameDifficultyEasy:
		return map[int]int{
			ShipCodeDestroyer: 2,
			ShipCodeCruiser:   1,
		}
	case GameDifficultyNormal:
		return map[int]int{
			ShipCodeDestroyer: 2,
			ShipCodeCruiser:   2,
			ShipCodeTShape:    1,
		}
	default:
		return map[int]int{
			ShipCodeDestroyer:  2,
			ShipCodeCruiser:    2,
			ShipCodeBattleship: 1,
			ShipCodeLShape:     1,
			ShipCodeCarrier:    1,
		}
	}
}

func gridSizeForDifficulty(difficulty int) int {
	switch difficulty {
	case GameDifficultyEasy:
		return GridSizeEasy
	case GameDifficultyNormal:
		return GridSizeNormal
	default:
		return GridSizeHard
	}
}

// Game wires one host player against the engine bot: two auto-placed
// boards plus one Targeter driving the bot's shots at the host fleet.
type Game struct {
	uuid       string
	difficulty int
	gridSize   int
	isFinished bool
	hostPlayer *Player
	botPlayer  *Player
	targeter   *Targeter
}

func newGame(difficulty int, gameUuid string) (*Game, error) {
	gridSize := gridSizeForDifficulty(difficulty)
	census := shipCensusForDifficulty(difficulty)

	hostBoard, err := newPlacedBoard(gridSize, census)
	if err != nil {
		return nil, err
	}
	botBoard, err := newPlacedBoard(gridSize, census)
	if err != nil {
		return nil, err
	}

	game := &Game{
		uuid:       gameUuid,
		difficulty: difficulty,
		gridSize:   gridSize,
		hostPlayer: newPlayer(true, hostBoard),
		botPlayer:  newPlayer(false, botBoard),
		targeter:   NewTargeter(gridSize, gridSize, SizeCensus(census)),
	}
	game.hostPlayer.syncShipCells()
	game.botPlayer.syncShipCells()

	return game, nil
}

func newPlacedBoard(gridSize int, census map[int]int) (*Board, error) {
	board := NewBoard(gridSize, gridSize, census)

	var err error
	for i := 0; i < maxPlacementRetries; i++ {
		if err = board.PlaceShips(); err == nil {
			return board, nil
		}
		board.Reset()
	}
	return nil, err
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Difficulty() int {
	return g.difficulty
}

func (g *Game) GridSize() int {
	return g.gridSize
}

func (g *Game) HostPlayer() *Player {
	return g.hostPlayer
}

func (g *Game) BotPlayer() *Player {
	return g.botPlayer
}

func (g *Game) Targeter() *Targeter {
	return g.targeter
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// Resolves the host's shot against the bot board. A defeated bot
// finishes the game and settles both match statuses.
func (g *Game) PlayHostTurn(x, y int) (ShotOutcome, error) {
	outcome, err := g.botPlayer.ResolveShot(x, y)
	if err != nil {
		return ShotOutcome{}, err
	}

	if g.botPlayer.IsDefeated() {
		g.finish(g.hostPlayer)
	}
	return outcome, nil
}

// One full bot cycle: pick the next target, resolve it against the
// host board, feed the outcome back into the targeter.
func (g *Game) PlayBotTurn() (ShotOutcome, error) {
	coords, ok := g.targeter.NextAttack()
	if !ok {
		return ShotOutcome{}, cerr.ErrTargeterExhausted()
	}

	outcome, err := g.hostPlayer.ResolveShot(coords.X, coords.Y)
	if err != nil {
		return ShotOutcome{}, err
	}
	g.targeter.RegisterAttack(coords.X, coords.Y, outcome.IsHit, outcome.IsSunk)

	if g.hostPlayer.IsDefeated() {
		g.finish(g.botPlayer)
	}
	return outcome, nil
}

func (g *Game) finish(winner *Player) {
	g.isFinished = true
	if winner == g.hostPlayer {
		g.hostPlayer.setMatchStatus(PlayerMatchStatusWon)
		g.botPlayer.setMatchStatus(PlayerMatchStatusLost)
	} else {
		g.hostPlayer.setMatchStatus(PlayerMatchStatusLost)
		g.botPlayer.setMatchStatus(PlayerMatchStatusWon)
	}
}
