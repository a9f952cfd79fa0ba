package battleship

import (
	"testing"
)

// Stamps a fixed fleet onto a fresh board, bypassing random placement.
func newStampedBoard(t *testing.T, rows, cols int, cells map[Coordinates]int) *Board {
	t.Helper()

	board := NewBoard(rows, cols, nil)
	for coords, shipCode := range cells {
		board.grid[coords.Y][coords.X] = shipCode
	}
	return board
}

func TestResolveShot(t *testing.T) {
	// Horizontal destroyer at (3,3)-(4,3)
	board := newStampedBoard(t, 10, 10, map[Coordinates]int{
		{X: 3, Y: 3}: ShipCodeDestroyer,
		{X: 4, Y: 3}: ShipCodeDestroyer,
	})
	player := newPlayer(true, board)
	player.syncShipCells()

	outcome, err := player.ResolveShot(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.IsHit {
		t.Fatal("expected a miss on water")
	}

	outcome, err = player.ResolveShot(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.IsHit || outcome.IsSunk {
		t.Fatalf("expected non-sinking hit\t got: %+v", outcome)
	}
	if outcome.ShipCode != ShipCodeDestroyer {
		t.Fatalf("expected ship code %d\t got: %d", ShipCodeDestroyer, outcome.ShipCode)
	}

	if _, err := player.ResolveShot(3, 3); err == nil {
		t.Fatal("expected error on repeated shot at a hit cell")
	}

	outcome, err = player.ResolveShot(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.IsSunk {
		t.Fatal("expected the second hit to sink the destroyer")
	}
	if len(outcome.SunkShipCoords) != 2 {
		t.Fatalf("expected 2 sunk coords\t got: %+v", outcome.SunkShipCoords)
	}

	if !player.IsDefeated() {
		t.Fatal("expected defeat with the whole fleet sunk")
	}
	if player.SunkenShips() != 1 {
		t.Fatalf("expected 1 sunken ship\t got: %d", player.SunkenShips())
	}
}

func TestResolveShotOutOfBounds(t *testing.T) {
	player := newPlayer(true, NewBoard(5, 5, nil))
	player.syncShipCells()

	if _, err := player.ResolveShot(5, 0); err == nil {
		t.Fatal("expected out of bounds error")
	}
	if _, err := player.ResolveShot(0, -1); err == nil {
		t.Fatal("expected out of bounds error")
	}
}

func TestResolveShotIsolatesAdjacentDiagonalShips(t *testing.T) {
	// Two single-cell ships of the same code placed diagonally;
	// flood fill must not merge them into one instance
	board := newStampedBoard(t, 6, 6, map[Coordinates]int{
		{X: 1, Y: 1}: 42,
		{X: 2, Y: 2}: 42,
	})
	player := newPlayer(true, board)
	player.syncShipCells()

	outcome, err := player.ResolveShot(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.IsSunk {
		t.Fatal("expected single-cell ship to sink on first hit")
	}
	if player.IsDefeated() {
		t.Fatal("second ship still afloat")
	}
}

func TestGameCreation(t *testing.T) {
	game, err := newGame(GameDifficultyNormal, "abc123")
	if err != nil {
		t.Fatal(err)
	}

	if game.GridSize() != GridSizeNormal {
		t.Fatalf("expected grid size %d\t got: %d", GridSizeNormal, game.GridSize())
	}

	census := shipCensusForDifficulty(GameDifficultyNormal)
	expectedCells := 0
	for shipCode, count := range census {
		expectedCells += count * ShipSize(shipCode)
	}

	if got := game.HostPlayer().Board().Stats().OccupiedSpaces; got != expectedCells {
		t.Fatalf("host fleet cells: expected %d\t got: %d", expectedCells, got)
	}
	if got := game.BotPlayer().Board().Stats().OccupiedSpaces; got != expectedCells {
		t.Fatalf("bot fleet cells: expected %d\t got: %d", expectedCells, got)
	}

	expectedSizes := SizeCensus(census)
	for size, count := range game.Targeter().RemainingShips() {
		if expectedSizes[size] != count {
			t.Fatalf("targeter census mismatch for size %d: expected %d\t got: %d", size, expectedSizes[size], count)
		}
	}
}

func TestPlayHostTurnFinishesGame(t *testing.T) {
	game, err := newGame(GameDifficultyEasy, "abc123")
	if err != nil {
		t.Fatal(err)
	}

	// Sink the whole bot fleet from the known grid
	grid := game.BotPlayer().Board().Grid()
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == PositionStateWater {
				continue
			}
			if _, err := game.PlayHostTurn(x, y); err != nil {
				t.Fatal(err)
			}
		}
	}

	if !game.IsFinished() {
		t.Fatal("expected game to finish once the bot fleet is sunk")
	}
	if game.HostPlayer().MatchStatus() != PlayerMatchStatusWon {
		t.Fatal("expected host to win")
	}
	if game.BotPlayer().MatchStatus() != PlayerMatchStatusLost {
		t.Fatal("expected bot to lose")
	}
}

// The bot must always defeat a full fleet before running out of
// shots: ship cells are only excluded from the search space by
// being fired at, never by perimeter marking.
func TestBotPlayoutDefeatsHost(t *testing.T) {
	game, err := newGame(GameDifficultyHard, "abc123")
	if err != nil {
		t.Fatal(err)
	}

	maxShots := game.GridSize() * game.GridSize()
	for i := 0; i < maxShots; i++ {
		if game.IsFinished() {
			break
		}
		if _, err := game.PlayBotTurn(); err != nil {
			t.Fatal(err)
		}
		assertShotExclusivity(t, game.Targeter())
	}

	if !game.IsFinished() {
		t.Fatalf("bot failed to defeat the host within %d shots", maxShots)
	}
	if !game.HostPlayer().IsDefeated() {
		t.Fatal("expected host fleet fully sunk")
	}
	if game.HostPlayer().MatchStatus() != PlayerMatchStatusLost {
		t.Fatal("expected host to lose")
	}
	if game.Targeter().ShotsFired() > maxShots {
		t.Fatalf("targeter fired more shots than grid cells: %d", game.Targeter().ShotsFired())
	}
}

func TestGameManager(t *testing.T) {
	manager := NewBattleshipGameManager()

	if _, err := manager.CreateGame(99); err == nil {
		t.Fatal("expected invalid difficulty error")
	}

	game, err := manager.CreateGame(GameDifficultyEasy)
	if err != nil {
		t.Fatal(err)
	}

	found, err := manager.GetGame(game.Uuid())
	if err != nil {
		t.Fatal(err)
	}
	if found != game {
		t.Fatal("expected the same game instance")
	}

	manager.TerminateGame(game.Uuid())
	if _, err := manager.GetGame(game.Uuid()); err == nil {
		t.Fatal("expected error after termination")
	}
}
