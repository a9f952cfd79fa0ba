package error

import "fmt"

func ErrCoordsOutOfBound(x, y int) error {
	return fmt.Errorf("coordinates out of grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipPlacementImpossible(shipCode int) error {
	return fmt.Errorf("unable to place ship within attempt budget, ship code: %d", shipCode)
}

func ErrPositionAlreadyAttacked(x, y int) error {
	return fmt.Errorf("this position is already hit by the attacker in previous rounds\tx: %d\ty: %d", x, y)
}

func ErrInvalidGameDifficulty() error {
	return fmt.Errorf("difficulty must be one of easy, normal or hard")
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game with this uuid is nil, uuid: %s", gameUuid)
}

func ErrTargeterExhausted() error {
	return fmt.Errorf("no shots remain for the targeter")
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session with this id is nil, id: %s", sessionId)
}
