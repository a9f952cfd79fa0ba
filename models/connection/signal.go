package connection

const (
	CodeSessionID uint8 = iota
	CodeReceivedInvalidSessionID
	CodeCreateGame

	// Host asks for their fleet grid after creation
	CodePlaceFleet

	// Host fires at the bot board; the bot's counter-shot rides
	// in the same response
	CodeAttack

	CodeEndGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)

type Signal struct {
	Code uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: code}
}
