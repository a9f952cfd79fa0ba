package connection

type ReqCreateGame struct {
	GameDifficulty int `json:"game_difficulty"`
}

type ReqAttack struct {
	GameUuid string `json:"game_uuid"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}
