package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mvrba/battleship-engine/api"
	"github.com/mvrba/battleship-engine/db"
	"github.com/mvrba/battleship-engine/db/sqlc"
	mb "github.com/mvrba/battleship-engine/models/battleship"
	mc "github.com/mvrba/battleship-engine/models/connection"
)

func main() {
	if os.Getenv("STAGE") != "prod" {
		if err := godotenv.Load(".env"); err != nil {
			panic(err)
		}
	}
	stage := os.Getenv("STAGE")
	if stage != "dev" && stage != "prod" {
		panic("stage must be either dev or prod")
	}
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		panic(err)
	}

	// Analytics are optional; the engine runs fine without postgres
	var querier sqlc.Querier
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		querier = sqlc.New(db.MustConnectToDb(psqlUrl))
	}

	sessionManager := mc.NewBattleshipSessionManager()
	go sessionManager.CleanupPeriodically()

	gameManager := mb.NewBattleshipGameManager()

	rp := api.NewRequestProcessor(sessionManager, gameManager, querier)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship", rp)

	log.Printf("Listening to port %d\n", port)
	log.Fatalln(http.ListenAndServe("0.0.0.0:"+fmt.Sprintf("%d", port), mux))
}
