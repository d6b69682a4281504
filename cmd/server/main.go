package main

import (
	"context"
	"log"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server"
	"github.com/ooakt0/fyi-bolt-sub000/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app.Run(context.Background())
}
