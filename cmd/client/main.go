package main

import (
	"context"

	"github.com/ooakt0/fyi-bolt-sub000/internal/client/cli"
	"github.com/ooakt0/fyi-bolt-sub000/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
