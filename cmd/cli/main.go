package main

import (
	"context"
	"log"

	"github.com/bemgestar/bemgestar/internal/client/cli"
	"github.com/bemgestar/bemgestar/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(context.Background())
}
