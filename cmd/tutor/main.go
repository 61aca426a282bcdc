package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/codetutor/internal/cli"
	"github.com/dmitrijs2005/codetutor/internal/config"
	"github.com/dmitrijs2005/codetutor/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
