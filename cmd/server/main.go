package main

import (
	"context"
	"log"

	"github.com/duongnt/taskchat/internal/server"
	"github.com/duongnt/taskchat/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
