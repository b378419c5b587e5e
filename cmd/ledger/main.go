package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/payledger/internal/app"
	"github.com/dmitrijs2005/payledger/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	if err := a.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Printf("%v", err)
	}

}
