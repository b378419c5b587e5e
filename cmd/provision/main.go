package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/payledger/internal/app"
	"github.com/dmitrijs2005/payledger/internal/config"
	"github.com/dmitrijs2005/payledger/internal/flagx"
)

// configFlags take a value and may precede the subcommand.
var configFlags = []string{"-c", "-config", "-k", "-d", "-m", "-l", "-o", "-f", "-s", "-u", "-p", "-b", "-g", "-e"}

func main() {

	cmd, args := flagx.Subcommand(os.Args[1:], configFlags)
	if cmd == "" {
		fmt.Fprintln(os.Stderr, app.ProvisionUsage)
		os.Exit(2)
	}

	ctx := context.Background()
	cfg := config.LoadConfig()
	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = app.Provision(ctx, a.Provisioner(), cmd, args, os.Stdout)
	a.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

}
