package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/payledger/internal/cli"
	"github.com/dmitrijs2005/payledger/internal/models"
)

// Provisioner creates users and categories out of band.
type Provisioner interface {
	CreateUser(ctx context.Context, fullName, login, password, pin string) (*models.User, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
}

// getPassword prompts on stdin when -password is omitted.
var (
	getPassword           = cli.GetPassword
	stdin       io.Reader = os.Stdin
)

var ErrUnknownSubcommand = errors.New("unknown subcommand")

const ProvisionUsage = `usage:
  provision [config flags] user -name <full name> -login <login> [-password <password>] -pin <1000..9999>
  provision [config flags] category -name <name>`

// Provision runs one provisioning subcommand: "user" or "category".
func Provision(ctx context.Context, p Provisioner, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "user":
		fs := flag.NewFlagSet("user", flag.ContinueOnError)
		fs.SetOutput(out)
		name := fs.String("name", "", "full name")
		login := fs.String("login", "", "login")
		password := fs.String("password", "", "password (prompted when empty)")
		pin := fs.String("pin", "", "PIN, 1000..9999")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if *password == "" {
			pw, err := getPassword(bufio.NewReader(stdin), out)
			if err != nil {
				return err
			}
			*password = string(pw)
		}

		u, err := p.CreateUser(ctx, *name, *login, *password, *pin)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created user %d: %s\n", u.ID, u.Label())
		return nil

	case "category":
		fs := flag.NewFlagSet("category", flag.ContinueOnError)
		fs.SetOutput(out)
		name := fs.String("name", "", "category name")
		if err := fs.Parse(args); err != nil {
			return err
		}

		c, err := p.CreateCategory(ctx, *name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Created category %d: %s\n", c.ID, c.Name)
		return nil

	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownSubcommand, cmd, ProvisionUsage)
	}
}
