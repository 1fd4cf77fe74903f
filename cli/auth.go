package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and persist the session" }
func (*loginCmd) Usage() string {
	return `pantry login -email <email> -password <password>

  Logs in against the backend and stores the session so later commands
  are authenticated. The seeded demo account is demo@example.com with
  any password.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "account email (required)")
	f.StringVar(&c.password, "password", "", "account password (required)")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !e.auth.Login(models.LoginCredentials{Email: c.email, Password: c.password}) {
		fmt.Fprintln(os.Stderr, "Error:", e.auth.Err())
		return subcommands.ExitFailure
	}

	user := e.auth.User()
	fmt.Printf("logged in as %s <%s>\n", user.Username, user.Email)
	return subcommands.ExitSuccess
}

type registerCmd struct {
	username string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and persist the session" }
func (*registerCmd) Usage() string {
	return `pantry register -username <name> -email <email> -password <password>

  Registers a new account and stores the session.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "display name (required)")
	f.StringVar(&c.email, "email", "", "account email (required)")
	f.StringVar(&c.password, "password", "", "account password (required)")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	data := models.RegisterData{Username: c.username, Email: c.email, Password: c.password}
	if !e.auth.Register(data) {
		fmt.Fprintln(os.Stderr, "Error:", e.auth.Err())
		return subcommands.ExitFailure
	}

	user := e.auth.User()
	fmt.Printf("registered %s <%s>\n", user.Username, user.Email)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "clear the persisted session" }
func (*logoutCmd) Usage() string            { return "pantry logout\n" }
func (*logoutCmd) SetFlags(_ *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	e.auth.Logout()
	fmt.Println("logged out")
	return subcommands.ExitSuccess
}

type whoamiCmd struct{}

func (*whoamiCmd) Name() string             { return "whoami" }
func (*whoamiCmd) Synopsis() string         { return "show the restored session" }
func (*whoamiCmd) Usage() string            { return "pantry whoami\n" }
func (*whoamiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *whoamiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !e.auth.IsAuthenticated() {
		fmt.Println("not logged in")
		return subcommands.ExitSuccess
	}
	if user := e.auth.User(); user != nil {
		fmt.Printf("%s <%s>\n", user.Username, user.Email)
	} else {
		// Token survived but the stored user blob was corrupt.
		fmt.Println("logged in (user details unavailable)")
	}
	return subcommands.ExitSuccess
}
