package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/vitalog/vitalog/internal/adapter"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `vitactl - administration client for a running vitalog server

Usage:
  vitactl [flags] <command> [command flags]

Commands:
  list-users                              list all accounts
  create-user -email E -password P -role R  provision an account
  set-role -id ID -role R                 change an account's role
  reset-password -id ID -password P       replace an account's password
  delete-user -id ID                      remove an account

Flags:
  -address   server address (default localhost:8080, env VITACTL_ADDRESS)
  -email     admin email used to log in (env VITACTL_EMAIL)
  -password  admin password used to log in (env VITACTL_PASSWORD)
  -timeout   request timeout (default 30s)
  -version   print build information and exit
`

func main() {
	var (
		address      = flag.String("address", envOr("VITACTL_ADDRESS", "localhost:8080"), "server address")
		adminEmail   = flag.String("email", os.Getenv("VITACTL_EMAIL"), "admin email")
		adminPass    = flag.String("password", os.Getenv("VITACTL_PASSWORD"), "admin password")
		timeout      = flag.Duration("timeout", 30*time.Second, "request timeout")
		printVersion = flag.Bool("version", false, "print build information and exit")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if *printVersion {
		printBuildInfo()
		return
	}

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewLogger("vitactl")

	client, err := adapter.NewAdminClient(*address, *timeout, log)
	if err != nil {
		fail("connect: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *adminEmail == "" || *adminPass == "" {
		fail("admin credentials are required (use -email/-password or VITACTL_EMAIL/VITACTL_PASSWORD)")
	}

	if err = client.Login(ctx, *adminEmail, *adminPass); err != nil {
		fail("login: %v", err)
	}
	defer func() {
		if err := client.Logout(context.Background()); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
	}()

	if err = runCommand(ctx, client, command, flag.Args()[1:]); err != nil {
		fail("%s: %v", command, err)
	}
}

func runCommand(ctx context.Context, client adapter.AdminClient, command string, args []string) error {
	switch command {
	case "list-users":
		return listUsers(ctx, client)
	case "create-user":
		return createUser(ctx, client, args)
	case "set-role":
		return setRole(ctx, client, args)
	case "reset-password":
		return resetPassword(ctx, client, args)
	case "delete-user":
		return deleteUser(ctx, client, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func listUsers(ctx context.Context, client adapter.AdminClient) error {
	users, err := client.ListUsers(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.UserID, u.Email, u.Role, u.CreatedAt.Format(time.RFC3339))
	}

	return w.Flush()
}

func createUser(ctx context.Context, client adapter.AdminClient, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", "", "email of the new account")
	password := fs.String("password", "", "initial password")
	role := fs.String("role", string(models.RoleUser), "role of the new account (user or admin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := client.CreateUser(ctx, *email, *password, models.Role(*role))
	if err != nil {
		return err
	}

	fmt.Printf("created user %s (%s)\n", created.UserID, created.Email)
	return nil
}

func setRole(ctx context.Context, client adapter.AdminClient, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ExitOnError)
	id := fs.String("id", "", "target user id")
	role := fs.String("role", "", "new role (user or admin)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.SetUserRole(ctx, *id, models.Role(*role)); err != nil {
		return err
	}

	fmt.Printf("user %s is now %s\n", *id, *role)
	return nil
}

func resetPassword(ctx context.Context, client adapter.AdminClient, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ExitOnError)
	id := fs.String("id", "", "target user id")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.ResetUserPassword(ctx, *id, *password); err != nil {
		return err
	}

	fmt.Printf("password reset for user %s, sessions revoked\n", *id)
	return nil
}

func deleteUser(ctx context.Context, client adapter.AdminClient, args []string) error {
	fs := flag.NewFlagSet("delete-user", flag.ExitOnError)
	id := fs.String("id", "", "target user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := client.DeleteUser(ctx, *id); err != nil {
		return err
	}

	fmt.Printf("deleted user %s\n", *id)
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
