// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Web-Plus-Academy/lms-admin/internal/api"
	"github.com/Web-Plus-Academy/lms-admin/internal/config"
	"github.com/Web-Plus-Academy/lms-admin/internal/session"
)

// Version is stamped at build time.
var Version = "dev"

// Deps is what the command handlers need from the bootstrapped app.
type Deps struct {
	Config *config.Config
	API    *api.Client
	Guard  *session.Guard
}

// Handled is returned by Run when the arguments named a subcommand and
// the process should exit instead of opening the console.
type Handled struct{ Code int }

// Run dispatches a recognized subcommand. ok=false means no subcommand
// matched and the caller should start the interactive console.
func Run(args []string, deps Deps) (Handled, bool) {
	p := NewArgParser(args)
	switch p.Subcommand() {
	case "version", "--version":
		fmt.Printf("lms-admin %s\n", Version)
		return Handled{}, true

	case "login":
		return runLogin(p, deps), true

	case "logout":
		return runLogout(deps), true

	case "config":
		return runConfig(p, deps), true

	case "help", "--help":
		printUsage()
		return Handled{}, true
	}
	return Handled{}, false
}

func printUsage() {
	fmt.Print(`lms-admin - Web Plus Academy admin console

Usage:
  lms-admin                start the interactive console
  lms-admin login          sign in without opening the console
  lms-admin logout         destroy the stored session
  lms-admin config show    print the effective configuration
  lms-admin config path    print the config file location
  lms-admin version        print the version
`)
}

// =============================================================================
// LOGIN / LOGOUT
// =============================================================================

// runLogin signs in headlessly: user ID from the flag or a prompt, the
// password always from a no-echo prompt.
func runLogin(p *ArgParser, deps Deps) Handled {
	userID := p.Flag("user")
	reader := bufio.NewReader(os.Stdin)
	if userID == "" {
		fmt.Print("User ID: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "read user id: %v\n", err)
			return Handled{Code: 1}
		}
		userID = strings.TrimSpace(line)
	}
	if userID == "" {
		fmt.Fprintln(os.Stderr, "a user id is required")
		return Handled{Code: 1}
	}

	fmt.Print("Password: ")
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read password: %v\n", err)
		return Handled{Code: 1}
	}

	ctx, cancel := context.WithTimeout(context.Background(), deps.Config.ServerTimeout())
	defer cancel()

	res, err := deps.API.Login(ctx, api.Credentials{UserID: userID, Password: string(secret)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sign-in failed: %v\n", err)
		return Handled{Code: 1}
	}
	if err := deps.Guard.Establish(userID, res.Token); err != nil {
		fmt.Fprintf(os.Stderr, "store session: %v\n", err)
		return Handled{Code: 1}
	}
	fmt.Printf("Signed in as %s. The session is valid for %s.\n",
		userID, deps.Guard.Lifetime())
	return Handled{}
}

func runLogout(deps Deps) Handled {
	if err := deps.Guard.Logout(); err != nil {
		fmt.Fprintf(os.Stderr, "sign-out failed: %v\n", err)
		return Handled{Code: 1}
	}
	fmt.Println("Signed out.")
	return Handled{}
}

// =============================================================================
// CONFIG
// =============================================================================

func runConfig(p *ArgParser, deps Deps) Handled {
	sub := ""
	if rest := p.Positional(); len(rest) > 0 {
		sub = rest[0]
	}
	switch sub {
	case "", "show":
		c := deps.Config
		fmt.Printf("server.base_url         = %s\n", c.Server.BaseURL)
		fmt.Printf("server.timeout_secs     = %d\n", c.Server.TimeoutSecs)
		fmt.Printf("server.requests_per_sec = %g\n", c.Server.RequestsPerSec)
		fmt.Printf("session.lifetime_hours  = %d\n", c.Session.LifetimeHours)
		fmt.Printf("storage.data_dir        = %s\n", c.Storage.DataDir)
		fmt.Printf("ui.theme                = %s\n", c.UI.Theme)
		return Handled{}
	case "path":
		path, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config path: %v\n", err)
			return Handled{Code: 1}
		}
		fmt.Println(path)
		return Handled{}
	default:
		fmt.Fprintf(os.Stderr, "unknown config subcommand %q\n", sub)
		return Handled{Code: 1}
	}
}
