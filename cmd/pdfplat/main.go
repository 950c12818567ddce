// Command pdfplat is the PDF Platform terminal client: browse and download
// documents, upload new ones, and manage the membership of the logged-in
// account.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdfplatform/pdfplat-go/internal/bootstrap"
	"github.com/pdfplatform/pdfplat-go/internal/guard"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	// route is the client route the command navigates to; the guard decides
	// whether the navigation may proceed before the command runs.
	route func(args []string) string
	run   commandFn
}

type commandContext struct {
	Ctx context.Context
	App *bootstrap.App
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmdName)
		printUsage()
		os.Exit(2)
	}

	app, err := bootstrap.NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}

	cmdCtx := &commandContext{
		Ctx: context.Background(),
		App: app,
	}
	if runErr := dispatch(cmdCtx, cmd, os.Args[2:]); runErr != nil {
		app.Logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}

// dispatch runs the guard for the command's route and then the command
// itself. A redirect outcome becomes a user-facing error instead of a page
// change.
func dispatch(cmdCtx *commandContext, cmd command, args []string) error {
	if cmd.route != nil {
		if err := navigate(cmdCtx, cmd.route(args)); err != nil {
			return err
		}
	}
	return cmd.run(cmdCtx, args)
}

func navigate(cmdCtx *commandContext, path string) error {
	decision := cmdCtx.App.Guard.Evaluate(cmdCtx.Ctx, path)
	switch decision.Action {
	case guard.Proceed:
		return nil
	case guard.RedirectLogin:
		return fmt.Errorf("not logged in (redirected to %s); run `pdfplat login` first", decision.Location)
	case guard.RedirectForbidden:
		return errors.New("access denied: this area requires an admin role")
	case guard.RedirectDefault:
		return errors.New("already logged in; run `pdfplat logout` first")
	default:
		return fmt.Errorf("unexpected guard outcome %s", decision.Action)
	}
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Log in and store the session token",
			route:       staticRoute(guard.LoginPath),
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Clear the session token",
			run:         runLogout,
		},
		"register": {
			name:        "register",
			description: "Create a new account",
			route:       staticRoute(guard.LoginPath),
			run:         runRegister,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the logged-in user",
			route:       staticRoute("/"),
			run:         runWhoami,
		},
		"docs": {
			name:        "docs",
			description: "List documents",
			route:       staticRoute("/"),
			run:         runListDocuments,
		},
		"doc": {
			name:        "doc",
			description: "Show one document",
			route:       argRoute("/document/%s"),
			run:         runShowDocument,
		},
		"categories": {
			name:        "categories",
			description: "List categories",
			route:       staticRoute("/"),
			run:         runListCategories,
		},
		"upload": {
			name:        "upload",
			description: "Upload a file and register it as a document",
			route:       staticRoute("/"),
			run:         runUpload,
		},
		"download": {
			name:        "download",
			description: "Request a download link for a document",
			route:       argRoute("/document/%s"),
			run:         runDownload,
		},
		"verify-link": {
			name:        "verify-link",
			description: "Check and use a secure download link",
			route:       argRoute("/download-verify/%s"),
			run:         runVerifyLink,
		},
		"membership": {
			name:        "membership",
			description: "Show membership and download quota",
			route:       staticRoute("/membership"),
			run:         runMembership,
		},
		"redeem": {
			name:        "redeem",
			description: "Redeem a membership code",
			route:       staticRoute("/membership"),
			run:         runRedeem,
		},
	}
}

func staticRoute(path string) func([]string) string {
	return func([]string) string { return path }
}

// argRoute interpolates the first positional argument into the route, so
// `pdfplat doc 42` navigates to /document/42.
func argRoute(pattern string) func([]string) string {
	return func(args []string) string {
		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		return fmt.Sprintf(pattern, arg)
	}
}

func printUsage() {
	writef(os.Stdout, "Usage: pdfplat <command> [flags]\n\n")
	writef(os.Stdout, "Available commands:\n")
	for _, name := range commandNames() {
		cmd := commands()[name]
		writef(os.Stdout, "  %-14s %s\n", cmd.name, cmd.description)
	}
}

func commandNames() []string {
	return []string{
		"login", "logout", "register", "whoami",
		"docs", "doc", "categories", "upload", "download", "verify-link",
		"membership", "redeem",
	}
}

func writef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
