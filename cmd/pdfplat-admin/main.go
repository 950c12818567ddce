// Command pdfplat-admin is the PDF Platform operator console: dashboard
// stats, user and document management, secure share links, and platform
// settings. Every command runs behind the admin navigation gate.
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
	// route is the admin page the command corresponds to; the guard
	// enforces login and role before the command runs.
	route string
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
	if navErr := navigate(cmdCtx, cmd.route); navErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", navErr)
		os.Exit(1)
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		app.Logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}

func navigate(cmdCtx *commandContext, path string) error {
	decision := cmdCtx.App.Guard.Evaluate(cmdCtx.Ctx, path)
	switch decision.Action {
	case guard.Proceed:
		return nil
	case guard.RedirectLogin:
		return fmt.Errorf("not logged in (redirected to %s); run `pdfplat login` first", decision.Location)
	case guard.RedirectForbidden:
		return errors.New("access denied: this console requires an admin role")
	default:
		return fmt.Errorf("unexpected guard outcome %s", decision.Action)
	}
}

func commands() map[string]command {
	return map[string]command{
		"stats": {
			name:        "stats",
			description: "Show the dashboard summary",
			route:       "/admin/dashboard",
			run:         runStats,
		},
		"users": {
			name:        "users",
			description: "List user accounts",
			route:       "/admin/users",
			run:         runListUsers,
		},
		"user-update": {
			name:        "user-update",
			description: "Update a user account",
			route:       "/admin/users",
			run:         runUpdateUser,
		},
		"docs": {
			name:        "docs",
			description: "List documents across all statuses",
			route:       "/admin/documents",
			run:         runListDocuments,
		},
		"doc-update": {
			name:        "doc-update",
			description: "Update a document",
			route:       "/admin/documents",
			run:         runUpdateDocument,
		},
		"doc-delete": {
			name:        "doc-delete",
			description: "Delete a document",
			route:       "/admin/documents",
			run:         runDeleteDocument,
		},
		"doc-analyze": {
			name:        "doc-analyze",
			description: "Trigger AI analysis of a document",
			route:       "/admin/documents",
			run:         runAnalyzeDocument,
		},
		"share": {
			name:        "share",
			description: "Create a secure download link for a document",
			route:       "/admin/documents",
			run:         runShareDocument,
		},
		"category-create": {
			name:        "category-create",
			description: "Create a category",
			route:       "/admin/categories",
			run:         runCreateCategory,
		},
		"category-update": {
			name:        "category-update",
			description: "Update a category",
			route:       "/admin/categories",
			run:         runUpdateCategory,
		},
		"category-delete": {
			name:        "category-delete",
			description: "Delete a category",
			route:       "/admin/categories",
			run:         runDeleteCategory,
		},
		"settings": {
			name:        "settings",
			description: "List platform settings",
			route:       "/admin/settings",
			run:         runListSettings,
		},
		"settings-set": {
			name:        "settings-set",
			description: "Update a platform setting",
			route:       "/admin/settings",
			run:         runUpdateSetting,
		},
	}
}

func printUsage() {
	writef(os.Stdout, "Usage: pdfplat-admin <command> [flags]\n\n")
	writef(os.Stdout, "Available commands:\n")
	for _, name := range commandNames() {
		cmd := commands()[name]
		writef(os.Stdout, "  %-18s %s\n", cmd.name, cmd.description)
	}
}

func commandNames() []string {
	return []string{
		"stats",
		"users", "user-update",
		"docs", "doc-update", "doc-delete", "doc-analyze", "share",
		"category-create", "category-update", "category-delete",
		"settings", "settings-set",
	}
}

func writef(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
