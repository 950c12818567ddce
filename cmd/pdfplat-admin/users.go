package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pdfplatform/pdfplat-go/internal/domain/auth"
	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type listUsersOptions struct {
	Page  int
	Limit int
}

type updateUserOptions struct {
	Email    string
	Username string
	Password string
	Role     string
	Status   string
	Active   string
}

func runStats(cmdCtx *commandContext, _ []string) error {
	stats, err := cmdCtx.App.Client.DashboardStats(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Users\t%d\n", stats.UserCount)
	fmt.Fprintf(tw, "Documents\t%d\n", stats.DocumentCount)
	fmt.Fprintf(tw, "Downloads\t%d\n", stats.DownloadCount)
	fmt.Fprintf(tw, "Revenue\t%.2f\n", stats.Revenue)
	return tw.Flush()
}

func runListUsers(cmdCtx *commandContext, args []string) error {
	opts, err := parseListUsersFlags(args)
	if err != nil {
		return err
	}

	users, err := cmdCtx.App.Client.ListUsers(cmdCtx.Ctx, model.ListQuery{
		Page:  opts.Page,
		Limit: opts.Limit,
	})
	if err != nil {
		return err
	}
	if len(users) == 0 {
		writef(os.Stdout, "No users found\n")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS\tACTIVE")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\n",
			user.ID, user.Username, user.Email, user.Role, user.Status, user.IsActive)
	}
	return tw.Flush()
}

// runUpdateUser sends only the flags that were provided, so a role change
// does not clobber the rest of the account.
func runUpdateUser(cmdCtx *commandContext, args []string) error {
	id, rest, err := splitID(args, "user")
	if err != nil {
		return err
	}
	opts, err := parseUpdateUserFlags(rest)
	if err != nil {
		return err
	}

	req := model.UpdateUserRequest{}
	changed := false
	if opts.Email != "" {
		req.Email = &opts.Email
		changed = true
	}
	if opts.Username != "" {
		req.Username = &opts.Username
		changed = true
	}
	if opts.Password != "" {
		req.Password = &opts.Password
		changed = true
	}
	if opts.Role != "" {
		role := auth.Role(opts.Role)
		req.Role = &role
		changed = true
	}
	if opts.Status != "" {
		req.Status = &opts.Status
		changed = true
	}
	if opts.Active != "" {
		active, parseErr := strconv.ParseBool(opts.Active)
		if parseErr != nil {
			return fmt.Errorf("invalid -active value %q", opts.Active)
		}
		req.IsActive = &active
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	user, err := cmdCtx.App.Client.UpdateUser(cmdCtx.Ctx, id, req)
	if err != nil {
		return err
	}

	writef(os.Stdout, "User %d updated: %s role=%s status=%s\n",
		user.ID, user.Username, user.Role, user.Status)
	return nil
}

func parseListUsersFlags(args []string) (*listUsersOptions, error) {
	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	opts := &listUsersOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number (1-based)")
	fs.IntVar(&opts.Limit, "limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseUpdateUserFlags(args []string) (*updateUserOptions, error) {
	fs := flag.NewFlagSet("user-update", flag.ContinueOnError)
	opts := &updateUserOptions{}
	fs.StringVar(&opts.Email, "email", "", "new email")
	fs.StringVar(&opts.Username, "username", "", "new username")
	fs.StringVar(&opts.Password, "password", "", "new password")
	fs.StringVar(&opts.Role, "role", "", "new role (user, vip, admin, super_admin)")
	fs.StringVar(&opts.Status, "status", "", "new status (active, inactive, banned)")
	fs.StringVar(&opts.Active, "active", "", "set active flag (true or false)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// splitID peels the leading positional id off the argument list so commands
// read as `pdfplat-admin user-update 7 -role vip`.
func splitID(args []string, noun string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("missing %s id argument", noun)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("invalid %s id %q", noun, args[0])
	}
	return id, args[1:], nil
}
