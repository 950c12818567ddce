package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type loginOptions struct {
	Username string
	Password string
}

type registerOptions struct {
	Email    string
	Username string
	Password string
}

func runLogin(cmdCtx *commandContext, args []string) error {
	opts, err := parseLoginFlags(args)
	if err != nil {
		return err
	}
	if opts.Username == "" {
		return fmt.Errorf("missing required flag -username")
	}
	if opts.Password == "" {
		opts.Password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	if loginErr := cmdCtx.App.Session.Login(cmdCtx.Ctx, model.Credentials{
		Username: opts.Username,
		Password: opts.Password,
	}); loginErr != nil {
		return loginErr
	}
	if _, profileErr := cmdCtx.App.Session.FetchProfile(cmdCtx.Ctx); profileErr != nil {
		return profileErr
	}

	writef(os.Stdout, "Logged in as %s\n", cmdCtx.App.Session.Name())
	return nil
}

func runLogout(cmdCtx *commandContext, _ []string) error {
	cmdCtx.App.Session.Logout()
	writef(os.Stdout, "Logged out\n")
	return nil
}

func runRegister(cmdCtx *commandContext, args []string) error {
	opts, err := parseRegisterFlags(args)
	if err != nil {
		return err
	}
	if opts.Email == "" || opts.Username == "" {
		return fmt.Errorf("missing required flags -email and -username")
	}
	if opts.Password == "" {
		opts.Password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	user, err := cmdCtx.App.Client.Register(cmdCtx.Ctx, model.RegisterRequest{
		Email:    opts.Email,
		Username: opts.Username,
		Password: opts.Password,
	})
	if err != nil {
		return err
	}

	writef(os.Stdout, "Account %s created; run `pdfplat login` to sign in\n", user.Username)
	return nil
}

func runWhoami(cmdCtx *commandContext, _ []string) error {
	if !cmdCtx.App.Session.Authenticated() {
		writef(os.Stdout, "Not logged in\n")
		return nil
	}

	user, err := cmdCtx.App.Session.FetchProfile(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", user.ID)
	fmt.Fprintf(tw, "Username\t%s\n", user.Username)
	fmt.Fprintf(tw, "Email\t%s\n", user.Email)
	fmt.Fprintf(tw, "Role\t%s\n", user.Role)
	fmt.Fprintf(tw, "Status\t%s\n", user.Status)
	return tw.Flush()
}

func parseLoginFlags(args []string) (*loginOptions, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	opts := &loginOptions{}
	fs.StringVar(&opts.Username, "username", "", "account username")
	fs.StringVar(&opts.Password, "password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseRegisterFlags(args []string) (*registerOptions, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	opts := &registerOptions{}
	fs.StringVar(&opts.Email, "email", "", "account email")
	fs.StringVar(&opts.Username, "username", "", "account username")
	fs.StringVar(&opts.Password, "password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// promptPassword reads a password without echo when stdin is a terminal and
// falls back to a plain line read otherwise, so piped input keeps working.
func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
