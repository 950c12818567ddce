package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type settingsSetOptions struct {
	Key         string
	Value       string
	Description string
}

func runListSettings(cmdCtx *commandContext, _ []string) error {
	settings, err := cmdCtx.App.Client.ListSettings(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		writef(os.Stdout, "No settings found\n")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tDESCRIPTION")
	for _, setting := range settings {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", setting.Key, setting.Value, setting.Description)
	}
	return tw.Flush()
}

func runUpdateSetting(cmdCtx *commandContext, args []string) error {
	opts, err := parseSettingsSetFlags(args)
	if err != nil {
		return err
	}
	if opts.Key == "" {
		return fmt.Errorf("missing required flag -key")
	}

	update := model.SystemSettingUpdate{Key: opts.Key, Value: &opts.Value}
	if opts.Description != "" {
		update.Description = &opts.Description
	}

	settings, err := cmdCtx.App.Client.UpdateSettings(cmdCtx.Ctx, []model.SystemSettingUpdate{update})
	if err != nil {
		return err
	}

	for _, setting := range settings {
		if setting.Key == opts.Key {
			writef(os.Stdout, "Setting %s = %s\n", setting.Key, setting.Value)
			return nil
		}
	}
	writef(os.Stdout, "Setting %s updated\n", opts.Key)
	return nil
}

func parseSettingsSetFlags(args []string) (*settingsSetOptions, error) {
	fs := flag.NewFlagSet("settings-set", flag.ContinueOnError)
	opts := &settingsSetOptions{}
	fs.StringVar(&opts.Key, "key", "", "setting key")
	fs.StringVar(&opts.Value, "value", "", "setting value")
	fs.StringVar(&opts.Description, "description", "", "setting description")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}
