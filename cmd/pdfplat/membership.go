package main

import (
	"fmt"
	"os"
	"text/tabwriter"
)

func runMembership(cmdCtx *commandContext, _ []string) error {
	membership, err := cmdCtx.App.Client.MyMembership(cmdCtx.Ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Type\t%s\n", membership.Type)
	fmt.Fprintf(tw, "Quota\t%d\n", membership.DownloadQuota)
	fmt.Fprintf(tw, "Used\t%d\n", membership.DownloadUsed)
	fmt.Fprintf(tw, "Remaining\t%d\n", membership.Remaining())
	if membership.ExpiresAt != nil {
		fmt.Fprintf(tw, "Expires\t%s\n", membership.ExpiresAt.Format("2006-01-02"))
	}
	return tw.Flush()
}

func runRedeem(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("missing membership code argument")
	}

	membership, err := cmdCtx.App.Client.RedeemCode(cmdCtx.Ctx, args[0])
	if err != nil {
		return err
	}

	writef(os.Stdout, "Code redeemed: %s membership, %d downloads remaining\n",
		membership.Type, membership.Remaining())
	return nil
}
