package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type listDocumentsOptions struct {
	Page  int
	Limit int
}

type updateDocumentOptions struct {
	Title       string
	Description string
	CategoryID  int64
	Status      string
}

type shareOptions struct {
	Password     string
	ExpiresIn    int
	MaxDownloads int
}

func runListDocuments(cmdCtx *commandContext, args []string) error {
	opts, err := parseListDocumentsFlags(args)
	if err != nil {
		return err
	}

	docs, err := cmdCtx.App.Client.ListAdminDocuments(cmdCtx.Ctx, model.ListQuery{
		Page:  opts.Page,
		Limit: opts.Limit,
	})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		writef(os.Stdout, "No documents found\n")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tOWNER\tVIEWS\tDOWNLOADS")
	for _, doc := range docs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\n",
			doc.ID, doc.Title, doc.Status, doc.CreatedBy, doc.ViewCount, doc.DownloadCount)
	}
	return tw.Flush()
}

func runUpdateDocument(cmdCtx *commandContext, args []string) error {
	id, rest, err := splitID(args, "document")
	if err != nil {
		return err
	}
	opts, err := parseUpdateDocumentFlags(rest)
	if err != nil {
		return err
	}

	req := model.UpdateDocumentRequest{}
	changed := false
	if opts.Title != "" {
		req.Title = &opts.Title
		changed = true
	}
	if opts.Description != "" {
		req.Description = &opts.Description
		changed = true
	}
	if opts.CategoryID > 0 {
		req.CategoryID = &opts.CategoryID
		changed = true
	}
	if opts.Status != "" {
		req.Status = &opts.Status
		changed = true
	}
	if !changed {
		return fmt.Errorf("nothing to update; pass at least one field flag")
	}

	doc, err := cmdCtx.App.Client.UpdateAdminDocument(cmdCtx.Ctx, id, req)
	if err != nil {
		return err
	}

	writef(os.Stdout, "Document %d updated: %s status=%s\n", doc.ID, doc.Title, doc.Status)
	return nil
}

func runDeleteDocument(cmdCtx *commandContext, args []string) error {
	id, _, err := splitID(args, "document")
	if err != nil {
		return err
	}

	doc, err := cmdCtx.App.Client.DeleteAdminDocument(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	writef(os.Stdout, "Document %d deleted: %s\n", doc.ID, doc.Title)
	return nil
}

func runAnalyzeDocument(cmdCtx *commandContext, args []string) error {
	id, _, err := splitID(args, "document")
	if err != nil {
		return err
	}

	doc, err := cmdCtx.App.Client.AnalyzeDocument(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	writef(os.Stdout, "Analysis queued for document %d: %s\n", doc.ID, doc.Title)
	return nil
}

func runShareDocument(cmdCtx *commandContext, args []string) error {
	id, rest, err := splitID(args, "document")
	if err != nil {
		return err
	}
	opts, err := parseShareFlags(rest)
	if err != nil {
		return err
	}

	link, err := cmdCtx.App.Client.ShareDocument(cmdCtx.Ctx, id, model.ShareRequest{
		Password:         opts.Password,
		ExpiresInMinutes: opts.ExpiresIn,
		MaxDownloads:     opts.MaxDownloads,
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "URL\t%s\n", link.URL)
	if link.Password != "" {
		fmt.Fprintf(tw, "Password\t%s\n", link.Password)
	}
	fmt.Fprintf(tw, "Expires\t%s\n", link.ExpiresAt.Format("2006-01-02 15:04"))
	return tw.Flush()
}

func parseListDocumentsFlags(args []string) (*listDocumentsOptions, error) {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	opts := &listDocumentsOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number (1-based)")
	fs.IntVar(&opts.Limit, "limit", 0, "page size")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseUpdateDocumentFlags(args []string) (*updateDocumentOptions, error) {
	fs := flag.NewFlagSet("doc-update", flag.ContinueOnError)
	opts := &updateDocumentOptions{}
	fs.StringVar(&opts.Title, "title", "", "new title")
	fs.StringVar(&opts.Description, "description", "", "new description")
	fs.Int64Var(&opts.CategoryID, "category", 0, "new category id")
	fs.StringVar(&opts.Status, "status", "", "new status (draft, published, archived)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseShareFlags(args []string) (*shareOptions, error) {
	fs := flag.NewFlagSet("share", flag.ContinueOnError)
	opts := &shareOptions{}
	fs.StringVar(&opts.Password, "password", "", "link password (server-generated when omitted)")
	fs.IntVar(&opts.ExpiresIn, "expires", 60, "link lifetime in minutes")
	fs.IntVar(&opts.MaxDownloads, "max-downloads", 1, "download allowance for the link")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}
