package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type listDocumentsOptions struct {
	Page       int
	Limit      int
	CategoryID int64
	Status     string
}

type uploadOptions struct {
	File        string
	Title       string
	Description string
	CategoryID  int64
	Status      string
}

type verifyLinkOptions struct {
	Password string
	Use      bool
}

func runListDocuments(cmdCtx *commandContext, args []string) error {
	opts, err := parseListDocumentsFlags(args)
	if err != nil {
		return err
	}

	query := model.DocumentQuery{
		ListQuery: model.ListQuery{Page: opts.Page, Limit: opts.Limit},
		Status:    opts.Status,
	}
	if opts.CategoryID > 0 {
		query.CategoryID = &opts.CategoryID
	}

	docs, err := cmdCtx.App.Client.ListDocuments(cmdCtx.Ctx, query)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		writef(os.Stdout, "No documents found\n")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tSTATUS\tVIEWS\tDOWNLOADS")
	for _, doc := range docs {
		category := ""
		if doc.Category != nil {
			category = doc.Category.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\n",
			doc.ID, doc.Title, category, doc.Status, doc.ViewCount, doc.DownloadCount)
	}
	return tw.Flush()
}

func runShowDocument(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "document")
	if err != nil {
		return err
	}

	doc, err := cmdCtx.App.Client.GetDocument(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%d\n", doc.ID)
	fmt.Fprintf(tw, "Title\t%s\n", doc.Title)
	if doc.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", doc.Description)
	}
	if doc.Category != nil {
		fmt.Fprintf(tw, "Category\t%s\n", doc.Category.Name)
	}
	fmt.Fprintf(tw, "File\t%s (%d bytes)\n", doc.FileName, doc.FileSize)
	if doc.PageCount != nil {
		fmt.Fprintf(tw, "Pages\t%d\n", *doc.PageCount)
	}
	fmt.Fprintf(tw, "Status\t%s\n", doc.Status)
	fmt.Fprintf(tw, "Views\t%d\n", doc.ViewCount)
	fmt.Fprintf(tw, "Downloads\t%d\n", doc.DownloadCount)
	fmt.Fprintf(tw, "Created\t%s\n", doc.CreatedAt.Format("2006-01-02 15:04"))
	return tw.Flush()
}

func runListCategories(cmdCtx *commandContext, _ []string) error {
	categories, err := cmdCtx.App.Client.ListCategories(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		writef(os.Stdout, "No categories found\n")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSLUG\tACTIVE")
	for _, cat := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", cat.ID, cat.Name, cat.Slug, cat.IsActive)
	}
	return tw.Flush()
}

// runUpload uploads the file and registers it as a document in one step,
// mirroring the two-call upload-then-create contract.
func runUpload(cmdCtx *commandContext, args []string) error {
	opts, err := parseUploadFlags(args)
	if err != nil {
		return err
	}
	if opts.File == "" {
		return fmt.Errorf("missing required flag -file")
	}

	f, err := os.Open(opts.File)
	if err != nil {
		return fmt.Errorf("open %s: %w", opts.File, err)
	}
	defer f.Close()

	result, err := cmdCtx.App.Client.UploadFile(cmdCtx.Ctx, filepath.Base(opts.File), f)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = result.FileName
	}
	req := model.CreateDocumentRequest{
		Title:       title,
		Description: opts.Description,
		Status:      opts.Status,
		FilePath:    result.FilePath,
		FileName:    result.FileName,
		FileSize:    result.FileSize,
	}
	if opts.CategoryID > 0 {
		req.CategoryID = &opts.CategoryID
	}

	doc, err := cmdCtx.App.Client.CreateDocument(cmdCtx.Ctx, req)
	if err != nil {
		return err
	}

	writef(os.Stdout, "Document %d created: %s\n", doc.ID, doc.Title)
	return nil
}

func runDownload(cmdCtx *commandContext, args []string) error {
	id, err := requireID(args, "document")
	if err != nil {
		return err
	}

	link, err := cmdCtx.App.Client.DownloadDocument(cmdCtx.Ctx, id)
	if err != nil {
		return err
	}

	writef(os.Stdout, "%s\n", link.URL)
	return nil
}

func runVerifyLink(cmdCtx *commandContext, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("missing link token argument")
	}
	token := args[0]
	opts, err := parseVerifyLinkFlags(args[1:])
	if err != nil {
		return err
	}

	status, err := cmdCtx.App.Client.CheckDownloadToken(cmdCtx.Ctx, token)
	if err != nil {
		return err
	}
	if !status.Valid {
		return fmt.Errorf("link is no longer valid")
	}

	writef(os.Stdout, "Document: %s\n", status.DocumentTitle)
	writef(os.Stdout, "Expires: %s\n", status.ExpiresAt.Format("2006-01-02 15:04"))
	if !opts.Use {
		return nil
	}

	password := opts.Password
	if password == "" && status.RequiresPassword {
		password, err = promptPassword("Link password: ")
		if err != nil {
			return err
		}
	}

	link, err := cmdCtx.App.Client.UseDownloadToken(cmdCtx.Ctx, token, password)
	if err != nil {
		return err
	}

	writef(os.Stdout, "%s\n", link.URL)
	return nil
}

func parseListDocumentsFlags(args []string) (*listDocumentsOptions, error) {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	opts := &listDocumentsOptions{}
	fs.IntVar(&opts.Page, "page", 0, "page number (1-based)")
	fs.IntVar(&opts.Limit, "limit", 0, "page size")
	fs.Int64Var(&opts.CategoryID, "category", 0, "filter by category id")
	fs.StringVar(&opts.Status, "status", "", "filter by status")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseUploadFlags(args []string) (*uploadOptions, error) {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	opts := &uploadOptions{}
	fs.StringVar(&opts.File, "file", "", "path of the file to upload")
	fs.StringVar(&opts.Title, "title", "", "document title (file name when omitted)")
	fs.StringVar(&opts.Description, "description", "", "document description")
	fs.Int64Var(&opts.CategoryID, "category", 0, "category id")
	fs.StringVar(&opts.Status, "status", model.DocumentStatusDraft, "initial status")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

func parseVerifyLinkFlags(args []string) (*verifyLinkOptions, error) {
	fs := flag.NewFlagSet("verify-link", flag.ContinueOnError)
	opts := &verifyLinkOptions{}
	fs.StringVar(&opts.Password, "password", "", "link password (prompted when required and omitted)")
	fs.BoolVar(&opts.Use, "use", false, "consume the link and print the file URL")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// requireID parses the first positional argument as a numeric id.
func requireID(args []string, noun string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing %s id argument", noun)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", noun, args[0])
	}
	return id, nil
}
