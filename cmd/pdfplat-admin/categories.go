package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pdfplatform/pdfplat-go/internal/domain/model"
)

type categoryOptions struct {
	Name        string
	Slug        string
	Description string
	ParentID    int64
	Icon        string
	SortOrder   int
	Inactive    bool
}

func runCreateCategory(cmdCtx *commandContext, args []string) error {
	opts, err := parseCategoryFlags("category-create", args)
	if err != nil {
		return err
	}
	if opts.Name == "" || opts.Slug == "" {
		return fmt.Errorf("missing required flags -name and -slug")
	}

	category, err := cmdCtx.App.Client.CreateCategory(cmdCtx.Ctx, categoryRequest(opts))
	if err != nil {
		return err
	}

	writef(os.Stdout, "Category %d created: %s\n", category.ID, category.Name)
	return nil
}

func runUpdateCategory(cmdCtx *commandContext, args []string) error {
	id, rest, err := splitID(args, "category")
	if err != nil {
		return err
	}
	opts, err := parseCategoryFlags("category-update", rest)
	if err != nil {
		return err
	}
	if opts.Name == "" || opts.Slug == "" {
		return fmt.Errorf("missing required flags -name and -slug")
	}

	category, err := cmdCtx.App.Client.UpdateCategory(cmdCtx.Ctx, id, categoryRequest(opts))
	if err != nil {
		return err
	}

	writef(os.Stdout, "Category %d updated: %s\n", category.ID, category.Name)
	return nil
}

func runDeleteCategory(cmdCtx *commandContext, args []string) error {
	id, _, err := splitID(args, "category")
	if err != nil {
		return err
	}

	if deleteErr := cmdCtx.App.Client.DeleteCategory(cmdCtx.Ctx, id); deleteErr != nil {
		return deleteErr
	}

	writef(os.Stdout, "Category %d deleted\n", id)
	return nil
}

func categoryRequest(opts *categoryOptions) model.CategoryRequest {
	req := model.CategoryRequest{
		Name:        opts.Name,
		Slug:        opts.Slug,
		Description: opts.Description,
		Icon:        opts.Icon,
		SortOrder:   opts.SortOrder,
		IsActive:    !opts.Inactive,
	}
	if opts.ParentID > 0 {
		req.ParentID = &opts.ParentID
	}
	return req
}

func parseCategoryFlags(name string, args []string) (*categoryOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := &categoryOptions{}
	fs.StringVar(&opts.Name, "name", "", "category name")
	fs.StringVar(&opts.Slug, "slug", "", "URL slug")
	fs.StringVar(&opts.Description, "description", "", "category description")
	fs.Int64Var(&opts.ParentID, "parent", 0, "parent category id")
	fs.StringVar(&opts.Icon, "icon", "", "icon name")
	fs.IntVar(&opts.SortOrder, "sort", 0, "sort order")
	fs.BoolVar(&opts.Inactive, "inactive", false, "create the category as inactive")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}
