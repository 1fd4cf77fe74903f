package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string             { return "categories" }
func (*categoriesCmd) Synopsis() string         { return "list categories" }
func (*categoriesCmd) Usage() string            { return "pantry categories\n" }
func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !e.categories.FetchCategories() {
		fmt.Fprintln(os.Stderr, "Error:", e.categories.Err())
		return subcommands.ExitFailure
	}
	for _, category := range e.categories.Categories() {
		fmt.Printf("#%d  %s\n", category.ID, category.Name)
	}
	return subcommands.ExitSuccess
}

type addCategoryCmd struct {
	name string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "create a category" }
func (*addCategoryCmd) Usage() string {
	return `pantry add-category -name <name>
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "category name (required)")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required")
		return subcommands.ExitUsageError
	}

	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := requireAuth(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	category := e.categories.AddCategory(c.name)
	if category == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.categories.Err())
		return subcommands.ExitFailure
	}
	fmt.Printf("created category #%d\n", category.ID)
	return subcommands.ExitSuccess
}

type updateCategoryCmd struct {
	id   int
	name string
}

func (*updateCategoryCmd) Name() string     { return "update-category" }
func (*updateCategoryCmd) Synopsis() string { return "rename a category" }
func (*updateCategoryCmd) Usage() string {
	return `pantry update-category -id <id> -name <name>
`
}

func (c *updateCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "category id (required)")
	f.StringVar(&c.name, "name", "", "new category name (required)")
}

func (c *updateCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 || c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -id and -name are required")
		return subcommands.ExitUsageError
	}

	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := requireAuth(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	category := e.categories.UpdateCategory(c.id, c.name)
	if category == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.categories.Err())
		return subcommands.ExitFailure
	}
	fmt.Printf("renamed category #%d to %s\n", category.ID, category.Name)
	return subcommands.ExitSuccess
}

type deleteCategoryCmd struct {
	id int
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete an unused category" }
func (*deleteCategoryCmd) Usage() string {
	return `pantry delete-category -id <id>

  Fails while any item still references the category.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "category id (required)")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := requireAuth(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !e.categories.DeleteCategory(c.id) {
		fmt.Fprintln(os.Stderr, "Error:", e.categories.Err())
		return subcommands.ExitFailure
	}
	fmt.Printf("deleted category #%d\n", c.id)
	return subcommands.ExitSuccess
}
