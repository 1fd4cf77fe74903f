package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/jo-carlos-borges/pantry-tracker/models"
)

type itemsCmd struct {
	sortBy     string
	lowStock   bool
	byCategory bool
}

func (*itemsCmd) Name() string     { return "items" }
func (*itemsCmd) Synopsis() string { return "list tracked items" }
func (*itemsCmd) Usage() string {
	return `pantry items [-sort priority] [-low-stock] [-by-category]

  Lists the tracked items. -sort priority orders HIGH before MEDIUM
  before LOW, -low-stock keeps only items with quantity <= 2 and
  -by-category groups the output per category.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.sortBy, "sort", "", "sort order: priority")
	f.BoolVar(&c.lowStock, "low-stock", false, "only show low-stock items")
	f.BoolVar(&c.byCategory, "by-category", false, "group items per category")
}

func (c *itemsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if !e.items.FetchItems() {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}

	switch {
	case c.byCategory:
		e.categories.FetchCategories()
		names := make(map[int]string)
		for _, cat := range e.categories.Categories() {
			names[cat.ID] = cat.Name
		}
		grouped := e.items.GroupedByCategory()
		ids := make([]int, 0, len(grouped))
		for id := range grouped {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			name := names[id]
			if name == "" {
				name = fmt.Sprintf("category %d", id)
			}
			fmt.Printf("%s:\n", name)
			for _, item := range grouped[id] {
				printItem(item)
			}
		}
	case c.lowStock:
		for _, item := range e.items.LowStock() {
			printItem(item)
		}
	case c.sortBy == "priority":
		for _, item := range e.items.SortedByPriority() {
			printItem(item)
		}
	default:
		for _, item := range e.items.Items() {
			printItem(item)
		}
	}
	return subcommands.ExitSuccess
}

type itemCmd struct {
	id int
}

func (*itemCmd) Name() string     { return "item" }
func (*itemCmd) Synopsis() string { return "show one item with its prices and category" }
func (*itemCmd) Usage() string {
	return `pantry item -id <id>

  Shows a single item enriched with its price history and its resolved
  category.
`
}

func (c *itemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "item id (required)")
}

func (c *itemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	item := e.items.FetchItemByID(c.id)
	if item == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}
	printItemDetail(item)
	return subcommands.ExitSuccess
}

type addItemCmd struct {
	name     string
	quantity int
	priority string
	category int
}

func (*addItemCmd) Name() string     { return "add-item" }
func (*addItemCmd) Synopsis() string { return "track a new item" }
func (*addItemCmd) Usage() string {
	return `pantry add-item -name <name> -quantity <n> -priority <HIGH|MEDIUM|LOW> -category <id>
`
}

func (c *addItemCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "item name (required)")
	f.IntVar(&c.quantity, "quantity", 0, "quantity on hand")
	f.StringVar(&c.priority, "priority", string(models.PriorityMedium), "restock priority")
	f.IntVar(&c.category, "category", 0, "category id (required)")
}

func (c *addItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := requireAuth(e); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.name == "" || c.category == 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and -category are required")
		return subcommands.ExitUsageError
	}
	if c.quantity < 0 {
		fmt.Fprintln(os.Stderr, "Error: quantity must not be negative")
		return subcommands.ExitUsageError
	}
	priority, err := models.ParsePriority(c.priority)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	item := e.items.AddItem(models.ItemInput{
		Name:       c.name,
		Quantity:   c.quantity,
		Priority:   priority,
		CategoryID: c.category,
	})
	if item == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}
	fmt.Printf("created item #%d\n", item.ID)
	return subcommands.ExitSuccess
}

type updateItemCmd struct {
	id       int
	name     string
	quantity int
	priority string
	category int
}

func (*updateItemCmd) Name() string     { return "update-item" }
func (*updateItemCmd) Synopsis() string { return "change fields of an item" }
func (*updateItemCmd) Usage() string {
	return `pantry update-item -id <id> [-name <name>] [-quantity <n>] [-priority <p>] [-category <id>]

  Updates only the flags that were given; other fields keep their
  stored values.
`
}

func (c *updateItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "item id (required)")
	f.StringVar(&c.name, "name", "", "new item name")
	f.IntVar(&c.quantity, "quantity", -1, "new quantity")
	f.StringVar(&c.priority, "priority", "", "new priority")
	f.IntVar(&c.category, "category", 0, "new category id")
}

func (c *updateItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var update models.ItemUpdate
	if c.name != "" {
		update.Name = &c.name
	}
	if c.quantity >= 0 {
		update.Quantity = &c.quantity
	}
	if c.priority != "" {
		priority, err := models.ParsePriority(c.priority)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		update.Priority = &priority
	}
	if c.category != 0 {
		update.CategoryID = &c.category
	}

	item := e.items.UpdateItem(c.id, update)
	if item == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}
	printItemDetail(item)
	return subcommands.ExitSuccess
}

type deleteItemCmd struct {
	id int
}

func (*deleteItemCmd) Name() string     { return "delete-item" }
func (*deleteItemCmd) Synopsis() string { return "stop tracking an item" }
func (*deleteItemCmd) Usage() string {
	return `pantry delete-item -id <id>

  Deletes the item and every price recorded against it.
`
}

func (c *deleteItemCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "item id (required)")
}

func (c *deleteItemCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !e.items.DeleteItem(c.id) {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}
	fmt.Printf("deleted item #%d\n", c.id)
	return subcommands.ExitSuccess
}

type addPriceCmd struct {
	item     int
	value    string
	storeURL string
}

func (*addPriceCmd) Name() string     { return "add-price" }
func (*addPriceCmd) Synopsis() string { return "record a price observation for an item" }
func (*addPriceCmd) Usage() string {
	return `pantry add-price -item <id> -value <amount> -store <url>

  Records what the item costs at a store right now. The observation
  date is assigned by the backend.
`
}

func (c *addPriceCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.item, "item", 0, "item id (required)")
	f.StringVar(&c.value, "value", "", "observed price, e.g. 3.99 (required)")
	f.StringVar(&c.storeURL, "store", "", "store URL (required)")
}

func (c *addPriceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item <= 0 || c.value == "" || c.storeURL == "" {
		fmt.Fprintln(os.Stderr, "Error: -item, -value and -store are required")
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

	value, err := decimal.NewFromString(c.value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q\n", c.value)
		return subcommands.ExitUsageError
	}
	if value.IsNegative() {
		fmt.Fprintln(os.Stderr, "Error: price must not be negative")
		return subcommands.ExitUsageError
	}

	item := e.items.AddPriceToItem(c.item, models.PriceInput{Value: value, StoreURL: c.storeURL})
	if item == nil {
		fmt.Fprintln(os.Stderr, "Error:", e.items.Err())
		return subcommands.ExitFailure
	}
	printItemDetail(item)
	return subcommands.ExitSuccess
}
