// Package cli implements the pantry command line surface. Every verb is
// a subcommand over the same state stores the UI uses; the storage
// backend is picked from the environment so state survives between
// invocations.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/jo-carlos-borges/pantry-tracker/mockapi"
	"github.com/jo-carlos-borges/pantry-tracker/models"
	"github.com/jo-carlos-borges/pantry-tracker/services"
	"github.com/jo-carlos-borges/pantry-tracker/storage"
	"github.com/jo-carlos-borges/pantry-tracker/store"
)

// Register wires every pantry subcommand into the commander.
func Register(c *subcommands.Commander) {
	c.Register(&loginCmd{}, "auth")
	c.Register(&registerCmd{}, "auth")
	c.Register(&logoutCmd{}, "auth")
	c.Register(&whoamiCmd{}, "auth")

	c.Register(&itemsCmd{}, "items")
	c.Register(&itemCmd{}, "items")
	c.Register(&addItemCmd{}, "items")
	c.Register(&updateItemCmd{}, "items")
	c.Register(&deleteItemCmd{}, "items")
	c.Register(&addPriceCmd{}, "items")

	c.Register(&categoriesCmd{}, "categories")
	c.Register(&addCategoryCmd{}, "categories")
	c.Register(&updateCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")

	c.Register(&seedCmd{}, "storage")
}

// env bundles the wired-up stores for one command invocation.
type env struct {
	storage    storage.Store
	auth       *store.AuthStore
	items      *store.ItemsStore
	categories *store.CategoriesStore
}

// openEnv loads .env if present, opens the configured storage backend,
// seeds it and builds the store stack. The CLI runs the mock API with
// latency disabled: the artificial delay only exists to make the UI
// feel like a network is involved.
func openEnv() (*env, error) {
	godotenv.Load()

	st, err := openStorage()
	if err != nil {
		return nil, err
	}
	if err := storage.Seed(st, time.Now()); err != nil {
		return nil, fmt.Errorf("seed storage: %w", err)
	}

	api := mockapi.New(st, mockapi.WithoutLatency())
	return &env{
		storage:    st,
		auth:       store.NewAuthStore(services.NewAuthService(api), st),
		items:      store.NewItemsStore(services.NewItemsService(api)),
		categories: store.NewCategoriesStore(services.NewCategoriesService(api)),
	}, nil
}

func openStorage() (storage.Store, error) {
	backend := os.Getenv("PANTRY_STORAGE")
	if backend == "" {
		backend = "file"
	}

	switch backend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		dir := os.Getenv("PANTRY_DATA_DIR")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, ".pantry")
		}
		return storage.NewFileStore(dir)
	case "postgres":
		dsn := os.Getenv("DATABASE_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("PANTRY_STORAGE=postgres requires DATABASE_DSN")
		}
		if err := storage.WaitForPostgres(dsn, 10*time.Second); err != nil {
			return nil, err
		}
		return storage.OpenPostgres(dsn)
	default:
		return nil, fmt.Errorf("unknown PANTRY_STORAGE %q", backend)
	}
}

// requireAuth enforces the route-guard rule: mutating commands need a
// restored session.
func requireAuth(e *env) error {
	if !e.auth.IsAuthenticated() {
		return fmt.Errorf("not logged in: run 'pantry login' first")
	}
	return nil
}

func printItem(item models.Item) {
	fmt.Printf("#%d  %-20s qty=%-3d %-6s category=%d\n",
		item.ID, item.Name, item.Quantity, item.Priority, item.CategoryID)
}

func printItemDetail(item *models.Item) {
	categoryName := "(deleted)"
	if item.Category != nil {
		categoryName = item.Category.Name
	}
	fmt.Printf("#%d %s\n  quantity: %d\n  priority: %s\n  category: %s\n",
		item.ID, item.Name, item.Quantity, item.Priority, categoryName)
	if len(item.Prices) == 0 {
		fmt.Println("  prices:   none recorded")
		return
	}
	fmt.Println("  prices:")
	for _, p := range item.Prices {
		fmt.Printf("    %s  %s  %s\n", p.Date.Format("2006-01-02"), p.Value.StringFixed(2), p.StoreURL)
	}
}
