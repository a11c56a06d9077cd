// Package cli provides the Cobra-based CLI for the storefront.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storefront/api"
	"storefront/content"
	"storefront/domain"
	"storefront/store"
	"storefront/view"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storefront",
		Short: "A single-shopper storefront session",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject session
			if session != nil {
				if promoTable == nil {
					promoTable = domain.DefaultPromoTable()
				}
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			source := api.NewClient(
				viper.GetString("api-url"),
				viper.GetDuration("timeout"),
			)
			session = store.NewSession(store.Options{
				Source:           source,
				PageSize:         viper.GetInt("page-size"),
				WishlistCapacity: viper.GetInt("wishlist-capacity"),
			})
			promoTable = loadPromoTable()
			return nil
		},
	}

	session    *store.Session
	promoTable domain.PromoTable
)

func init() {
	rootCmd.PersistentFlags().String("api-url", api.DefaultBaseURL, "catalog API base URL")
	rootCmd.PersistentFlags().Duration("timeout", api.DefaultTimeout, "catalog request timeout")
	rootCmd.PersistentFlags().Int("page-size", store.DefaultPageSize, "products per page")
	rootCmd.PersistentFlags().Int("wishlist-capacity", store.DefaultWishlistCapacity, "wishlist capacity")
	rootCmd.PersistentFlags().Duration("debounce", 500*time.Millisecond, "search input quiet period")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("page-size", rootCmd.PersistentFlags().Lookup("page-size"))
	viper.BindPFlag("wishlist-capacity", rootCmd.PersistentFlags().Lookup("wishlist-capacity"))
	viper.BindPFlag("debounce", rootCmd.PersistentFlags().Lookup("debounce"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetDefault("promo-codes", map[string]interface{}{
		"SAVE10": 0.10,
		"SAVE20": 0.20,
		"FREE5":  0.05,
	})
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shopping session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := uuid.NewString()
			slog.Info("session started", "session_id", sessionID)
			deb := newSearchDebouncer(viper.GetDuration("debounce"), func(text string) {
				session.Catalog.SetSearch(text)
				printCatalogPage(session.Catalog.Snapshot())
			})
			defer deb.Stop()

			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("storefront> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					slog.Info("session ended", "session_id", sessionID)
					return nil
				}
				// keystroke-level search input goes through the debouncer
				if rest, ok := strings.CutPrefix(line, "search "); ok {
					deb.Type(strings.TrimSpace(rest))
					continue
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	// browse
	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Fetch the catalog and show the current page",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := refetchCatalog()
			printCatalogPage(snap)
			return nil
		},
	}
	rootCmd.AddCommand(browseCmd)

	// filter
	filterCmd := &cobra.Command{
		Use:   "filter <category>",
		Short: "Filter products by category (use \"all\" for everything)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Catalog.SetFilter(args[0])
			// switching category refetches the working set
			snap := refetchCatalog()
			printCatalogPage(snap)
			return nil
		},
	}
	rootCmd.AddCommand(filterCmd)

	// search
	searchCmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Search product titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureCatalog(); err != nil {
				return err
			}
			session.Catalog.SetSearch(strings.Join(args, " "))
			printCatalogPage(session.Catalog.Snapshot())
			return nil
		},
	}
	rootCmd.AddCommand(searchCmd)

	// page
	pageCmd := &cobra.Command{
		Use:   "page <n>",
		Short: "Jump to page n",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("page must be a number: %w", err)
			}
			session.Catalog.SetPage(n)
			printCatalogPage(session.Catalog.Snapshot())
			return nil
		},
	}
	rootCmd.AddCommand(pageCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cartCmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupProduct(args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			session.Cart.AddItem(p)
			slog.Info("product added to cart", "product_id", p.ID)
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	cartCmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %w", err)
			}
			session.Cart.RemoveItem(id)
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	cartCmd.AddCommand(&cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %w", err)
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %w", err)
			}
			session.Cart.SetQuantity(id, qty)
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	cartCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	rootCmd.AddCommand(cartCmd)

	// promo
	promoCmd := &cobra.Command{
		Use:   "promo",
		Short: "Apply or remove a promo code",
	}
	promoCmd.AddCommand(&cobra.Command{
		Use:   "apply <code>",
		Short: "Apply a promo code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			session.Cart.SetEnteredCode(code)
			// the code is validated here, at the presentation boundary;
			// the store only enforces the single-active-promo rule
			if fraction, ok := promoTable.Lookup(code); ok {
				session.Cart.ApplyPromo(code, fraction)
				slog.Info("promo applied", "code", code, "fraction", fraction)
			} else {
				session.Cart.RejectPromo()
			}
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	promoCmd.AddCommand(&cobra.Command{
		Use:   "remove",
		Short: "Remove the active promo code",
		RunE: func(cmd *cobra.Command, args []string) error {
			session.Cart.RemovePromo()
			printCart(session.Cart.Snapshot())
			return nil
		},
	})
	rootCmd.AddCommand(promoCmd)

	// wishlist
	wishlistCmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist",
	}
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a product to the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupProduct(args[0])
			if err != nil {
				if domain.IsProductNotFoundError(err) {
					fmt.Fprintln(os.Stderr, err)
					return nil
				}
				return err
			}
			session.Wishlist.Add(p)
			printWishlist(session.Wishlist.Snapshot())
			return nil
		},
	})
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %w", err)
			}
			session.Wishlist.Remove(id)
			printWishlist(session.Wishlist.Snapshot())
			return nil
		},
	})
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "to-cart <product-id>",
		Short: "Move a wishlist item into the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %w", err)
			}
			for _, p := range session.Wishlist.Snapshot().Items {
				if p.ID == id {
					session.MoveToCart(p)
					printCart(session.Cart.Snapshot())
					return nil
				}
			}
			fmt.Fprintln(os.Stderr, domain.NewProductNotFoundError(id))
			return nil
		},
	})
	wishlistCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the wishlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			printWishlist(session.Wishlist.Snapshot())
			return nil
		},
	})
	rootCmd.AddCommand(wishlistCmd)

	// static pages
	rootCmd.AddCommand(&cobra.Command{
		Use:   "about",
		Short: "About the store",
		Run:   func(cmd *cobra.Command, args []string) { fmt.Println(content.About) },
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "deliveries",
		Short: "Delivery policy",
		Run:   func(cmd *cobra.Command, args []string) { fmt.Println(content.Deliveries) },
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "terms",
		Short: "Terms and conditions",
		Run:   func(cmd *cobra.Command, args []string) { fmt.Println(content.Terms) },
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "faq",
		Short: "Frequently asked questions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, qa := range content.FAQ() {
				fmt.Printf("Q: %s\nA: %s\n\n", qa.Question, qa.Answer)
			}
		},
	})

	// newsletter signup
	rootCmd.AddCommand(&cobra.Command{
		Use:   "subscribe <email>",
		Short: "Subscribe to special deals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !content.ValidEmail(args[0]) {
				return errors.New("please enter a valid email")
			}
			fmt.Println("Thank you for subscribing!")
			return nil
		},
	})
}

// loadPromoTable reads the configured promo code table, falling back
// to the built-in defaults when none is configured.
func loadPromoTable() domain.PromoTable {
	raw := viper.GetStringMap("promo-codes")
	if len(raw) == 0 {
		return domain.DefaultPromoTable()
	}
	table := make(domain.PromoTable, len(raw))
	for code, v := range raw {
		switch f := v.(type) {
		case float64:
			table[strings.ToUpper(code)] = f
		case int:
			table[strings.ToUpper(code)] = float64(f)
		case string:
			if parsed, err := strconv.ParseFloat(f, 64); err == nil {
				table[strings.ToUpper(code)] = parsed
			}
		}
	}
	return table
}

// refetchCatalog issues the fetch matching the active filter and waits
// for it to resolve.
func refetchCatalog() store.CatalogSnapshot {
	snap := session.Catalog.Snapshot()
	if snap.Filter == store.CategoryAll {
		session.Catalog.Fetch(context.Background())
	} else {
		session.Catalog.FetchCategory(context.Background(), snap.Filter)
	}
	return awaitCatalog()
}

// ensureCatalog fetches the catalog once if nothing has been loaded yet.
func ensureCatalog() error {
	snap := session.Catalog.Snapshot()
	if snap.Status != store.StatusIdle {
		return nil
	}
	session.Catalog.Fetch(context.Background())
	snap = awaitCatalog()
	if snap.Status == store.StatusFailed {
		return domain.NewCatalogFetchError(0, snap.FetchError)
	}
	return nil
}

// awaitCatalog blocks until the outstanding fetch resolves. The stores
// themselves never block; waiting for a result is a choice this
// presentation makes so command output reflects the fetched state.
func awaitCatalog() store.CatalogSnapshot {
	done := make(chan struct{}, 1)
	unsubscribe := session.Subscribe(func() {
		select {
		case done <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()
	for {
		snap := session.Catalog.Snapshot()
		if snap.Status != store.StatusLoading {
			return snap
		}
		<-done
	}
}

// lookupProduct resolves a product id argument against the fetched
// catalog, loading it first if needed.
func lookupProduct(arg string) (domain.Product, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product id must be a number: %w", err)
	}
	if err := ensureCatalog(); err != nil {
		return domain.Product{}, err
	}
	for _, p := range session.Catalog.Snapshot().All {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.NewProductNotFoundError(id)
}

func printCatalogPage(snap store.CatalogSnapshot) {
	fmt.Println(view.StatusLine(snap))
	for _, p := range view.PageItems(snap) {
		fmt.Printf("%d | %s | $%.2f | %s\n", p.ID, p.Title, p.Price, p.Category)
	}
}

func printCart(snap store.CartSnapshot) {
	if snap.Empty() {
		fmt.Println("No items in the cart.")
	}
	for _, l := range snap.Lines {
		fmt.Println(view.CartLineText(l))
	}
	if snap.PromoMessage != "" {
		fmt.Println(snap.PromoMessage)
	}
	fmt.Println(view.TotalText(snap))
}

func printWishlist(snap store.WishlistSnapshot) {
	if snap.Err != "" {
		fmt.Println(snap.Err)
	}
	if len(snap.Items) == 0 {
		fmt.Println("Your wishlist is empty.")
		return
	}
	for _, p := range snap.Items {
		fmt.Printf("%d | %s | $%.2f\n", p.ID, p.Title, p.Price)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
