package main

import (
	"fmt"
	"os"
	"strings"

	"hangar-go/internal/app"
	"hangar-go/internal/config"
	"hangar-go/internal/encryption"
	"hangar-go/internal/hangar"
	"hangar-go/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
// operation identifies the CLI command being run (e.g. "Search", "Stats").
func newApp(operation string) (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg, operation, promptPassphrase("Passphrase: "))
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// promptPassphrase returns a PassphraseReader that prompts on the terminal
// without echoing.
func promptPassphrase(prompt string) app.PassphraseReader {
	return func() (string, error) {
		fmt.Fprint(os.Stderr, prompt)
		pass, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(pass), nil
	}
}

var rootCmd = &cobra.Command{
	Use:   "hangar",
	Short: "Personal Gunpla collection tracker",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		encrypt, _ := cmd.Flags().GetBool("encrypt")

		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg := config.NewConfig(defaults["base_dir"])
		cfg.Encryption.Enabled = encrypt

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if encrypt {
			pass, err := promptPassphrase("New passphrase: ")()
			if err != nil {
				return err
			}
			confirm, err := promptPassphrase("Confirm passphrase: ")()
			if err != nil {
				return err
			}
			if pass != confirm {
				return fmt.Errorf("passphrases do not match")
			}

			enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
			if err != nil {
				return fmt.Errorf("creating encryptor: %w", err)
			}
			if err := enc.Setup(pass); err != nil {
				return fmt.Errorf("generating keys: %w", err)
			}
			fmt.Printf("Encryption keys written under %s\n", cfg.BaseDir)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Store:      %s\n", cfg.Store.Type)
		fmt.Printf("Encryption: %v\n", cfg.Encryption.Enabled)
		return nil
	},
}

// search command
var searchCmd = &cobra.Command{
	Use:   "search [QUERY]",
	Short: "Search the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Search")
		if err != nil {
			return err
		}
		defer a.Close()

		query := ""
		if len(args) > 0 {
			query = strings.Join(args, " ")
		}

		grades, _ := cmd.Flags().GetStringSlice("grade")
		series, _ := cmd.Flags().GetStringSlice("series")
		scales, _ := cmd.Flags().GetStringSlice("scale")
		yearFrom, _ := cmd.Flags().GetInt("year-from")
		yearTo, _ := cmd.Flags().GetInt("year-to")

		results := a.Service().Search(query, hangar.Filters{
			Grades:   grades,
			Series:   series,
			Scales:   scales,
			YearFrom: yearFrom,
			YearTo:   yearTo,
		})

		if len(results) == 0 {
			fmt.Println("No models found.")
			return nil
		}

		for _, v := range results {
			fmt.Printf("%-12s %-30s %-13s %-7s %d  $%.2f\n",
				v.ModelNumber, v.Name, v.Grade, v.Scale, v.ReleaseYear, v.Price)
		}
		return nil
	},
}

// facets command
var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List available filter values",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("FacetOptions")
		if err != nil {
			return err
		}
		defer a.Close()

		opts, err := a.Service().FacetOptions()
		if err != nil {
			return err
		}

		fmt.Printf("Grades: %s\n", strings.Join(opts.Grades, ", "))
		fmt.Printf("Series: %s\n", strings.Join(opts.Series, ", "))
		fmt.Printf("Scales: %s\n", strings.Join(opts.Scales, ", "))
		fmt.Printf("Years:  %d-%d\n", opts.MinYear, opts.MaxYear)
		return nil
	},
}

// collection command
var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage your collection",
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List owned kits",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListCollection")
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.Service().Collection().GetAll()
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("Your collection is empty.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s  %-30s %-13s %-9s %-12s %s\n",
				item.ID[:8], item.Name, item.Grade, item.Status, item.Location,
				item.AddedDate.Format("2006-01-02"))
		}
		return nil
	},
}

var collectionAddCmd = &cobra.Command{
	Use:   "add MODEL_NUMBER GRADE",
	Short: "Add a catalog kit to your collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddToCollection")
		if err != nil {
			return err
		}
		defer a.Close()

		variant, err := a.Service().FindVariant(args[0], args[1])
		if err != nil {
			return err
		}

		owned, err := a.Service().Owned(*variant)
		if err != nil {
			return err
		}
		if owned {
			fmt.Println("This model is already in your collection.")
			return nil
		}

		status, _ := cmd.Flags().GetString("status")
		location, _ := cmd.Flags().GetString("location")
		notes, _ := cmd.Flags().GetString("notes")

		item, err := a.Service().AddToCollection(*variant, hangar.AddOptions{
			Status:   status,
			Location: location,
			Notes:    notes,
		})
		if err != nil {
			return fmt.Errorf("adding to collection: %w", err)
		}

		fmt.Printf("Added %s (%s) to collection, id %s\n", item.Name, item.Grade, item.ID)
		return nil
	},
}

var collectionUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an owned kit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateCollectionItem")
		if err != nil {
			return err
		}
		defer a.Close()

		var update hangar.CollectionUpdate
		if cmd.Flags().Changed("status") {
			status, _ := cmd.Flags().GetString("status")
			if !model.ValidStatus(status) {
				return fmt.Errorf("invalid status: %s", status)
			}
			update.Status = &status
		}
		if cmd.Flags().Changed("location") {
			location, _ := cmd.Flags().GetString("location")
			update.Location = &location
		}
		if cmd.Flags().Changed("notes") {
			notes, _ := cmd.Flags().GetString("notes")
			update.Notes = &notes
		}

		item, err := a.Service().Collection().Update(args[0], update)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s: status=%s location=%s\n", item.ID, item.Status, item.Location)
		return nil
	},
}

var collectionRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a kit from your collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveFromCollection")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Collection().Remove(args[0]); err != nil {
			return fmt.Errorf("removing from collection: %w", err)
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var collectionPhotoCmd = &cobra.Command{
	Use:   "photo ID URI",
	Short: "Attach a photo to an owned kit",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AppendPhoto")
		if err != nil {
			return err
		}
		defer a.Close()

		item, err := a.Service().AppendPhoto(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Photo added, %s now has %d photo(s)\n", item.ID, len(item.Photos))
		return nil
	},
}

// wishlist command
var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Manage your wishlist",
}

var wishlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wished kits",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortBy, _ := cmd.Flags().GetString("sort")

		a, err := newApp("ListWishlist")
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.Service().SortedWishlist(sortBy)
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Println("Your wishlist is empty.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s  %-30s %-13s %-7s $%.2f\n",
				item.ID[:8], item.Name, item.Grade, item.Priority, item.Price)
		}
		return nil
	},
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add MODEL_NUMBER GRADE",
	Short: "Add a catalog kit to your wishlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddToWishlist")
		if err != nil {
			return err
		}
		defer a.Close()

		variant, err := a.Service().FindVariant(args[0], args[1])
		if err != nil {
			return err
		}

		wished, err := a.Service().Wished(*variant)
		if err != nil {
			return err
		}
		if wished {
			fmt.Println("This model is already in your wishlist.")
			return nil
		}

		priority, _ := cmd.Flags().GetString("priority")
		notes, _ := cmd.Flags().GetString("notes")

		item, err := a.Service().AddToWishlist(*variant, hangar.WishOptions{
			Priority: priority,
			Notes:    notes,
		})
		if err != nil {
			return fmt.Errorf("adding to wishlist: %w", err)
		}

		fmt.Printf("Added %s (%s) to wishlist, id %s\n", item.Name, item.Grade, item.ID)
		return nil
	},
}

var wishlistUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a wished kit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("UpdateWishlistItem")
		if err != nil {
			return err
		}
		defer a.Close()

		var update hangar.WishlistUpdate
		if cmd.Flags().Changed("priority") {
			priority, _ := cmd.Flags().GetString("priority")
			if !model.ValidPriority(priority) {
				return fmt.Errorf("invalid priority: %s", priority)
			}
			update.Priority = &priority
		}
		if cmd.Flags().Changed("notes") {
			notes, _ := cmd.Flags().GetString("notes")
			update.Notes = &notes
		}

		item, err := a.Service().Wishlist().Update(args[0], update)
		if err != nil {
			return err
		}

		fmt.Printf("Updated %s: priority=%s\n", item.ID, item.Priority)
		return nil
	},
}

var wishlistRemoveCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a kit from your wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("RemoveFromWishlist")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Service().Wishlist().Remove(args[0]); err != nil {
			return fmt.Errorf("removing from wishlist: %w", err)
		}

		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}

var wishlistMoveCmd = &cobra.Command{
	Use:   "move ID",
	Short: "Move a wished kit into your collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("MoveToCollection")
		if err != nil {
			return err
		}
		defer a.Close()

		status, _ := cmd.Flags().GetString("status")
		location, _ := cmd.Flags().GetString("location")

		item, err := a.Service().MoveToCollection(args[0], hangar.AddOptions{
			Status:   status,
			Location: location,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Moved %s (%s) to collection, id %s\n", item.Name, item.Grade, item.ID)
		return nil
	},
}

// locations command
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Manage storage locations",
}

var locationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List storage locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListLocations")
		if err != nil {
			return err
		}
		defer a.Close()

		locations, err := a.Service().Locations().List()
		if err != nil {
			return err
		}

		for _, loc := range locations {
			fmt.Println(loc)
		}
		return nil
	},
}

var locationsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Add a storage location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("AddLocation")
		if err != nil {
			return err
		}
		defer a.Close()

		locations, err := a.Service().Locations().Add(args[0])
		if err != nil {
			return fmt.Errorf("adding location: %w", err)
		}

		fmt.Printf("Locations: %s\n", strings.Join(locations, ", "))
		return nil
	},
}

// stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View collection statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Stats")
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.Service().Stats()
		if err != nil {
			return err
		}

		fmt.Printf("Collection: %d kit(s), $%.2f total, $%.2f average\n",
			stats.TotalModels, stats.CollectionValue, stats.AveragePerModel)
		fmt.Printf("Wishlist:   %d kit(s), $%.2f total\n",
			stats.WishlistCount, stats.WishlistValue)
		fmt.Printf("Status:     %d unbuilt, %d building, %d completed (%.1f%% complete)\n",
			stats.StatusCounts.Unbuilt, stats.StatusCounts.Building,
			stats.StatusCounts.Completed, stats.CompletionRate)

		printHistogram := func(name string, counts map[string]int) {
			if len(counts) == 0 {
				return
			}
			fmt.Printf("%s\n", name)
			for key, count := range counts {
				fmt.Printf("  %-25s %d\n", key, count)
			}
		}
		printHistogram("By grade:", stats.GradeCounts)
		printHistogram("By series:", stats.SeriesCounts)
		printHistogram("By location:", stats.LocationCounts)
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)
	configInitCmd.Flags().Bool("encrypt", false, "Encrypt snapshots at rest")

	// search flags
	searchCmd.Flags().StringSlice("grade", nil, "Restrict to grades")
	searchCmd.Flags().StringSlice("series", nil, "Restrict to series")
	searchCmd.Flags().StringSlice("scale", nil, "Restrict to scales")
	searchCmd.Flags().Int("year-from", 0, "Earliest release year")
	searchCmd.Flags().Int("year-to", 0, "Latest release year")

	// collection subcommands
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionAddCmd)
	collectionCmd.AddCommand(collectionUpdateCmd)
	collectionCmd.AddCommand(collectionRemoveCmd)
	collectionCmd.AddCommand(collectionPhotoCmd)
	collectionAddCmd.Flags().String("status", "", "Build status (unbuilt, building, completed)")
	collectionAddCmd.Flags().String("location", "", "Storage location")
	collectionAddCmd.Flags().String("notes", "", "Notes")
	collectionUpdateCmd.Flags().String("status", "", "Build status (unbuilt, building, completed)")
	collectionUpdateCmd.Flags().String("location", "", "Storage location")
	collectionUpdateCmd.Flags().String("notes", "", "Notes")

	// wishlist subcommands
	wishlistCmd.AddCommand(wishlistListCmd)
	wishlistCmd.AddCommand(wishlistAddCmd)
	wishlistCmd.AddCommand(wishlistUpdateCmd)
	wishlistCmd.AddCommand(wishlistRemoveCmd)
	wishlistCmd.AddCommand(wishlistMoveCmd)
	wishlistListCmd.Flags().String("sort", hangar.SortByDate, "Sort order (date, priority, price)")
	wishlistAddCmd.Flags().String("priority", "", "Priority (low, medium, high)")
	wishlistAddCmd.Flags().String("notes", "", "Notes")
	wishlistUpdateCmd.Flags().String("priority", "", "Priority (low, medium, high)")
	wishlistUpdateCmd.Flags().String("notes", "", "Notes")
	wishlistMoveCmd.Flags().String("status", "", "Build status for the new collection item")
	wishlistMoveCmd.Flags().String("location", "", "Storage location for the new collection item")

	// locations subcommands
	locationsCmd.AddCommand(locationsListCmd)
	locationsCmd.AddCommand(locationsAddCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(facetsCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(wishlistCmd)
	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(statsCmd)
}
