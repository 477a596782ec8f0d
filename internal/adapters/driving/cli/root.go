// Package cli implements the docdex command-line interface using cobra.
// The root command wires the filesystem connector, the markdown
// normaliser and the core services from flags and the config file;
// subcommands talk to the services through their driving ports.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docdex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docdex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/docdex/internal/connectors/filesystem"
	"github.com/custodia-labs/docdex/internal/core/ports/driven"
	"github.com/custodia-labs/docdex/internal/core/ports/driving"
	"github.com/custodia-labs/docdex/internal/core/services"
	"github.com/custodia-labs/docdex/internal/logger"
	"github.com/custodia-labs/docdex/internal/normalisers/markdown"
)

// version is overridden by main at startup via SetVersion.
var version = "dev"

// Services the commands run against. wireServices fills these from
// config and flags; tests inject their own.
var (
	searchService     driving.SearchService
	libraryService    driving.LibraryService
	indexOrchestrator driving.IndexOrchestrator
	configStore       driven.ConfigStore

	// wired marks the services as ready so ensureServices doesn't
	// overwrite injected test doubles.
	wired bool
)

var (
	flagRoot    string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docdex",
	Short: "Index and search a markdown documentation corpus",
	Long: `docdex builds an in-memory keyword index over a directory of markdown
documentation and answers search, lookup and related-document queries
against it.

The corpus root comes from --root, falling back to corpus.root in the
config file, then to the current directory.`,
	SilenceUsage:      true,
	PersistentPreRunE: ensureServices,
}

// Execute runs the root command and returns its error.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "corpus root directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default ~/.docdex/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// ensureServices wires the real service graph before a command runs.
// Commands that never touch the corpus skip wiring, and injected
// services are left alone.
func ensureServices(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "version", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return nil
	}
	if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
		return nil
	}
	if wired {
		return nil
	}
	return wireServices()
}

// wireServices composes the connector, normaliser, snapshot store and
// services from the config file and persistent flags.
func wireServices() error {
	store, err := file.NewConfigStore(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagVerbose || store.GetBool("log.verbose") {
		logger.SetVerbose(true)
	}

	root := flagRoot
	if root == "" {
		root = store.GetString("corpus.root")
	}
	if root == "" {
		root = "."
	}

	normalisers := []driven.Normaliser{markdown.New()}

	var extensions []string
	for _, n := range normalisers {
		extensions = append(extensions, n.Extensions()...)
	}

	opts := []filesystem.Option{filesystem.WithExtensions(extensions...)}
	if excludes := store.GetStringSlice("corpus.excludes"); len(excludes) > 0 {
		opts = append(opts, filesystem.WithExcludes(excludes...))
	}
	if workers := store.GetInt("corpus.workers"); workers > 0 {
		opts = append(opts, filesystem.WithWorkers(workers))
	}

	connector, err := filesystem.New(root, opts...)
	if err != nil {
		return fmt.Errorf("creating connector: %w", err)
	}

	snapshots := memory.NewSnapshotStore()

	indexOrchestrator = services.NewIndexOrchestrator(connector, normalisers, snapshots)
	searchService = services.NewSearchService(snapshots)
	libraryService = services.NewLibraryService(snapshots)
	configStore = store
	wired = true

	return nil
}

// ensureIndex builds the first snapshot of this process so query
// commands see the corpus as it is on disk right now.
func ensureIndex(ctx context.Context) error {
	if indexOrchestrator == nil {
		return errors.New("index orchestrator not configured")
	}
	if _, err := indexOrchestrator.Rebuild(ctx); err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	return nil
}
