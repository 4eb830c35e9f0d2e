package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/named-data/ndnd/catalog"
	"github.com/named-data/ndnd/std/engine"
	"github.com/named-data/ndnd/std/log"
	"github.com/named-data/ndnd/std/utils/toolutils"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var cmdRun = &cobra.Command{
	Use:     "ndncatalogd CONFIG-FILE",
	Short:   "Named Data Networking catalog query service",
	Version: version,
	Args:    cobra.ExactArgs(1),
	Run:     run,
}

func init() {
	cmdRun.Flags().String("backend", "mysql", "catalog backend to use (mysql, mem)")
}

func main() {
	if err := cmdRun.Execute(); err != nil {
		os.Exit(1)
	}
}

// run reads the YAML configuration, starts the catalog core, and
// blocks until an interrupt or SIGTERM signal is received to gracefully
// stop it, the same shape repo/cmd.go's run function uses.
func run(cmd *cobra.Command, args []string) {
	fileConfig := struct {
		Catalog *catalog.Config `json:"catalog" yaml:"catalog"`
	}{
		Catalog: catalog.DefaultConfig(),
	}
	toolutils.ReadYaml(&fileConfig, args[0])

	cfg := fileConfig.Catalog
	if err := cfg.Parse(); err != nil {
		log.Fatal(nil, "Configuration error", "err", err)
	}

	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.Default().SetLevel(lvl)
	}

	backendKind, _ := cmd.Flags().GetString("backend")

	var backend catalog.Backend
	var err error
	switch backendKind {
	case "mem":
		log.Warn(nil, "Running with the in-memory dry-run backend; no query results will be real")
		backend = catalog.NewMemBackend()
	case "mysql":
		backend, err = catalog.NewSQLBackend(cfg.Database)
		if err != nil {
			log.Fatal(nil, "Failed to open catalog backend", "err", err)
		}
	default:
		log.Fatal(nil, "Unknown backend", "backend", backendKind)
	}

	app := engine.NewBasicEngine(engine.NewDefaultFace())
	if err := app.Start(); err != nil {
		log.Fatal(nil, "Unable to start engine", "err", err)
	}
	defer app.Stop()

	core, err := catalog.NewCatalog(cfg, app, backend)
	if err != nil {
		log.Fatal(nil, "Failed to create catalog core", "err", err)
	}

	if err := core.Start(); err != nil {
		log.Fatal(nil, "Failed to start catalog core", "err", err)
	}
	defer core.Stop()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	receivedSig := <-sigChannel
	log.Info(nil, "Received signal - exiting", "signal", receivedSig)
}
