package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/miloscript/monify/internal/config"
	"github.com/miloscript/monify/internal/state"
	"github.com/miloscript/monify/internal/storage"
)

// openStore loads the config at root and opens the composed store over the
// configured storage backend, waiting for hydration so commands read real
// state.
func openStore(root string) (*state.Store, *config.Config, error) {
	cfg, err := config.Load(filepath.Join(root, "monify.yaml"))
	if err != nil {
		return nil, nil, err
	}

	var backend storage.Store
	if cfg.Host.Command != "" {
		bridge, err := storage.NewHostBridge(cfg.Host.Command, cfg.Host.Args...)
		if err != nil {
			return nil, nil, fmt.Errorf("starting host: %w", err)
		}
		backend = bridge
	} else {
		backend = storage.NewFileStore(cfg.Profile.Path)
	}

	lg := log.New(os.Stderr).WithPrefix("store")
	s := state.NewStore(backend, lg)
	s.WaitReady()
	return s, cfg, nil
}
