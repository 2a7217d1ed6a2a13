package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/miloscript/monify/internal/auditlog"
	"github.com/miloscript/monify/internal/gitops"
	"github.com/miloscript/monify/internal/importer"
	"github.com/miloscript/monify/internal/state"
)

func newImportCommand() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "import <account-id>",
		Short: "Import bank statements from the import directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(rootDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runImport(absDir, args[0])
		},
	}

	cmd.Flags().StringVar(&rootDir, "dir", ".", "profile directory")

	return cmd
}

func runImport(root, accountID string) error {
	lg := log.New(os.Stderr).WithPrefix("import")

	store, cfg, err := openStore(root)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, ok := accountByID(store.State(), accountID); !ok {
		return fmt.Errorf("unknown bank account %q", accountID)
	}

	parser := importer.DefaultRegistry().Get(cfg.Import.Format)
	if parser == nil {
		return fmt.Errorf("unknown statement format %q", cfg.Import.Format)
	}

	files, err := importer.Scan(cfg.Import.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		lg.Info("nothing to import", "dir", cfg.Import.Dir)
		return nil
	}

	for _, file := range files {
		f, err := os.Open(file.Path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file.Name, err)
		}
		batch, err := parser.Parse(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", file.Name, err)
		}

		appended := 0
		store.Dispatch(func(st state.State) state.State {
			st.Banking, appended = st.Banking.ImportTransactions(accountID, batch)
			return st
		})
		lg.Info("imported statement", "file", file.Name, "parsed", len(batch), "appended", appended)

		if err := auditlog.Append(root, []auditlog.Entry{{
			Timestamp: time.Now(),
			Source:    file.Name,
			AccountID: accountID,
			Parsed:    len(batch),
			Appended:  appended,
		}}); err != nil {
			lg.Warn("writing import log", "err", err)
		}

		if err := importer.MarkProcessed(cfg.Import.Dir, file.Name); err != nil {
			return err
		}
	}

	store.Flush()

	if cfg.Git.AutoCommit && gitops.IsRepo(root) {
		if _, err := gitops.CommitAll(root, "import: bank statements", cfg.Git.AuthorName, cfg.Git.AuthorEmail); err != nil {
			lg.Warn("committing profile", "err", err)
		}
	}

	return nil
}

func accountByID(st state.State, id string) (int, bool) {
	for i, a := range st.Banking.Accounts {
		if a.ID == id {
			return i, true
		}
	}
	return 0, false
}
