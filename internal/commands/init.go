package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/miloscript/monify/internal/config"
	"github.com/miloscript/monify/internal/gitops"
	"github.com/miloscript/monify/internal/model"
	"github.com/miloscript/monify/internal/storage"
)

func newInitCommand() *cobra.Command {
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Monify profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, noGit)
		},
	}

	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git history for the profile")

	return cmd
}

func runInit(dir string, noGit bool) error {
	dirs := []string{
		"import",
		filepath.Join("import", "processed"),
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(dir)
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(filepath.Join(dir, "monify.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the empty profile document so the first load finds a valid file.
	if err := storage.NewFileStore(cfg.Profile.Path).Save(model.NewDocument()); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	gitignore := "logs/\nimport/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if cfg.Git.AutoCommit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: new profile", cfg.Git.AuthorName, cfg.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized Monify profile at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized Monify profile at %s\n", dir)
	return nil
}
