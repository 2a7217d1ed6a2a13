package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/miloscript/monify/internal/id"
	"github.com/miloscript/monify/internal/model"
	"github.com/miloscript/monify/internal/state"
)

func newLabelsCommand() *cobra.Command {
	labelsCmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage transaction labels",
	}
	labelsCmd.AddCommand(newLabelsListCommand())
	labelsCmd.AddCommand(newLabelsAddCommand())
	return labelsCmd
}

func newLabelsListCommand() *cobra.Command {
	var rootDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(rootDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			store, _, err := openStore(absDir)
			if err != nil {
				return err
			}
			defer store.Close()

			for _, l := range store.State().Banking.Labels {
				if l.Recipient != "" {
					fmt.Printf("%s\t%s\t(recipient: %s)\n", l.ID, l.Name, l.Recipient)
					continue
				}
				fmt.Printf("%s\t%s\n", l.ID, l.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "dir", ".", "profile directory")

	return cmd
}

func newLabelsAddCommand() *cobra.Command {
	var rootDir string
	var recipient string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(rootDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			store, _, err := openStore(absDir)
			if err != nil {
				return err
			}
			defer store.Close()

			label := model.TransactionLabel{
				ID:        id.New(),
				Name:      args[0],
				Recipient: recipient,
			}
			store.Dispatch(func(st state.State) state.State {
				st.Banking = st.Banking.UpsertLabel(label)
				return st
			})
			store.Flush()

			fmt.Printf("Added label %s (%s)\n", label.Name, label.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "dir", ".", "profile directory")
	cmd.Flags().StringVar(&recipient, "recipient", "", "recipient pattern for auto-suggestion")

	return cmd
}
