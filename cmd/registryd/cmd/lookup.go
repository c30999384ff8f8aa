package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corpdata/registryd/pkg/match"
	"github.com/corpdata/registryd/pkg/store"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Resolve an entity name against the persisted match index",
	Long: `Normalize a raw entity name and look it up in the persisted
match index.

Example:
  registryd lookup "Pelican Bay Foundation, Inc."`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(filepath.Join(cfg.DataDir, "index"))
		if err != nil {
			return err
		}
		defer st.Close()

		normalizer := match.NewNormalizer(cfg.NameSuffixes)
		canonical := normalizer.Normalize(args[0])

		doc, err := st.Get(canonical)
		if err != nil {
			if errors.Is(err, match.ErrNotFound) {
				fmt.Printf("No match for %q (canonical %q)\n", args[0], canonical)
				return nil
			}
			return err
		}

		fmt.Println(doc)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
