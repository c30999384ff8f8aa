package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corpdata/registryd/pkg/api"
	"github.com/corpdata/registryd/pkg/match"
	"github.com/corpdata/registryd/pkg/status"
	"github.com/corpdata/registryd/pkg/store"
)

var (
	serveBind string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve name lookups over HTTP",
	Long: `Load the persisted match index into memory and serve lookups on
GET /api/v1/match/{name}, with health, stats and Prometheus metrics
endpoints alongside.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if serveBind != "" {
			cfg.Server.Bind = serveBind
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		st, err := store.Open(filepath.Join(cfg.DataDir, "index"))
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := st.Entries()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("index at %s is empty; run ingest first", cfg.DataDir)
		}

		idx := match.NewIndex(match.NewNormalizer(cfg.NameSuffixes), entries)

		// Serving works without a status report; it only enriches /stats.
		report, err := status.Read(cfg.DataDir)
		if err != nil {
			report = nil
		}

		return api.StartServer(idx, report, api.ServerConfig{
			Bind: cfg.Server.Bind,
			Port: cfg.Server.Port,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveBind, "bind", "", "Bind address (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
}
