package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corpdata/registryd/pkg/status"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the last batch run report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report, err := status.Read(cfg.DataDir)
		if err != nil {
			return err
		}

		fmt.Printf("Run:        %s\n", report.RunID)
		fmt.Printf("Updated:    %s\n", report.LastUpdate.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("Outcome:    %s\n", report.Outcome)
		fmt.Printf("Message:    %s\n", report.Message)
		fmt.Printf("Records:    %d in, %d failed\n", report.RecordsIn, report.RecordsFailed)
		fmt.Printf("Entities:   %d indexed\n", report.Entities)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
