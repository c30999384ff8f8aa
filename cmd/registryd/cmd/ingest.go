package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/corpdata/registryd/pkg/batch"
	"github.com/corpdata/registryd/pkg/codec"
	"github.com/corpdata/registryd/pkg/match"
	"github.com/corpdata/registryd/pkg/status"
	"github.com/corpdata/registryd/pkg/store"
)

var ingestWorkers int

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <extract-file>",
	Short: "Decode an extract file and build the match index",
	Long: `Decode a fixed-width corporate extract file, build the
canonical-name to document-number match index, persist it to the data
directory and record a status report.

Example:
  registryd ingest cordata0.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lay, err := cfg.Layout()
		if err != nil {
			return fmt.Errorf("invalid record geometry: %w", err)
		}

		lines, err := readLines(args[0])
		if err != nil {
			return err
		}

		rc := codec.NewRecordCodec(lay)
		entities, errs := batch.DecodeAll(rc, lines, ingestWorkers)

		var good []codec.Entity
		var failed int
		for i, e := range entities {
			if errs[i] != nil {
				failed++
				fmt.Printf("skipping record %d: %v\n", i+1, errs[i])
				continue
			}
			good = append(good, e)
		}

		idx := match.BuildIndex(match.NewNormalizer(cfg.NameSuffixes), good)

		runID := ksuid.New()
		st, err := store.Open(filepath.Join(cfg.DataDir, "index"))
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SaveIndex(runID, idx); err != nil {
			return err
		}

		outcome := status.OutcomeSuccess
		message := fmt.Sprintf("indexed %d entities from %d records", idx.Size(), len(lines))
		switch {
		case len(lines) > 0 && failed == len(lines):
			outcome = status.OutcomeFailure
			message = fmt.Sprintf("all %d records failed to decode", len(lines))
		case failed > 0:
			outcome = status.OutcomePartial
			message = fmt.Sprintf("indexed %d entities, %d of %d records failed to decode",
				idx.Size(), failed, len(lines))
		}

		report := &status.Report{
			RunID:         runID.String(),
			LastUpdate:    time.Now().UTC(),
			Outcome:       outcome,
			Message:       message,
			RecordsIn:     len(lines),
			RecordsFailed: failed,
			Entities:      idx.Size(),
		}
		if err := status.Write(cfg.DataDir, report); err != nil {
			return err
		}

		fmt.Printf("Run %s: %s\n", report.RunID, report.Message)
		if idx.Skipped() > 0 {
			fmt.Printf("%d entities had no document number and were not indexed\n", idx.Skipped())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", runtime.NumCPU(), "Decode worker count")
}
