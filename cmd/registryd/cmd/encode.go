package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/corpdata/registryd/pkg/batch"
	"github.com/corpdata/registryd/pkg/codec"
)

var (
	encodeChunkSize int
	encodeOutDir    string
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <extract-file>",
	Short: "Re-serialize an extract file into fixed-width segments",
	Long: `Decode an extract file and re-encode its entities into fixed-width
segment files of chunk-size records each, written to the output directory
as cordata0.txt, cordata1.txt, and so on.

Example:
  registryd encode cordata0.txt --chunk-size 100 --out-dir ./segments`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if encodeChunkSize > 0 {
			cfg.ChunkSize = encodeChunkSize
		}
		outDir := encodeOutDir
		if outDir == "" {
			outDir = cfg.DataDir
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
		entities, errs := batch.DecodeAll(rc, lines, runtime.NumCPU())

		var good []codec.Entity
		for i, e := range entities {
			if errs[i] != nil {
				fmt.Printf("skipping record %d: %v\n", i+1, errs[i])
				continue
			}
			good = append(good, e)
		}

		b, err := batch.NewBatcher(rc, cfg.ChunkSize)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outDir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		segments := b.Segments(good)
		for i, seg := range segments {
			path := filepath.Join(outDir, fmt.Sprintf("cordata%d.txt", i))
			if err := os.WriteFile(path, []byte(seg), 0644); err != nil {
				return fmt.Errorf("failed to write segment %d: %w", i, err)
			}
		}

		fmt.Printf("Wrote %d segments (%d entities) to %s\n", len(segments), len(good), outDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().IntVar(&encodeChunkSize, "chunk-size", 0, "Records per segment (defaults to config)")
	encodeCmd.Flags().StringVar(&encodeOutDir, "out-dir", "", "Segment output directory (defaults to data dir)")
}
