package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/lakesync/internal/protocol"
	"github.com/dbsmedya/lakesync/internal/source"
	"github.com/dbsmedya/lakesync/internal/stream"
	"github.com/dbsmedya/lakesync/internal/types"
)

var (
	readStateFile   string
	readFullRefresh bool
	readLimit       int64
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Extract records from the configured table",
	Long: `Read streams the table's rows as RECORD messages on stdout, followed
by a final STATE message carrying the cursor watermark.

With a cursor field configured the sync runs incrementally: rows with a
cursor value greater than the prior watermark are read in cursor order,
and the watermark advances record by record. --full-refresh forces an
unfiltered read. The whole read is one logical pass; there is no
mid-stream resume.

Example:
  lakesync read --config lakesync.yaml --state state.json`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readStateFile, "state", "",
		"Path to the state file (read before the sync, rewritten after)")
	readCmd.Flags().BoolVar(&readFullRefresh, "full-refresh", false,
		"Read the entire table without cursor filtering")
	readCmd.Flags().Int64Var(&readLimit, "limit", 0,
		"Cap the number of rows read (overrides max_rows, 0 = config value)")

	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	if readLimit > 0 {
		cfg.Stream.MaxRows = readLimit
	}

	src, err := source.New(cfg, log)
	if err != nil {
		return err
	}

	tableStream := src.Stream()

	mode := stream.SyncModeFullRefresh
	if tableStream.SupportsIncremental() && !readFullRefresh {
		mode = stream.SyncModeIncremental
	}

	state, err := loadState(readStateFile)
	if err != nil {
		return err
	}

	syncLog := log.WithStream(tableStream.Name()).WithFields(map[string]interface{}{
		"mode": string(mode),
	})
	syncLog.Infow("starting sync", "prior_state", state)

	writer := protocol.NewWriter(os.Stdout)
	recordCount := 0

	ctx := context.Background()
	err = tableStream.ReadRecords(ctx, mode, state, func(record *types.Record) error {
		if err := writer.WriteRecord(tableStream.Name(), record); err != nil {
			return err
		}
		state = tableStream.GetUpdatedState(state, record)
		recordCount++
		return nil
	})
	if err != nil {
		return err
	}

	if err := writer.WriteState(state); err != nil {
		return err
	}

	if readStateFile != "" {
		if err := saveState(readStateFile, state); err != nil {
			return err
		}
	}

	syncLog.Infow("sync complete", "records", recordCount, "state", state)
	return nil
}

// loadState reads the prior watermark from the state file. A missing path or
// file means a first run: empty state.
func loadState(path string) (stream.State, error) {
	if path == "" {
		return stream.State{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return stream.State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state := stream.State{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return state, nil
}

// saveState persists the watermark for the next run.
func saveState(path string, state stream.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
