package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/lakesync/internal/render"
	"github.com/dbsmedya/lakesync/internal/source"
	"github.com/dbsmedya/lakesync/internal/stream"
)

var planStateFile string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview how many rows the next sync would read",
	Long: `Plan counts the rows a read would extract without extracting them.

With a state file, the count is restricted to rows past the prior
watermark, matching what an incremental read would fetch.

Example:
  lakesync plan --config lakesync.yaml --state state.json`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planStateFile, "state", "",
		"Path to the state file with the prior watermark")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := source.New(cfg, log)
	if err != nil {
		return err
	}

	tableStream := src.Stream()

	state, err := loadState(planStateFile)
	if err != nil {
		return err
	}

	var cursorField, cursorValue string
	if tableStream.SyncMode() == stream.SyncModeIncremental {
		cursorField = tableStream.CursorField()
		cursorValue = state[cursorField]
	}

	count, err := src.Executor().FetchTableCount(context.Background(), cursorField, cursorValue)
	if err != nil {
		return fmt.Errorf("row count failed: %w", err)
	}

	watermark := cursorValue
	if watermark == "" {
		watermark = "(none)"
	}
	render.KeyValue(cmd.OutOrStdout(), [][2]string{
		{"stream", tableStream.Name()},
		{"table", src.Executor().Table().String()},
		{"sync mode", string(tableStream.SyncMode())},
		{"cursor field", tableStream.CursorField()},
		{"prior watermark", watermark},
		{"pending rows", strconv.FormatInt(count, 10)},
	})
	return nil
}
