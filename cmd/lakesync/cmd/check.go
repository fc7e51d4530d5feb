package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/lakesync/internal/protocol"
	"github.com/dbsmedya/lakesync/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to the configured warehouse",
	Long: `Check verifies that the configured workspace, warehouse, and access
token can reach the SQL warehouse, and reports the outcome as a
CONNECTION_STATUS message on stdout.

A failed probe is reported in the message, not as a process error.

Example:
  lakesync check --config lakesync.yaml`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := source.New(cfg, log)
	if err != nil {
		return err
	}

	ok, message := src.CheckConnection(context.Background())

	writer := protocol.NewWriter(os.Stdout)
	return writer.WriteConnectionStatus(ok, message)
}
