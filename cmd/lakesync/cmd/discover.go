package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/lakesync/internal/protocol"
	"github.com/dbsmedya/lakesync/internal/render"
	"github.com/dbsmedya/lakesync/internal/source"
)

var discoverPretty bool

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Describe the configured table as a stream catalog",
	Long: `Discover introspects the configured table and emits a CATALOG
message describing the single stream this connector offers: its name,
JSON schema, and supported sync modes.

If catalog introspection fails, a minimal fallback schema is reported
instead of an error.

Example:
  lakesync discover --config lakesync.yaml
  lakesync discover --config lakesync.yaml --pretty`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().BoolVar(&discoverPretty, "pretty", false,
		"Print an aligned schema table instead of a CATALOG message")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	src, err := source.New(cfg, log)
	if err != nil {
		return err
	}

	ctx := context.Background()
	descriptor := src.Inferencer().Infer(ctx)
	tableStream := src.Stream()

	if discoverPretty {
		rows := make([][]string, 0, len(descriptor.Fields))
		for _, field := range descriptor.Fields {
			rows = append(rows, []string{field.Name, field.Type, strconv.FormatBool(field.Required)})
		}
		cmd.Printf("stream: %s\n\n", tableStream.Name())
		render.Table(cmd.OutOrStdout(), []string{"COLUMN", "TYPE", "REQUIRED"}, rows)
		return nil
	}

	writer := protocol.NewWriter(os.Stdout)
	return writer.WriteCatalog(&protocol.Catalog{
		Streams: []protocol.StreamDescriptor{
			protocol.DescribeStream(tableStream, descriptor),
		},
	})
}
