package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/pinchzoom"
)

func newReplayCmd() *cobra.Command {
	var (
		flags  sessionFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "replay <script.json>",
		Short: "Replay a gesture script headlessly and print the snapshots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			script, err := pinchzoom.LoadScript(data)
			if err != nil {
				return err
			}
			ctrl, err := flags.newController(logger)
			if err != nil {
				return err
			}

			res := pinchzoom.NewScriptRunner(ctrl, script, logger).Run()
			for _, warn := range res.Warnings {
				logger.Warn(warn)
			}
			return writeResult(cmd.OutOrStdout(), res, format)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, yaml or json")
	return cmd
}

func writeResult(w io.Writer, res pinchzoom.ScriptResult, format string) error {
	switch format {
	case "text":
		return writeResultText(w, res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
