package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/gtm-studio/icp-engine/internal/domain"
	"github.com/gtm-studio/icp-engine/internal/report"
)

func newPreviewCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "preview <snapshot.json>",
		Short: "Render the summary report from an exported session snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			var snap domain.Snapshot
			if err := json.Unmarshal(data, &snap); err != nil {
				return fmt.Errorf("parse snapshot: %w", err)
			}

			doc := report.Generate(snap)
			if raw {
				fmt.Print(doc)
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return err
			}
			out, err := renderer.Render(doc)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print plain Markdown without terminal styling")
	return cmd
}
