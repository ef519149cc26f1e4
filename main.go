package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"moodboost/internal/config"
	"moodboost/internal/mood"
	"moodboost/internal/output"
	"moodboost/ui/console"
	"moodboost/ui/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configPath string
	debugLog   string
	progress   float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moodboost",
		Short:         "Pick a mood, watch the face follow, get a joke",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// The terminal belongs to the UI, so logs go to a file or nowhere.
			if debugLog != "" {
				f, err := tea.LogToFile(debugLog, "moodboost")
				if err != nil {
					return fmt.Errorf("open debug log: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			return tui.Start(cfg)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.Flags().StringVar(&debugLog, "debug", "", "write debug logs to this file")

	root.AddCommand(newPrintCmd())
	return root
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [sad|neutral|happy|1|2|3]",
		Short: "Print the face geometry for a mood without starting the UI",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := mood.None
			if len(args) == 1 {
				s, err := output.ParseSelection(args[0])
				if err != nil {
					return err
				}
				sel = s
			}

			p := progress
			if !cmd.Flags().Changed("progress") && sel.Valid() {
				p = mood.Position(int(sel))
			}

			console.Print(cmd.OutOrStdout(), output.BuildFaceReport(sel, p))
			return nil
		},
	}
	cmd.Flags().Float64Var(&progress, "progress", 0, "override the animation progress (0..2)")
	return cmd
}
