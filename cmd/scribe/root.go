package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/internal/app"
	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/internal/log"
)

type rootOptions struct {
	configPath string
	debug      bool
	logFile    string
}

// runProgram starts the UI. Tests replace it.
var runProgram = func(m app.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		if closeErr := fm.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           scribe.Name + " [file]",
		Short:         "A terminal editor for small scripts",
		Long:          `scribe edits one file at a time, highlights keywords, numbers, strings and decorators as you type, and offers keyword completions for the word at the cursor.`,
		Version:       scribe.Describe(commit, date),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file overriding the defaults")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "scribe.log", "debug log path (used with --debug)")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

func runEditor(opts *rootOptions, args []string) error {
	if opts.debug {
		cleanup, err := log.InitWithTeaLog(opts.logFile, scribe.Name)
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetMinLevel(level)
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	log.Info(log.CatUI, "starting", "version", scribe.Version(), "path", path)
	return runProgram(app.New(app.Options{Config: cfg, Path: path}))
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create configuration files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "default",
		Short: "Print the default configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.DefaultYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration to path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "check [path]",
		Short: "Validate a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := config.Load(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	})
	return cmd
}
