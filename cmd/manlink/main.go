// Package main implements manlink, a pager for man that turns page cross
// references like "mount(2)" into clickable links.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/manlink/internal/app"
	"github.com/kk-code-lab/manlink/internal/config"
	"github.com/kk-code-lab/manlink/internal/manref"
	"github.com/kk-code-lab/manlink/internal/manwidth"
	statepkg "github.com/kk-code-lab/manlink/internal/state"
	"github.com/kk-code-lab/manlink/internal/textutil"
)

// Version information (set by goreleaser)
var version = "dev"

// Global flags
var (
	subsequentRun bool
	debugLogPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "manlink",
		Short: "man pager with clickable cross references",
		Long: `manlink is a pager for man(1) that makes cross references like
"mount(2)" clickable: a left click re-runs man on the referenced page,
and quitting it returns to the page you came from.

Use it as your pager:

  man -P manlink mount

or set it globally:

  export MANPAGER=manlink`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPager()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&subsequentRun, "subsequent-run", false, "")
	// Set by the parent manlink when it re-invokes man; not for users.
	_ = rootCmd.PersistentFlags().MarkHidden("subsequent-run")
	rootCmd.PersistentFlags().StringVar(&debugLogPath, "debug-log", "", "Append debug logging to this file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage manlink configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}

	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteDefault()
			if err != nil {
				return err
			}
			fmt.Printf("Wrote default configuration to %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(configPathCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPager() error {
	// Set UTF-8 as fallback encoding for maximum compatibility.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if debugLogPath == "" {
		debugLogPath = cfg.DebugLog
	}
	if debugLogPath != "" {
		f, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		} else {
			defer f.Close()
			apppkg.EnableDebugLog(f)
		}
	}

	raw, err := textutil.ReadAllText(os.Stdin)
	if err != nil {
		return fmt.Errorf("could not read piped input: %w", err)
	}

	doc, err := statepkg.NewDocument(raw, cfg.TabWidth)
	if err != nil {
		return fmt.Errorf("could not parse piped input: %w", err)
	}

	if !subsequentRun {
		// First launch: man already formatted the page, but to a width
		// chosen before this pager measured the terminal. Re-exec man
		// against the page named in the header with MANWIDTH pinned, so
		// the second pass is formatted to fit inside the frame.
		ref, err := manref.Parse(doc.PageID)
		if err != nil {
			return fmt.Errorf("input does not begin with a page reference (got %q): %w", doc.PageID, err)
		}
		if err := manwidth.Ensure(); err != nil {
			return fmt.Errorf("could not negotiate page width: %w", err)
		}
		if err := apppkg.ExecMan(cfg.ManCommand, ref); err != nil {
			return fmt.Errorf("could not re-run %s: %w", cfg.ManCommand, err)
		}
	}

	application, err := apppkg.NewApplication(doc, cfg)
	if err != nil {
		return fmt.Errorf("could not initialize terminal: %w", err)
	}
	defer func() {
		_ = application.Close()
	}()

	application.Run()
	return nil
}
