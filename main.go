package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dropdown/app"
	"dropdown/config"
	"dropdown/log"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version          = "0.3.0"
	reduceMotionFlag bool
	rootCmd          = &cobra.Command{
		Use:   "dropdown",
		Short: "dropdown - pick a food stand from an expandable panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			// Flag overrides config
			if reduceMotionFlag {
				cfg.ReduceMotion = true
			}

			return app.Run(ctx, cfg)
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and terminal capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configPath, err := config.GetConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config: %s\n%s\n", configPath, configJson)
			fmt.Fprintf(out, "Log: %s\n", log.FileName())
			fmt.Fprintf(out, "Terminal: tty=%t colors=%s\n", isTTY(), colorProfile(termenv.NewOutput(os.Stdout).ColorProfile()))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dropdown",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dropdown version %s\n", version)
		},
	}
)

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorProfile(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "none"
	}
}

func init() {
	rootCmd.Flags().BoolVar(&reduceMotionFlag, "reduce-motion", false,
		"Skip expand and collapse animations")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
