// Package main provides the dalil CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalil-ai/dalil/cli"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	providerName string
	modelName    string
)

func main() {
	// Load .env file if present (ignore "file not found" errors)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file: %v\n", err)
		}
	}

	rootCmd := &cobra.Command{
		Use:   "dalil",
		Short: "Arabic-first request understanding and orchestration",
		Long: `dalil understands Arabic and English requests: it classifies intent,
extracts entities, tracks conversation context and plans which model and
tools should handle each request.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show verbose output")
	rootCmd.PersistentFlags().StringVarP(&providerName, "provider", "p", "", "Live generation provider (openai, anthropic, deepseek, gemini)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "Model for the live provider (default per provider)")

	rootCmd.AddCommand(askCmd())
	rootCmd.AddCommand(chatCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(modelsCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func options() cli.Options {
	return cli.Options{
		Verbose:  verbose,
		Provider: providerName,
		Model:    modelName,
	}
}

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [request]",
		Short: "Process a single request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Ask(context.Background(), args[0], options())
		},
	}
}

func chatCmd() *cobra.Command {
	var archivePath string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive bilingual session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Chat(context.Background(), archivePath, options())
		},
	}

	cmd.Flags().StringVar(&archivePath, "db", "conversations.db", "Archive path for transcript export")
	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show system status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Status(context.Background())
		},
	}
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the model catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Models(context.Background())
		},
	}
}

func exportCmd() *cobra.Command {
	var archivePath string
	var sessionID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "List archived sessions or print one transcript",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Export(context.Background(), archivePath, sessionID)
		},
	}

	cmd.Flags().StringVar(&archivePath, "db", "conversations.db", "Archive path")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to print")
	return cmd
}
