package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "userd",
	Short: "User service with streaming retrieval",
	Long: `userd serves the user resource over gRPC and ships a small client
for poking at a running instance.`,
	SilenceUsage: true,
}

// Execute runs the root command with a context that cancels on SIGINT or
// SIGTERM, so both the server and long-lived client streams shut down when
// the process is told to stop.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
