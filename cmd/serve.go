package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	mcpserver "github.com/mkress81/arbscout/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "Starting ArbScout MCP server on stdio...")

	if err := mcpserver.Serve(buildEngine); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return nil
}
