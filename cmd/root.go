package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/espeer/zep-kvs/cmd/kv"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "zep-kvs",
		Short: "typed key-value persistence",
		Long: fmt.Sprintf(`zep-kvs (v%s)

A small typed key-value persistence library and CLI. Values live in a
per-scope store (ephemeral, user or machine) keyed by an application
identity, with crash-safe on-disk storage for the durable scopes.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of zep-kvs",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zep-kvs v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
