package kv

import (
	"github.com/spf13/cobra"

	"github.com/espeer/zep-kvs/cmd/util"
	"github.com/espeer/zep-kvs/lib/kvs"
	"github.com/espeer/zep-kvs/lib/kvs/instrument"
)

var (
	store *kvs.KeyValueStore

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Perform key-value store operations",
		PersistentPreRunE:  setupStore,
		PersistentPostRunE: teardownStore,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add the store selection flags to the KV command
	util.SetupStoreFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(hasCmd)
	KeyValueCommands.AddCommand(keysCmd)
}

// setupStore opens the backing store for the configured scope and identity
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	id, err := util.GetIdentity()
	if err != nil {
		return err
	}

	s, err := util.GetScope()
	if err != nil {
		return err
	}

	backend, err := s.NewStore(id)
	if err != nil {
		return err
	}

	store = kvs.New(instrument.New(s.String(), backend))
	return nil
}

// teardownStore releases the store opened by setupStore
func teardownStore(_ *cobra.Command, _ []string) error {
	if store == nil {
		return nil
	}
	return store.Close()
}
