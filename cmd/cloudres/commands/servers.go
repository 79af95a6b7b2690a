package commands

import (
	"github.com/fivetwenty-io/cloudres/pkg/compute"
	"github.com/spf13/cobra"
)

// NewServersCommand creates the servers command group.
func NewServersCommand() *cobra.Command {
	return newCollectionCommand(collectionCommandConfig{
		Collection: compute.ServersCollection,
		Aliases:    []string{"server"},
		Columns:    []string{"id", "name", "status"},
	})
}

// NewFlavorsCommand creates the flavors command group.
func NewFlavorsCommand() *cobra.Command {
	return newCollectionCommand(collectionCommandConfig{
		Collection: compute.FlavorsCollection,
		Aliases:    []string{"flavor"},
		Columns:    []string{"id", "name", "ram", "vcpus", "disk"},
	})
}
