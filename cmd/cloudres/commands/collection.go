package commands

import (
	"fmt"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/compute"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
	"github.com/spf13/cobra"
)

// collectionCommandConfig describes a read-only command group for one
// collection.
type collectionCommandConfig struct {
	Collection compute.Collection
	Aliases    []string
	Columns    []string
}

func newCollectionCommand(config collectionCommandConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:     config.Collection.Plural,
		Aliases: config.Aliases,
		Short:   "Browse " + config.Collection.Plural,
		Long:    fmt.Sprintf("List and show %s of the compute API", config.Collection.Plural),
	}

	cmd.AddCommand(newCollectionListCommand(config))
	cmd.AddCommand(newCollectionShowCommand(config))

	return cmd
}

func newCollectionListCommand(config collectionCommandConfig) *cobra.Command {
	var (
		detail      bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + config.Collection.Plural,
		Long:  fmt.Sprintf("List all %s. With --detail every entry is reloaded in full.", config.Collection.Plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, closeClient, err := newComputeClient(ctx)
			defer closeClient()

			if err != nil {
				return err
			}

			manager, err := client.Manager(config.Collection.Plural)
			if err != nil {
				return err
			}

			resources, err := manager.List(ctx)
			if err != nil {
				return err
			}

			if detail {
				_, err = compute.ReloadAll(ctx, resources, concurrency)
				if err != nil {
					return fmt.Errorf("reloading %s: %w", config.Collection.Plural, err)
				}
			}

			return renderResourceList(cmd, resources, config.Columns)
		},
	}

	cmd.Flags().BoolVar(&detail, "detail", false, "reload every entry to show full details")
	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "concurrent reloads with --detail")

	return cmd
}

func newCollectionShowCommand(config collectionCommandConfig) *cobra.Command {
	var reload bool

	cmd := &cobra.Command{
		Use:   "show ID_OR_NAME",
		Short: "Show " + config.Collection.Singular + " details",
		Long: fmt.Sprintf("Display every attribute of a %s, found by id, name or human id",
			config.Collection.Singular),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			client, closeClient, err := newComputeClient(ctx)
			defer closeClient()

			if err != nil {
				return err
			}

			manager, err := client.Manager(config.Collection.Plural)
			if err != nil {
				return err
			}

			res, err := manager.Find(ctx, args[0])
			if err != nil {
				return err
			}

			err = loadDetails(cmd, res, reload)
			if err != nil {
				return err
			}

			return renderResourceDetails(cmd, res)
		},
	}

	cmd.Flags().BoolVar(&reload, "reload", false, "re-fetch the entity before showing it")

	return cmd
}

// loadDetails makes sure a resource found through a list summary carries its
// full attributes.
func loadDetails(cmd *cobra.Command, res *resource.Resource, reload bool) error {
	ctx := commandContext(cmd)

	if reload {
		return res.Reload(ctx)
	}

	if res.Loaded() {
		return nil
	}

	return res.Get(ctx)
}
