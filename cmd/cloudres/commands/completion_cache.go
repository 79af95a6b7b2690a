package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/completion"
	"github.com/spf13/cobra"
)

// NewCompletionCacheCommand creates the completion-cache command group.
func NewCompletionCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion-cache",
		Short: "Inspect the completion cache",
		Long: `Inspect and clear the identifiers recorded for shell completion.

Values are grouped by resource collection (servers, flavors) and kind (uuid, human_id).`,
	}

	cmd.AddCommand(newCompletionCacheListCommand())
	cmd.AddCommand(newCompletionCacheClearCommand())

	return cmd
}

func newCompletionCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list RESOURCE KIND",
		Short: "List cached values",
		Long:  "List the cached values of one kind (uuid or human_id) for a resource collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := completion.ParseKind(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q", constants.ErrInvalidCacheKind, args[1])
			}

			ctx := commandContext(cmd)

			cache, closeCache, err := openCompletionCache(ctx)
			defer closeCache()

			if err != nil {
				return err
			}

			values, err := cache.List(ctx, args[0], kind)
			if err != nil {
				return fmt.Errorf("listing completion cache: %w", err)
			}

			return render(cmd, values, func(out io.Writer) error {
				if len(values) == 0 {
					return nil
				}

				_, err := io.WriteString(out, strings.Join(values, "\n")+"\n")

				return err
			})
		},
	}
}

func newCompletionCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear RESOURCE",
		Short: "Clear cached values",
		Long:  "Remove every cached value of a resource collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			cache, closeCache, err := openCompletionCache(ctx)
			defer closeCache()

			if err != nil {
				return err
			}

			err = cache.Clear(ctx, args[0])
			if err != nil {
				return fmt.Errorf("clearing completion cache: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Cleared completion cache for %s\n", args[0])

			return nil
		},
	}
}
