package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lqviet/uuidv7"
)

func newNewCommand(a *app) *cobra.Command {
	var (
		count int
		at    string
	)

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			var (
				ids []uuidv7.UUID
				err error
			)
			if at == "" {
				ids, err = a.gen.NewBatchContext(ctx, count)
			} else {
				var ms int64
				if ms, err = parseTimeArg(at); err != nil {
					return err
				}
				ids = make([]uuidv7.UUID, 0, count)
				for range count {
					var id uuidv7.UUID
					if id, err = a.gen.NewWithTimestampContext(ctx, ms); err != nil {
						break
					}
					ids = append(ids, id)
					// exhaustion moves the generator forward; follow it
					ms = max(ms, id.Timestamp())
				}
			}
			if err != nil {
				return err
			}

			a.logger.Debug("generated identifiers", zap.Int("count", len(ids)))
			lines := idStrings(ids)
			return render(cmd.OutOrStdout(), a.cfg.Output, lines, func(w io.Writer) error {
				return writeLines(w, lines)
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to generate")
	cmd.Flags().StringVar(&at, "at", "", "embed this time instead of now (RFC 3339 or Unix milliseconds)")
	return cmd
}

func newAfterCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "after ID",
		Short: "Generate an identifier that sorts after ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			id, err := a.gen.NewAfterContext(ctx, prev)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, id.String(), func(w io.Writer) error {
				_, err := fmt.Fprintln(w, id)
				return err
			})
		},
	}
}

// parseTimeArg accepts Unix milliseconds or an RFC 3339 timestamp.
func parseTimeArg(s string) (int64, error) {
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ms, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: want RFC 3339 or Unix milliseconds", s)
	}
	return t.UnixMilli(), nil
}
