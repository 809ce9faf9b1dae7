package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lqviet/uuidv7"
)

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID...",
		Short: "Show the timestamp, sequence and validity of identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]inspection, len(args))
			for i, s := range args {
				results[i] = inspect(s)
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, results, func(w io.Writer) error {
				for _, in := range results {
					if err := in.text(w); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate ID...",
		Short: "Check that identifiers are UUIDv7 values",
		Long:  "Check that identifiers are UUIDv7 values. Exits non-zero if any is not.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]inspection, len(args))
			invalid := 0
			for i, s := range args {
				results[i] = inspect(s)
				if !results[i].Valid {
					invalid++
					a.logger.Debug("invalid identifier", zap.String("id", s), zap.String("reason", results[i].Error))
				}
			}

			err := render(cmd.OutOrStdout(), a.cfg.Output, results, func(w io.Writer) error {
				for _, in := range results {
					if err := in.text(w); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return errInvalidIDs
			}
			return nil
		},
	}
}

func newRangeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "range START END",
		Short: "Print the boundary identifiers for a time range",
		Long: "Print the smallest and largest identifiers for the inclusive range START..END. " +
			"Times are RFC 3339 or Unix milliseconds. The bounds suit a BETWEEN query on an identifier column.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			startMs, err := parseTimeArg(args[0])
			if err != nil {
				return err
			}
			endMs, err := parseTimeArg(args[1])
			if err != nil {
				return err
			}

			r := uuidv7.NewTimeRangeMillis(startMs, endMs)
			out := rangeBounds{
				Start:   r.Start.String(),
				End:     r.End.String(),
				StartMs: r.Start.Timestamp(),
				EndMs:   r.End.Timestamp(),
			}
			return render(cmd.OutOrStdout(), a.cfg.Output, out, func(w io.Writer) error {
				return writeLines(w, []string{out.Start, out.End})
			})
		},
	}
}
