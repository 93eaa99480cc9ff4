package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lincolnpuzey/fourth"
)

// datetime is a parsed command-line argument of either kind.
type datetime struct {
	local fourth.LocalDatetime
	utc   fourth.UTCDatetime
	isUTC bool
}

// parseArg parses s as ISO 8601, or with format when it is set. Text with
// an offset becomes a UTC datetime and text without one a local datetime.
func parseArg(s, format string) (datetime, error) {
	if format == "" {
		l, err := fourth.LocalFromISOFormat(s)
		if errors.Is(err, fourth.ErrAware) {
			u, err := fourth.UTCFromISOFormat(s)
			return datetime{utc: u, isUTC: true}, err
		}
		return datetime{local: l}, err
	}
	l, err := fourth.LocalStrptime(s, format)
	if errors.Is(err, fourth.ErrAware) {
		u, err := fourth.UTCStrptime(s, format)
		return datetime{utc: u, isUTC: true}, err
	}
	return datetime{local: l}, err
}

func (a *app) print(cmd *cobra.Command, d datetime) {
	if d.isUTC {
		fmt.Fprintln(cmd.OutOrStdout(), d.utc.ISOFormat(a.sep, a.spec))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), d.local.ISOFormat(a.sep, a.spec))
	}
}

// convert turns a local datetime into UTC in the configured zone, or the
// reverse.
func (a *app) convert(d datetime) (datetime, error) {
	if d.isUTC {
		l, err := d.utc.ToLocal(a.zone)
		return datetime{local: l}, err
	}
	u, err := d.local.ToUTC(a.zone)
	return datetime{utc: u, isUTC: true}, err
}

func (a *app) nowCmd() *cobra.Command {
	var utc bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current local or UTC datetime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := fourth.UTCNow()
			if utc {
				a.print(cmd, datetime{utc: u, isUTC: true})
				return nil
			}
			l, err := u.ToLocal(a.zone)
			if err != nil {
				return err
			}
			a.print(cmd, datetime{local: l})
			return nil
		},
	}
	cmd.Flags().BoolVar(&utc, "utc", false, "print UTC instead of the local wall clock")
	return cmd
}

func (a *app) parseCmd() *cobra.Command {
	var (
		format  string
		convert bool
	)
	cmd := &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse a datetime and print it in ISO 8601 form",
		Long: `Parse a datetime and print it in ISO 8601 form.

TEXT is ISO 8601 unless --format gives a strptime format. Text with a UTC
offset (or %z) is a UTC datetime and is printed in UTC; text without one
is a local datetime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseArg(args[0], format)
			if err != nil {
				return err
			}
			a.log.Debug().Str("text", args[0]).Bool("utc", d.isUTC).Msg("parsed")
			if convert {
				if d, err = a.convert(d); err != nil {
					return err
				}
			}
			a.print(cmd, d)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "strptime format of TEXT")
	cmd.Flags().BoolVar(&convert, "convert", false, "convert between local (in --zone) and UTC")
	return cmd
}

func (a *app) formatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format TEXT FORMAT",
		Short: "Format an ISO 8601 datetime with a strftime format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseArg(args[0], "")
			if err != nil {
				return err
			}
			out := d.local.Strftime(args[1])
			if d.isUTC {
				out = d.utc.Strftime(args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return cmd
}

func (a *app) diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Print the span A-B between two datetimes of the same kind",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseArg(args[0], "")
			if err != nil {
				return err
			}
			y, err := parseArg(args[1], "")
			if err != nil {
				return err
			}
			var d fourth.Delta
			switch {
			case x.isUTC && y.isUTC:
				d = x.utc.Sub(y.utc)
			case !x.isUTC && !y.isUTC:
				d = x.local.Sub(y.local)
			default:
				return errors.New("cannot subtract a local datetime and a UTC datetime")
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}
	return cmd
}

func (a *app) timestampCmd() *cobra.Command {
	var local bool
	cmd := &cobra.Command{
		Use:   "timestamp SECONDS",
		Short: "Print the UTC datetime of a Unix timestamp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			u, err := fourth.UTCFromTimestamp(ts)
			if err != nil {
				return err
			}
			d := datetime{utc: u, isUTC: true}
			if local {
				if d, err = a.convert(d); err != nil {
					return err
				}
			}
			a.print(cmd, d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "print the wall clock in --zone instead of UTC")
	return cmd
}
