// Package cli implements the iota command, which prints the values of a sequence.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"

	"go.llib.dev/iota/internal/config"
	"go.llib.dev/iota/pkg/cursorkit"
	"go.llib.dev/iota/pkg/iotakit"
)

const (
	ErrUsage     errorkit.Error = "iota: invalid usage"
	ErrUnbounded errorkit.Error = "iota: infinite sequence needs a --limit in this format"
)

type options struct {
	config.Config
	Limit int64
	Skip  int64
	Until string
}

func (o options) logger(w io.Writer) *logging.Logger {
	return &logging.Logger{Out: w, Level: logging.Level(o.LogLevel)}
}

// Execute runs the iota command with args, and logs the error when the command fails.
func Execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) error {
	cmd, opts := newCommand(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		opts.logger(stderr).Error(ctx, "iota failed", logging.ErrField(err))
		return err
	}
	return nil
}

func NewCommand(cfg config.Config) *cobra.Command {
	cmd, _ := newCommand(cfg)
	return cmd
}

func newCommand(cfg config.Config) (*cobra.Command, *options) {
	opts := &options{Config: cfg, Limit: -1}
	cmd := &cobra.Command{
		Use:   "iota [flags] FROM [TO]",
		Short: "Print the successive values starting from FROM",
		Long: `Print the successive values starting from FROM.

When TO is given, the sequence ends with TO.
With --until, the sequence ends right before the given value.
Otherwise it is infinite.
An infinite sequence printed to a terminal is cut after IOTA_TTY_LIMIT values,
unless --limit tells otherwise.

Negative numbers have to follow a "--" argument, like: iota -- -3 3

Supported types: ` + strings.Join(TypeNames(), ", "),
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	registerFlags(cmd.Flags(), opts)
	return cmd, opts
}

func registerFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.Type, "type", "t", opts.Type, "the type of the values")
	fs.Int64VarP(&opts.Limit, "limit", "n", opts.Limit, "print at most this many values, a negative number means no limit")
	fs.Int64Var(&opts.Skip, "skip", opts.Skip, "skip this many values from the start")
	fs.StringVar(&opts.Until, "until", opts.Until, "end the sequence right before this value, instead of a TO argument")
	fs.StringVarP(&opts.Format, "format", "o", opts.Format, "output format: text, json or yaml")
	fs.StringVar(&opts.Separator, "separator", opts.Separator, "written between the values in text format")
	fs.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "debug, info, warn or error")
}

func (o options) run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	if err := o.Validate(); err != nil {
		return ErrUsage.Wrap(err)
	}
	if o.Skip < 0 {
		return ErrUsage.F("--skip must not be negative: %d", o.Skip)
	}
	gen, ok := generators[o.Type]
	if !ok {
		return ErrUsage.F("unknown type: %s", o.Type)
	}
	ctx = logging.ContextWith(ctx, logging.Field("type", o.Type))
	return gen.generate(ctx, stdout, o, args, o.logger(stderr))
}

type generator interface {
	generate(ctx context.Context, out io.Writer, o options, args []string, log *logging.Logger) error
}

type sequence[T any] struct {
	parse func(string) (T, error)
	// present maps a value to what gets printed, when nil the value itself is printed.
	present func(T) any
	// reachable reports if the successors of from ever reach to.
	// When nil, every bound is considered reachable.
	reachable func(from, to T) bool
}

func (s sequence[T]) cursor(args []string, until string) (cursorkit.Cursor[T], error) {
	from, err := s.parse(args[0])
	if err != nil {
		return nil, err
	}
	if until != "" {
		if len(args) == 2 {
			return nil, ErrUsage.F("TO and --until can't be used together")
		}
		bound, err := s.bound(args[0], from, until)
		if err != nil {
			return nil, err
		}
		return iotakit.FromUntil(from, bound), nil
	}
	if len(args) < 2 {
		return iotakit.From(from), nil
	}
	to, err := s.bound(args[0], from, args[1])
	if err != nil {
		return nil, err
	}
	return iotakit.FromTo(from, to), nil
}

// bound parses raw as the bound of a sequence that starts with from.
func (s sequence[T]) bound(rawFrom string, from T, raw string) (T, error) {
	to, err := s.parse(raw)
	if err != nil {
		return to, err
	}
	if s.reachable != nil && !s.reachable(from, to) {
		return to, ErrUsage.F("%s is never reached from %s", raw, rawFrom)
	}
	return to, nil
}

func (s sequence[T]) generate(ctx context.Context, out io.Writer, o options, args []string, log *logging.Logger) error {
	cur, err := s.cursor(args, o.Until)
	if err != nil {
		return err
	}

	d, _ := iotakit.Describe(cur)
	log.Debug(ctx, "sequence created",
		logging.Field("tier", d.Tier.String()),
		logging.Field("difference", d.Difference.String()),
		logging.Field("path", d.Path.String()))

	limit := o.Limit
	if limit < 0 && d.Path == iotakit.Unbounded && isTerminal(out) {
		limit = int64(o.TTYLimit)
		log.Debug(ctx, "infinite sequence is cut on a terminal", logging.Field("limit", humanize.Comma(limit)))
	}
	if limit < 0 && d.Path == iotakit.Unbounded && o.Format != "text" {
		return ErrUnbounded
	}

	cursorkit.Skip(cur, o.Skip)
	if 0 <= limit {
		cur = cursorkit.Take(cur, limit)
	}

	n, err := write(ctx, out, o, s.values(cur))
	if err != nil {
		return err
	}
	log.Debug(ctx, "sequence written", logging.Field("count", humanize.Comma(n)))
	return nil
}

func (s sequence[T]) values(cur cursorkit.Cursor[T]) iter.Seq[any] {
	return iterkit.Map(cursorkit.Seq(cur), func(v T) any {
		if s.present != nil {
			return s.present(v)
		}
		return v
	})
}

func write(ctx context.Context, w io.Writer, o options, values iter.Seq[any]) (int64, error) {
	switch o.Format {
	case "json":
		vs := iterkit.Collect(values)
		return int64(len(vs)), json.NewEncoder(w).Encode(vs)
	case "yaml":
		vs := iterkit.Collect(values)
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(vs); err != nil {
			return 0, err
		}
		return int64(len(vs)), enc.Close()
	default:
		return writeText(ctx, w, o.Separator, values)
	}
}

// writeText writes the values with sep between them, and ends the output with a line break.
// It stops early when ctx is done, since the values might never run out.
func writeText(ctx context.Context, w io.Writer, sep string, values iter.Seq[any]) (int64, error) {
	var n int64
	for v := range values {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if 0 < n {
			if _, err := io.WriteString(w, sep); err != nil {
				return n, err
			}
		}
		if _, err := fmt.Fprint(w, v); err != nil {
			return n, err
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}
	end := "\n"
	if strings.HasSuffix(sep, "\n") {
		end = sep
	}
	_, err := io.WriteString(w, end)
	return n, err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
