package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nuposix/nuposix/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"json"    enum:"json,text"             help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                              help:"Set timestamp format."`
	Caller     bool      `default:"false"                                help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                 help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) (stop func()) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)

	return func() {}
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the
// command line.
//
// While logFormat and logLevel implement encoding.TextUnmarshaler to
// configure the logger as flags are parsed, boolean flags like
// --log-pretty don't go through that interface.
func (f *logConfig) scan(args []string) {
	value := func(i int, name string) (string, bool) {
		arg := args[i]

		if v, ok := strings.CutPrefix(arg, name+"="); ok {
			return v, true
		}

		if arg == name && i+1 < len(args) {
			return args[i+1], true
		}

		return "", false
	}

	for i, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--log-level"):
			if v, ok := value(i, "--log-level"); ok {
				log.Config(log.WithLevel(log.ParseLevel(v)))
			}

		case strings.HasPrefix(arg, "--log-format"):
			if v, ok := value(i, "--log-format"); ok {
				log.Config(log.WithFormat(log.ParseFormat(v)))
			}

		case arg == "--log-pretty":
			log.Config(log.WithPretty(true))

		case arg == "--no-log-pretty":
			log.Config(log.WithPretty(false))

		case arg == "--log-caller":
			log.Config(log.WithCaller(true))

		case arg == "--no-log-caller":
			log.Config(log.WithCaller(false))
		}
	}
}
