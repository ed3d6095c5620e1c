package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

// Format represents the logging output format
type Format int

const (
	FormatConsole Format = iota + 1
	FormatJSON
)

var (
	levels = map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	formats = map[string]Format{
		"console": FormatConsole,
		"json":    FormatJSON,
	}
)

// ParseLevel converts a level name such as "debug" to slog.Level
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levels[strings.ToLower(name)]
	if !ok {
		return slog.LevelInfo, goerr.New("invalid log level",
			goerr.V("level", name),
			goerr.V("valid_levels", []string{"debug", "info", "warn", "error"}),
		)
	}
	return level, nil
}

// ParseFormat converts "console" or "json" to Format
func ParseFormat(name string) (Format, error) {
	format, ok := formats[strings.ToLower(name)]
	if !ok {
		return FormatConsole, goerr.New("invalid log format",
			goerr.V("format", name),
			goerr.V("valid_formats", []string{"console", "json"}),
		)
	}
	return format, nil
}

var setDefaultMu sync.Mutex

// SetDefault installs logger as the slog default
func SetDefault(logger *slog.Logger) {
	setDefaultMu.Lock()
	defer setDefaultMu.Unlock()
	slog.SetDefault(logger)
}

// Quiet installs and returns a logger that drops everything below error
func Quiet() *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	SetDefault(logger)
	return logger
}

// New creates a logger writing to w. Secrets in logged structs are masked in both formats.
func New(w io.Writer, level slog.Level, format Format, stacktrace bool) *slog.Logger {
	filter := secretFilter()

	switch format {
	case FormatConsole:
		hook := clog.GoerrHook
		if !stacktrace {
			hook = flattenGoerr
		}
		return slog.New(clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithReplaceAttr(filter),
			clog.WithAttrHook(hook),
			clog.WithColorMap(consoleColors()),
		))

	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		}))

	default:
		panic(fmt.Sprintf("unsupported log format: %d", format))
	}
}

// secretFilter masks credential fields: the vendor API key, database DSNs
// and anything tagged `masq:"secret"`.
func secretFilter() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithTag("secret"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("password_"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("Password"),
		masq.WithFieldName("APIKey"),
		masq.WithFieldName("DSN"),
	)
}

func consoleColors() *clog.ColorMap {
	return &clog.ColorMap{
		Level: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgGreen, color.Bold),
			slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
			slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
		LevelDefault: color.New(color.FgBlue, color.Bold),
		Time:         color.New(color.FgWhite),
		Message:      color.New(color.FgHiWhite),
		AttrKey:      color.New(color.FgHiCyan),
		AttrValue:    color.New(color.FgHiWhite),
	}
}

// flattenGoerr renders a goerr error as a group of its values, message and cause,
// leaving the stacktrace out
func flattenGoerr(_ []string, attr slog.Attr) *clog.HandleAttr {
	goErr, ok := attr.Value.Any().(*goerr.Error)
	if !ok {
		return nil
	}

	var attrs []any
	for k, v := range goErr.Values() {
		attrs = append(attrs, slog.Any(k, v))
	}
	attrs = append(attrs, slog.String("message", goErr.Error()))
	if cause := goErr.Unwrap(); cause != nil {
		attrs = append(attrs, slog.Any("cause", cause))
	}

	group := slog.Group(attr.Key, attrs...)
	return &clog.HandleAttr{NewAttr: &group}
}
