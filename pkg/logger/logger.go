// Package logger holds the process-wide zerolog logger of the board.
//
// Call Init once from main. Packages that need a logger take a zerolog.Logger in their
// constructor; Component derives one tagged with the part of the app it belongs to.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger.
type Options struct {
	// Level is one of trace, debug, info, warn, error. Anything else means info.
	Level string
	// Pretty switches to the coloured console writer. Production emits JSON lines.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service and Env are stamped on every line when set.
	Service string
	Env     string
}

var (
	mu   sync.RWMutex
	once sync.Once
	root *zerolog.Logger
)

// Init builds the root logger. Later calls return the logger built by the first one.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		ctx := zerolog.New(out).Level(lvl).With().Timestamp()
		if opts.Service != "" {
			ctx = ctx.Str("service", opts.Service)
		}
		if opts.Env != "" {
			ctx = ctx.Str("env", opts.Env)
		}
		l := ctx.Logger()

		mu.Lock()
		root = &l
		mu.Unlock()
	})
	return Get()
}

// Get returns the root logger and panics when Init has not run.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if root == nil {
		panic("logger: Get called before Init")
	}
	return *root
}

// Component returns the root logger with a "component" field, e.g. "sessions" or "events".
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset forgets the root logger so tests can call Init again.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	once = sync.Once{}
	root = nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}
