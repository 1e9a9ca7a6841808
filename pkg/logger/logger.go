package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger options loaded from the service config file.
type Config struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

var global zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger configures the process-wide logger. Safe to call once at startup.
func InitGlobalLogger(cfg *Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var w = os.Stderr
	logger := zerolog.New(w)
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	global = logger.Level(level).With().Timestamp().Logger()
}

func Info(msg string, kv ...any) {
	global.Info().Fields(fields(kv)).Msg(msg)
}

func Warn(msg string, kv ...any) {
	global.Warn().Fields(fields(kv)).Msg(msg)
}

func Error(msg string, kv ...any) {
	global.Error().Fields(fields(kv)).Msg(msg)
}

func Debug(msg string, kv ...any) {
	global.Debug().Fields(fields(kv)).Msg(msg)
}

// fields turns a flat key/value list into a map zerolog can render.
// An odd trailing key is kept with an empty value rather than dropped.
func fields(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}

	m := make(map[string]any, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		if i+1 < len(kv) {
			m[key] = kv[i+1]
		} else {
			m[key] = ""
		}
	}

	return m
}
