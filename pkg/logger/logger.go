package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config параметры логгера.
type Config struct {
	Env   string // development -> читаемая консоль; production -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger обёртка над zerolog для инъекции и единообразия.
type Logger struct {
	zl zerolog.Logger
}

// New создаёт структурный логгер. В development — читаемый вывод, иначе JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Перенаправляем глобальный логгер zerolog для библиотек, которые им пользуются
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error делегируются zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With создаёт sublogger с фиксированными полями.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog отдаёт внутренний логгер, если нужен прямой API.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
