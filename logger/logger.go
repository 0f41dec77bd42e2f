package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const TIME_FORMAT = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once
var Log zerolog.Logger

/*
 * Logs go to stderr, stdout is reserved for computed paths.
 */
func configureLogger() {
	zerolog.TimeFieldFormat = TIME_FORMAT

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: TIME_FORMAT,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(configureLogger)
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(configureLogger)
	return &Log
}
