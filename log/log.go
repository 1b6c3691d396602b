// SPDX-License-Identifier: ice License 1.0

package log

import (
	"io"
	"os"
	"strings"
	stdlibtime "time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/ice-blockchain/chrono/config"
)

var (
	//nolint:gochecknoglobals // One logger for the whole app.
	logger zerolog.Logger
)

//nolint:gochecknoinits // The logger is global, it can be initialized in an init.
func init() {
	var appCfg cfg
	config.MustLoadFromKey("logger", &appCfg)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign // Called by an init.
	zerolog.TimeFieldFormat = stdlibtime.RFC3339Nano
	zerolog.TimestampFunc = func() stdlibtime.Time {
		return stdlibtime.Now().UTC()
	}

	var logWriter io.Writer = os.Stderr
	if !strings.EqualFold(appCfg.Encoder, "json") {
		logWriter = &zerolog.ConsoleWriter{Out: logWriter, TimeFormat: stdlibtime.RFC3339Nano}
	}
	level, err := zerolog.ParseLevel(appCfg.Level)
	if err != nil {
		panic(errors.Wrapf(err, "invalid logger level %q", appCfg.Level))
	}
	logger = zerolog.New(logWriter).With().Timestamp().Stack().Logger().Level(level)
}

func Debug(msg string, fields ...any) {
	event := logger.Debug()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func Info(msg string, fields ...any) {
	event := logger.Info()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func Warn(msg string, fields ...any) {
	event := logger.Warn()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Msg(msg)
}

func Error(err error, fields ...any) {
	if err == nil {
		return
	}
	event := logger.Err(err)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Send()
}

// Panic is a no-op for a nil error, which makes it the natural guard behind
// the Unsafe* fast paths.
func Panic(err error, fields ...any) {
	if err == nil {
		return
	}
	event := logger.Panic()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Err(err).Send()
}

func Fatal(err error, fields ...any) {
	if err == nil {
		return
	}
	event := logger.Fatal()
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	event.Err(err).Send()
}
