package log

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/regressio/regressio/pkg/errors"
)

// UseZerologWarnings routes library warnings (DegenerateDataWarning,
// UndefinedMetricWarning, ...) through a zerolog console logger. Warning
// types that implement zerolog.LogObjectMarshaler are logged with their
// structured fields.
func UseZerologWarnings() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := logger.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(warning.Error())
	})
}
