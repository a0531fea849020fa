package job

import (
	"fmt"

	"github.com/rs/zerolog"
)

// asynqLogger routes asynq's internal logging into zerolog.
type asynqLogger struct {
	log *zerolog.Logger
}

func newAsynqLogger(log *zerolog.Logger) *asynqLogger {
	l := log.With().Str("component", "asynq").Logger()
	return &asynqLogger{log: &l}
}

func (l *asynqLogger) Debug(args ...interface{}) { l.log.Debug().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Info(args ...interface{})  { l.log.Info().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Warn(args ...interface{})  { l.log.Warn().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Error(args ...interface{}) { l.log.Error().Msg(fmt.Sprint(args...)) }
func (l *asynqLogger) Fatal(args ...interface{}) { l.log.Fatal().Msg(fmt.Sprint(args...)) }
