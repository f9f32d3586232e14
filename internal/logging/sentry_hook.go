package logging

import (
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const sentryFlushTimeout = 2 * time.Second

// SentryHook forwards log entries of the given levels to sentry, as
// exceptions when the entry carries an error field and as messages otherwise.
type SentryHook struct {
	levels  []logrus.Level
	capture func(event *sentry.Event)
	flush   func(timeout time.Duration) bool
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
		capture: func(event *sentry.Event) {
			sentry.CaptureEvent(event)
		},
		flush: sentry.Flush,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time

	extra := make(map[string]any, len(entry.Data))
	for k, v := range entry.Data {
		if err, ok := v.(error); ok && k == logrus.ErrorKey {
			event.Exception = []sentry.Exception{{
				Type:  errorType(err),
				Value: err.Error(),
			}}
			continue
		}
		extra[k] = v
	}
	event.Extra = extra

	h.capture(event)

	// the process is about to exit
	if entry.Level <= logrus.FatalLevel {
		h.flush(sentryFlushTimeout)
	}
	return nil
}

func errorType(err error) string {
	if unwrapped := errors.Unwrap(err); unwrapped != nil {
		return unwrapped.Error()
	}
	return "error"
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
