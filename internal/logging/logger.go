package logging

import (
	"io"
	"os"
	"strings"

	"github.com/2beens/gymprs/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFileMaxSizeMB = 50

type LoggerSetupParams struct {
	LogFileName      string
	LogFileMaxSizeMB int
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger. The returned func flushes
// sentry and closes the log file; call it on shutdown.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	sentryOn := false
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			sentryOn = true
			logrus.Infoln("Sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	var logFile io.Closer
	cleanup := func() {
		if sentryOn {
			sentry.Flush(sentryFlushTimeout)
		}
		if logFile != nil {
			_ = logFile.Close()
		}
	}

	if params.LogFileName == "" {
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
		return cleanup
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}
	if params.LogFileMaxSizeMB <= 0 {
		params.LogFileMaxSizeMB = defaultLogFileMaxSizeMB
	}

	// rotated files are kept, no MaxBackups / MaxAge
	lumberJackLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   params.LogFileMaxSizeMB,
		LocalTime: false, // UTC
		Compress:  true,
	}
	logFile = lumberJackLogger

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		logrus.SetOutput(pkg.NewFanoutWriter(os.Stdout, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}

	logrus.Debugf("logging to [%s], rotating at %d MB", params.LogFileName, params.LogFileMaxSizeMB)
	return cleanup
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
