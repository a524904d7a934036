package mylog

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
	sugar         *zap.SugaredLogger
}

func newStandardLogger(componentName string) Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		// zap only fails on a broken config; fall back to a no-op core
		logger = zap.NewNop()
	}

	return standardLogger{
		componentName: componentName,
		sugar:         logger.Sugar().Named(componentName),
	}
}

func (l standardLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fields := []any{"label", traceLabel}

	switch severity {
	case SeverityDebug:
		l.sugar.Debugw(msg, fields...)
	case SeverityWarn:
		l.sugar.Warnw(msg, fields...)
	case SeverityError:
		l.sugar.Errorw(msg, fields...)
	default:
		l.sugar.Infow(msg, fields...)
	}
}
