package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/MarcGrol/walletbuttons/lib/mycontext"
)

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		New = newGcloudLogger
		// Cloud Logging only parses lines that are pure JSON and adds its own timestamp.
		log.SetFlags(0)
	}
}

// Cloud Logging knows WARNING, not WARN
var cloudSeverities = map[Severity]string{
	SeverityDebug: "DEBUG",
	SeverityInfo:  "INFO",
	SeverityWarn:  "WARNING",
	SeverityError: "ERROR",
}

type structuredLogger struct {
	componentName string
}

func newGcloudLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
	}
}

func (l structuredLogger) Log(c context.Context, traceLabel string, severity Severity, format string, a ...any) {
	log.Println(l.newEntry(c, traceLabel, severity, fmt.Sprintf(format, a...)).String())
}

func (l structuredLogger) newEntry(c context.Context, traceLabel string, severity Severity, msg string) entry {
	e := entry{
		Component: l.componentName,
		Trace:     mycontext.TraceFromContext(c),
		Severity:  cloudSeverities[severity],
		Message:   msg,
	}
	if traceLabel != "" {
		e.Labels = map[string]string{"label": traceLabel}
	}
	if e.Severity == "" {
		e.Severity = "DEFAULT"
	}
	return e
}

type entry struct {
	Component string            `json:"component,omitempty"`
	Labels    map[string]string `json:"logging.googleapis.com/labels,omitempty"`
	Trace     string            `json:"logging.googleapis.com/trace,omitempty"`
	Severity  string            `json:"severity"`
	Message   string            `json:"message"`
}

func (e entry) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("error marshalling log entry: %v", err)
	}

	return string(out)
}
