package testing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sanodmendis/ShuffleRooster/types"
)

// NewTestLogger returns a logger that writes to the test log as
// "LEVEL: msg key=value ...". Fatal fails the test.
func NewTestLogger(tb testing.TB) types.Logger {
	return &testLogger{tb: tb}
}

type testLogger struct {
	tb testing.TB
}

var _ types.Logger = (*testLogger)(nil)

func (l *testLogger) Debug(msg string, keysAndValues ...any) { l.log("DEBUG", msg, keysAndValues) }
func (l *testLogger) Info(msg string, keysAndValues ...any)  { l.log("INFO", msg, keysAndValues) }
func (l *testLogger) Warn(msg string, keysAndValues ...any)  { l.log("WARN", msg, keysAndValues) }
func (l *testLogger) Error(msg string, keysAndValues ...any) { l.log("ERROR", msg, keysAndValues) }

func (l *testLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Helper()
	l.tb.Fatal(FormatEntry("FATAL", msg, keysAndValues...))
}

func (l *testLogger) log(level, msg string, keysAndValues []any) {
	l.tb.Helper()
	l.tb.Log(FormatEntry(level, msg, keysAndValues...))
}

// FormatEntry renders a log entry the way NewTestLogger writes it.
// A trailing key without a value is shown as key=<missing>.
func FormatEntry(level, msg string, keysAndValues ...any) string {
	var b strings.Builder
	b.WriteString(level)
	b.WriteString(": ")
	b.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&b, " %v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", keysAndValues[i])
		}
	}

	return b.String()
}
