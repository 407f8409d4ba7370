package console

import (
	"fmt"
	"io"
)

// Message markers keep the three user-visible failure kinds apart:
// errors, warnings and plain information.

func errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "❌ "+format+"\n", args...)
}

func warnf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "⚠️ "+format+"\n", args...)
}

func infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "ℹ️ "+format+"\n", args...)
}

func successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "✅ "+format+"\n", args...)
}
