//go:build debug

// Package debug provides assertion and tracing helpers compiled in only
// under the "debug" build tag, grounded on goutil/internal/debug. Release
// builds pull in nodbg.go instead, which compiles every call here down to
// nothing.
package debug

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"

	"github.com/flier/radixart/internal/xflag"
)

// Enabled is true whenever the debug build tag is active, letting callers
// skip building argument lists for Log/Assert in release builds without an
// explicit build-tag branch of their own.
const Enabled = true

var (
	debugPattern = xflag.Func("filter", "regexp to filter debug logs by", regexp.Compile)
	nocapture    = flag.Bool("nocapture", false, "disables capturing debug logs as test logs")
)

// Log prints a structured trace line identifying the calling package, file
// and line, and goroutine id, to stderr (or to the testing.TB installed by
// WithTesting).
//
// context is optional args for fmt.Printf printed ahead of operation, for
// grouping related traces.
func Log(context []any, operation string, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)

	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/flier/radixart/")
	pkg = strings.TrimPrefix(pkg, "pkg/")
	pkg = pkg[:strings.Index(pkg, ".")]

	file = filepath.Base(file)

	buf := new(strings.Builder)

	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *debugPattern != nil && !(*debugPattern).MatchString(buf.String()) {
		return
	}

	t := tls.Get()
	if !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false, but only in debug mode. The node
// classes use it to check that AddChild is never called on a full node;
// growing Node256 and decoding an unknown Ref tag panic directly instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("radixart: internal assertion failed: "+format, args...))
	}
}
