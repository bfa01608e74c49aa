package xconsole

import (
	"runtime"
	"strings"
)

// callerTarget returns the package path of the function skip frames above
// callerTarget itself.
func callerTarget(skip int) string {
	var pcs [1]uintptr
	// +1 skips runtime.Callers.
	if runtime.Callers(skip+1, pcs[:]) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return packagePath(frame.Function)
}

// packagePath trims the function part of a fully qualified function name:
// "github.com/a/b.(*T).M" -> "github.com/a/b".
func packagePath(fn string) string {
	slash := strings.LastIndexByte(fn, '/')
	if dot := strings.IndexByte(fn[slash+1:], '.'); dot >= 0 {
		return fn[:slash+1+dot]
	}
	return fn
}
