package engine

import (
	"fmt"
	"runtime"
)

// guardRuntime refuses js/wasm builds. The engine does blocking file and
// database I/O and expects a real operating system process.
func guardRuntime() error {
	if runtime.GOOS == "js" || runtime.GOARCH == "wasm" {
		return fmt.Errorf("engine requires an OS process, got %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
