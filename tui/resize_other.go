//go:build !unix

package tui

import (
	"os"
)

// notifyResize is a no-op where window size signals do not exist; the
// screen is still redrawn on every key and tick.
func notifyResize(ch chan<- os.Signal) (stop func()) {
	return func() {}
}
