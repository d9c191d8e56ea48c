package tween

import (
	"fmt"
	"os"
)

// SetDebugMode enables or disables debug mode. When enabled, group
// completion and pruning are logged to stderr, along with warnings for
// known caller hazards: End on a RepeatForever tween and tweens added to a
// group that has already left the registry.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
}

func (r *Registry) debugf(format string, args ...any) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tween] "+format+"\n", args...)
}
