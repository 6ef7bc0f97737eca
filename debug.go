package morph

import (
	"fmt"
	"os"
	"time"
)

// SetDebugMode enables or disables debug logging. When enabled, diff
// classification summaries, session lifecycle events, and per-frame limbo
// build timings are printed to stderr.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

var debugMode bool

// debugDiff prints a one-line summary of a freshly classified transition.
func debugDiff(oldLen, newLen int, diff DiffResult, elapsed time.Duration) {
	if !debugMode {
		return
	}
	var same, moved, replaced, added, deleted int
	for _, d := range diff {
		switch d.Disposition {
		case DispositionSame:
			same++
		case DispositionMove, DispositionMoveAndAdd:
			moved++
		case DispositionReplace:
			replaced++
		case DispositionAdd:
			added++
		case DispositionDelete:
			deleted++
		}
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[morph] diff: %d -> %d chars in %v | same: %d | moved: %d | replaced: %d | added: %d | deleted: %d\n",
		oldLen, newLen, elapsed, same, moved, replaced, added, deleted)
}

// debugSession prints a session lifecycle event with frame bookkeeping.
func debugSession(event string, s *Session) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[morph] %s: frame %d | total %d+%d | progress %.3f\n",
		event, s.frame, s.totalFrames, s.totalDelayFrames, s.progress)
}

// debugLimbo prints per-frame limbo build stats.
func debugLimbo(count int, elapsed time.Duration) {
	if !debugMode {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[morph] limbo: %d states in %v\n", count, elapsed)
}
