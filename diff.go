package morph

// Disposition classifies one character slot of a DiffResult: what happens to
// the old-text character at that index when the text changes.
type Disposition uint8

// DispositionAdd is the zero value so that result slots beyond the old
// text's length classify as additions without special casing.
const (
	DispositionAdd        Disposition = iota // character exists only in the new text
	DispositionSame                          // unchanged character, same index
	DispositionMove                          // character relocates, matched from an index beyond the new text's bounds
	DispositionMoveAndAdd                    // character relocates, matched from an index within the new text's bounds
	DispositionReplace                       // old character removed, a new one appears nearby
	DispositionDelete                        // old character has no counterpart
)

// String names the disposition for debug output.
func (d Disposition) String() string {
	switch d {
	case DispositionAdd:
		return "add"
	case DispositionSame:
		return "same"
	case DispositionMove:
		return "move"
	case DispositionMoveAndAdd:
		return "move+add"
	case DispositionReplace:
		return "replace"
	case DispositionDelete:
		return "delete"
	}
	return "unknown"
}

// CharDiff is one slot of a DiffResult. Disposition and Offset describe the
// old-text character at this index; Skip flags the new-text character at this
// index as already covered by a matched old-text character, so it must not be
// drawn again as an appearing character.
type CharDiff struct {
	Disposition Disposition
	Offset      int // index delta into the new text, for Move and MoveAndAdd
	Skip        bool
}

// DiffResult is the per-index classification of a text change, of length
// max(len(old), len(new)).
type DiffResult []CharDiff

// Diff classifies every old-text position against the new text. Matching is
// greedy and leftmost-first: each old character takes the first unconsumed
// equal character of the new text, which is deterministic but not a minimum
// edit script when duplicates exist. Pure function, no error paths.
func Diff(old, new []string) DiffResult {
	if len(new) == 0 {
		result := make(DiffResult, len(old))
		for i := range result {
			result[i].Disposition = DispositionDelete
		}
		return result
	}

	result := make(DiffResult, max(len(old), len(new)))
	if len(old) == 0 {
		return result
	}

	consumed := make([]bool, len(new))
	for i, ch := range old {
		j := -1
		for k, nch := range new {
			if !consumed[k] && nch == ch {
				j = k
				break
			}
		}
		if j < 0 {
			if i < len(new)-1 {
				result[i].Disposition = DispositionReplace
			} else {
				result[i].Disposition = DispositionDelete
			}
			continue
		}

		consumed[j] = true
		result[j].Skip = true
		switch {
		case i == j:
			result[i].Disposition = DispositionSame
		case i <= len(new)-1:
			result[i].Disposition = DispositionMoveAndAdd
			result[i].Offset = j - i
		default:
			result[i].Disposition = DispositionMove
			result[i].Offset = j - i
		}
	}
	return result
}
