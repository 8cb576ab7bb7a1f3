package statement

// mergeState is the explicit state of the record merger. Modeling the state
// machine directly makes the drop-before-first-record edge case a testable
// transition instead of an accidental list-indexing behavior.
type mergeState int

const (
	// stateIdle: no record has been opened yet. Continuation fragments
	// arriving here have nothing to attach to and are silently dropped.
	stateIdle mergeState = iota
	// stateAwaitingContinuation: a record is open and collects the text
	// words of every continuation fragment until the next record start.
	stateAwaitingContinuation
)

// mergeFragments folds continuation fragments into the most recently started
// record. A record-start fragment opens a new pending record (implicitly
// closing the previous one); a continuation fragment appends its words to the
// open record. Whatever is open at end of input is finalized as the last
// record. Document order is preserved throughout.
func mergeFragments(fragments []fragment) []fragment {
	var records []fragment
	state := stateIdle
	var current *fragment

	for _, f := range fragments {
		switch {
		case f.recordStart():
			records = append(records, f)
			current = &records[len(records)-1]
			state = stateAwaitingContinuation
		case state == stateAwaitingContinuation:
			current.words = append(current.words, f.words...)
		default:
			// stateIdle: continuation text before the first record
			// start belongs to no transaction.
		}
	}

	return records
}
