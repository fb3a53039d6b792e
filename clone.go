package scytale

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Store encodes fields on the clone, so a
// shallow copy of a slice or map field would leak ciphertext into the caller's
// value:
//
//	func (m Memo) Clone() Memo {
//	    lines := make([]string, len(m.Lines))
//	    copy(lines, m.Lines)
//	    return Memo{ID: m.ID, Lines: lines}
//	}
type Cloner[T any] interface {
	Clone() T
}
