package iterator

import "github.com/cockroachdb/errors"

var (
	// ErrNilStart is returned when an iterator is created without
	// a starting node.
	ErrNilStart = errors.New("iterator: nil starting node")

	// ErrExhausted is returned by Next once every node has been produced.
	// It reports a caller bug: HasNext should have been checked first.
	ErrExhausted = errors.New("iterator: sequence exhausted")

	// ErrUnsupported is returned by operations the iterator will never
	// perform, such as mutating the tree.
	ErrUnsupported = errors.New("iterator: unsupported operation")
)
