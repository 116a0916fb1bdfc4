package dlist

type ListOption func(c *listConfig)

type listConfig struct {
	strictIteration bool
}

func defaultConfig() listConfig {
	return listConfig{
		strictIteration: false,
	}
}

// EnableStrictIteration makes iterators fail fast when the list is structurally modified while they are in use.
// An Iterator then stops and reports ErrStaleIterator from Err, and sequences returned by All and Backward panic
// with ErrStaleIterator.
//
// Without this option, adding or removing elements during an iteration is a caller error and its outcome is
// unspecified. Set does not count as a structural modification in either mode.
//
// The check costs one counter comparison per step. Most users should not need this behavior.
func EnableStrictIteration() ListOption {
	return func(c *listConfig) {
		c.strictIteration = true
	}
}
