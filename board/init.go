package board

import "sync"

var initOnce sync.Once

// Init builds the attack and Zobrist tables. It is idempotent and safe to
// call from multiple goroutines (spec.md §5's "once-only initialization
// primitive"); it also runs automatically via the package init() below, so
// callers that only ever use one goroutine never need to call it.
func Init() {
	initOnce.Do(func() {
		initNonSlidingAttacks()
		initMagics()
		initZobrist()
	})
}

func init() {
	Init()
}
