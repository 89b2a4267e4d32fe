//go:build debug

package game

// assertNoArrow panics when a second arrow would be spawned while one is
// already live. Build with -tags debug to enable.
func assertNoArrow(a *Arrow) {
	if a != nil {
		panic("game: arrow already in flight")
	}
}
