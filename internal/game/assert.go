//go:build !debug

package game

// assertNoArrow is a no-op in release builds.
func assertNoArrow(a *Arrow) {}
