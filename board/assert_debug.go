//go:build debug

package board

const debugAsserts = true

func assert(cond bool, msg string) {
	if !cond {
		panic("board: " + msg)
	}
}
