//go:build !debug

package board

const debugAsserts = false

func assert(bool, string) {}
