//go:build minodebug
// +build minodebug

package mino

// Built with -tags minodebug, incomplete kick data panics instead of
// silently rejecting the rotation.
const strictKicks = true
