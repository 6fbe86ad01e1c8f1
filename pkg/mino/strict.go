//go:build !minodebug
// +build !minodebug

package mino

const strictKicks = false
