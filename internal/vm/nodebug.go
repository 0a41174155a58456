//go:build !debug

package vm

const debugChecks = false
