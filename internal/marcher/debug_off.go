//go:build !debug
// +build !debug

package marcher

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
