package cmd

import "strings"

// valueFlags are the long flags that consume the following token.
var valueFlags = map[string]bool{
	"--log-level": true,
	"--log-file":  true,
	"--compress":  true,
}

// protectDashArgs inserts "--" before the first token that starts with a
// single dash, so values like "-1" or "-sym" reach the command as positional
// arguments. The tools only define long flags, plus -h for help.
func protectDashArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if i > 0 && valueFlags[args[i-1]] {
			continue
		}
		if len(a) < 2 || a[0] != '-' || strings.HasPrefix(a, "--") || a == "-h" {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}
