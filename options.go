package main

import (
	"strings"

	"mibk.dev/hirdump/dump"
)

// parseEnvOptions parses a comma separated list of options, as found
// in the HIRDUMP environment variable.
func parseEnvOptions(env string) (opts dump.Options, unknown []string) {
	for _, opt := range strings.Split(env, ",") {
		switch opt = strings.TrimSpace(opt); opt {
		default:
			unknown = append(unknown, opt)
		case "":
		case "tabs":
			opts &^= dump.UseSpaces
		case "spaces":
			opts |= dump.UseSpaces
		}
	}
	return opts, unknown
}
