package cli

import (
	"os"
	"sort"
)

// buildEnvironment returns the inherited environment plus extra, applied in
// key order so repeated calls produce the same slice.
func buildEnvironment(extra map[string]string) []string {
	env := os.Environ()
	if len(extra) == 0 {
		return env
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}

	return env
}
