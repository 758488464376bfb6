// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands globs among positional inputs. No inputs means stdin.
func ExpandInputs(posArgs []string) ([]string, error) {
	if len(posArgs) == 0 {
		return []string{"-"}, nil
	}
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}
