// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
}

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", "fastj/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	// The codec is a standalone library: nothing in pkg/ may reach into
	// internal/ or the command tree.
	bans := map[string][]string{
		"fastj/pkg/": {"fastj/internal/", "fastj/cmd/"},
		"fastj/internal/writers": {
			"fastj/internal/app", "fastj/internal/config", "fastj/internal/logging", "fastj/cmd/",
		},
		"fastj/internal/convert": {
			"fastj/internal/app", "fastj/internal/writers", "fastj/cmd/",
		},
		"fastj/internal/stats": {
			"fastj/internal/app", "fastj/internal/writers", "fastj/cmd/",
		},
		"fastj/internal/source": {"fastj/pkg/", "fastj/internal/app", "fastj/cmd/"},
		"fastj/internal/config": {"fastj/internal/app", "fastj/cmd/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "fastj/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
