// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X fastj/internal/version.Version=v1.2.3" ./cmd/fastj
var Version = "dev"
