// Package version holds the release string, overridable at link time:
//
//	go build -ldflags "-X figmop/internal/version.Version=1.2.0" ./cmd/figmop-model
package version

var Version = "1.1.0"
