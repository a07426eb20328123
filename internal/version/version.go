package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Placeholders, release builds overwrite them with
// -ldflags "-X github.com/eventtickets/eventtickets/internal/version.Version=..."
const (
	devVersion  = "0.1.0-dev"
	devRevision = "HEAD"
)

var (
	AppName = "Event Ticket Manager"

	// Version of the binary, not of the HTTP API (that one is served by /api/v1/info).
	Version   = devVersion
	Revision  = devRevision
	BuildDate = ""
)

// vcsStamp is what `go build` records about the checkout.
type vcsStamp struct {
	revision string
	modified bool
	time     string
}

func readVCSStamp(settings []debug.BuildSetting) vcsStamp {
	var s vcsStamp
	for _, kv := range settings {
		switch kv.Key {
		case "vcs.revision":
			s.revision = kv.Value
		case "vcs.modified":
			s.modified = kv.Value == "true"
		case "vcs.time":
			s.time = kv.Value
		}
	}
	return s
}

// fillPlaceholders replaces whatever ldflags did not set with the module version
// and the vcs stamp. A dirty checkout gets a "-dirty" revision suffix.
func fillPlaceholders(moduleVersion string, stamp vcsStamp) {
	if (Version == devVersion || Version == "") && moduleVersion != "" && moduleVersion != "(devel)" {
		Version = strings.TrimPrefix(moduleVersion, "v")
	}

	if (Revision == devRevision || Revision == "") && stamp.revision != "" {
		Revision = stamp.revision
		if stamp.modified {
			Revision += "-dirty"
		}
	}

	if BuildDate == "" {
		BuildDate = stamp.time
	}
}

// Short is used in startup logs: `0.1.0 (5e23a4)`.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}

// Detailed is the --version output: `0.1.0 (5e23a4; go1.23.6; linux/amd64; 2025-01-01T00:00:00Z)`.
func Detailed() string {
	return fmt.Sprintf("%s (%s; %s; %s/%s; %s)", Version, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH, BuildDate)
}

func DetailedWithApp() string {
	return AppName + " " + Detailed()
}

// UserAgent identifies the healthcheck client to the gateway.
func UserAgent() string {
	return "eventtickets/" + Version
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		fillPlaceholders(info.Main.Version, readVCSStamp(info.Settings))
	}
}
