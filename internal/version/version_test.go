package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionStrings(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Revision)

	assert.Contains(t, Short(), Version)
	assert.Contains(t, Short(), Revision)

	detailed := Detailed()
	assert.Contains(t, detailed, Version)
	assert.Contains(t, detailed, "/")

	assert.True(t, strings.HasPrefix(DetailedWithApp(), AppName+" "))
	assert.Equal(t, "eventtickets/"+Version, UserAgent())
}

func TestReadVCSStamp(t *testing.T) {
	stamp := readVCSStamp([]debug.BuildSetting{
		{Key: "-compiler", Value: "gc"},
		{Key: "vcs.revision", Value: "abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2025-06-01T10:00:00Z"},
	})
	assert.Equal(t, vcsStamp{revision: "abcdef", modified: true, time: "2025-06-01T10:00:00Z"}, stamp)

	assert.Equal(t, vcsStamp{}, readVCSStamp(nil))
}

func TestFillPlaceholders(t *testing.T) {
	origVersion, origRevision, origBuildDate := Version, Revision, BuildDate
	t.Cleanup(func() {
		Version, Revision, BuildDate = origVersion, origRevision, origBuildDate
	})

	tests := []struct {
		name         string
		version      string
		revision     string
		buildDate    string
		mainVersion  string
		stamp        vcsStamp
		wantVersion  string
		wantRevision string
		wantDate     string
	}{
		{
			name:         "placeholders are filled from build info",
			version:      devVersion,
			revision:     devRevision,
			mainVersion:  "v1.2.3",
			stamp:        vcsStamp{revision: "abcdef", modified: true, time: "2025-06-01T10:00:00Z"},
			wantVersion:  "1.2.3",
			wantRevision: "abcdef-dirty",
			wantDate:     "2025-06-01T10:00:00Z",
		},
		{
			name:         "devel main version keeps placeholder",
			version:      devVersion,
			revision:     devRevision,
			mainVersion:  "(devel)",
			wantVersion:  devVersion,
			wantRevision: devRevision,
		},
		{
			name:         "ldflags values win",
			version:      "2.0.0",
			revision:     "cafe",
			buildDate:    "2024-01-01T00:00:00Z",
			mainVersion:  "v9.9.9",
			stamp:        vcsStamp{revision: "beef", time: "2025-01-01T00:00:00Z"},
			wantVersion:  "2.0.0",
			wantRevision: "cafe",
			wantDate:     "2024-01-01T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Revision, BuildDate = tt.version, tt.revision, tt.buildDate
			fillPlaceholders(tt.mainVersion, tt.stamp)
			assert.Equal(t, tt.wantVersion, Version)
			assert.Equal(t, tt.wantRevision, Revision)
			assert.Equal(t, tt.wantDate, BuildDate)
		})
	}
}
