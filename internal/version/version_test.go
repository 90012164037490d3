package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	assert.NotEmpty(t, info.Version)
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "cepress version v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	}

	info := Info{Version: devVersion, GitCommit: "unknown", BuildDate: "unknown"}
	fromBuildInfo(&info, bi)
	assert.Equal(t, Info{Version: "v1.2.3", GitCommit: "deadbeef", BuildDate: "2026-10-01T12:00:00Z"}, info)

	stamped := Info{Version: "v2.0.0", GitCommit: "abc", BuildDate: "today"}
	fromBuildInfo(&stamped, bi)
	assert.Equal(t, "v2.0.0", stamped.Version, "ldflags win over build info")
	assert.Equal(t, "abc", stamped.GitCommit)

	devel := Info{Version: devVersion}
	fromBuildInfo(&devel, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, devVersion, devel.Version)
}
