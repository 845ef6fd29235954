package oasresolve

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildDetailsDefaults(t *testing.T) {
	assert.Equal(t, "dev", Version())
	assert.Equal(t, "unknown", Commit())
	assert.Equal(t, "unknown", BuildTime())
	assert.Equal(t, runtime.Version(), GoVersion())
	assert.Equal(t, "oasresolve/dev", UserAgent())
}

func TestBuildDetailsLinkerValues(t *testing.T) {
	saved := [3]string{version, commit, buildTime}
	t.Cleanup(func() { version, commit, buildTime = saved[0], saved[1], saved[2] })

	version, commit, buildTime = "1.4.0", "3f2a9c1", "2026-10-01T12:00:00Z"

	assert.Equal(t, "oasresolve/1.4.0", UserAgent())
	info := BuildInfo()
	for _, want := range []string{
		"Version: 1.4.0",
		"Commit: 3f2a9c1",
		"Build Time: 2026-10-01T12:00:00Z",
		"Go Version: " + runtime.Version(),
	} {
		assert.Contains(t, info, want)
	}
	assert.Len(t, strings.Split(info, "\n"), 4)
}
