package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	saved := CommitHash
	t.Cleanup(func() { CommitHash = saved })

	CommitHash = "0123456789abcdef"
	info := Get("dims")
	assert.Equal(t, "0123456", info.Short())
	assert.Equal(t, "dims dev (commit 0123456, built unknown)", info.String())
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")

	CommitHash = "abc"
	assert.Equal(t, "abc", Get("dimsgen").Short())
}
