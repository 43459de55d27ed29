package common

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHardwareThreads_Default(t *testing.T) {
	t.Setenv(ThreadsEnv, "")
	assert.Equal(t, runtime.GOMAXPROCS(0), HardwareThreads())
}

func TestHardwareThreads_EnvOverride(t *testing.T) {
	t.Setenv(ThreadsEnv, "3")
	assert.Equal(t, 3, HardwareThreads())
}

func TestHardwareThreads_InvalidEnvIgnored(t *testing.T) {
	for _, v := range []string{"0", "-2", "many"} {
		t.Setenv(ThreadsEnv, v)
		assert.Equal(t, runtime.GOMAXPROCS(0), HardwareThreads(), "env=%q", v)
	}
}

func TestDescribeCPU(t *testing.T) {
	assert.NotEmpty(t, DescribeCPU())
	assert.Equal(t, "?", cacheSize(0))
	assert.Equal(t, "32 KiB", cacheSize(32*1024))
}
