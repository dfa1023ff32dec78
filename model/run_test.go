package model

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectTarget(t *testing.T) {
	target := DetectTarget()
	assert.Equal(t, runtime.GOOS, target.OS)
	assert.Equal(t, runtime.GOARCH, target.Arch)
	assert.Positive(t, target.NumCPU)
}

func TestSimdFeaturesUnknownArch(t *testing.T) {
	assert.Empty(t, simdFeatures("mips"))
}

func TestRunMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	run := &Run{
		Size:     6,
		Repeat:   2,
		Seed:     42,
		Workers:  1,
		Sum:      1166,
		Duration: 1500 * time.Millisecond,
		Target: &Target{
			OS:       "linux",
			Arch:     "amd64",
			NumCPU:   8,
			Features: []string{"avx", "avx2"},
		},
	}
	logger.Info().Object("run", run).Msg("done")

	var out struct {
		Run map[string]any `json:"run"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, float64(6), out.Run["size"])
	assert.Equal(t, float64(2), out.Run["repeat"])
	assert.Equal(t, float64(42), out.Run["seed"])
	assert.Equal(t, float64(1166), out.Run["sum"])
	assert.Equal(t, float64(1500), out.Run["duration"])

	target, ok := out.Run["target"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "linux", target["os"])
	assert.Equal(t, "avx,avx2", target["features"])
}
