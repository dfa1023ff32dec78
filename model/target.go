package model

import (
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sys/cpu"
)

// Target contains information about the execution environment
type Target struct {
	// Operating system of the execution environment
	OS string `json:"os,omitempty"`
	// CPU architecture of the execution environment
	Arch string `json:"arch,omitempty"`
	// Number of logical CPUs usable by the process
	NumCPU int `json:"num_cpu,omitempty"`
	// SIMD features that allow the branchless loop to be vectorised
	Features []string `json:"features,omitempty"`
}

// DetectTarget describes the machine the process is running on.
func DetectTarget() *Target {
	return &Target{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: simdFeatures(runtime.GOARCH),
	}
}

func simdFeatures(arch string) []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}

	switch arch {
	case "amd64", "386":
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasAVX512F, "avx512f")
		add(cpu.X86.HasAVX512BW, "avx512bw")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasSVE2, "sve2")
	}
	return features
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (t *Target) MarshalZerologObject(e *zerolog.Event) {
	e.Str("os", t.OS).
		Str("arch", t.Arch).
		Int("num_cpu", t.NumCPU).
		Str("features", strings.Join(t.Features, ","))
}
