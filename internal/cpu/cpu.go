// Package cpu detects the processor features that decide which accelerated
// fixed-point kernel rungs are eligible on the running machine.
//
// Detection runs once and is cached. Setting FIXED_NO_ACCEL to a true value
// (or any non-empty value that is not a boolean) forces the generic rung,
// which makes the accelerated backend behave exactly like the reference one.
package cpu

import (
	"os"
	"strconv"
	"sync"
)

// NoAccelEnv is the environment variable that disables accelerated rungs.
const NoAccelEnv = "FIXED_NO_ACCEL"

// SIMDLevel is the instruction set a kernel rung requires.
type SIMDLevel int

const (
	// SIMDNone marks portable kernels that run everywhere.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline.
	SIMDSSE2

	// SIMDSSE41 adds packed sign extension (pmovsx) used by 8-bit widening paths.
	SIMDSSE41

	// SIMDNEON is ARM Advanced SIMD, mandatory on arm64.
	SIMDNEON
)

// String returns a human-readable name for the level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDSSE41:
		return "SSE4.1"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2  bool
	HasSSE41 bool
	HasNEON  bool

	// ForceGeneric restricts selection to SIMDNone rungs.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current machine, or the forced
// set installed by [SetForcedFeatures].
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.ForceGeneric = noAccel()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection drops forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features allow a rung requiring level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDSSE41:
		return features.HasSSE41
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}

func noAccel() bool {
	val := os.Getenv(NoAccelEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
