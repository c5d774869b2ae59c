//go:build !amd64 && !arm64

package cpu

import "runtime"

// Other architectures only run the generic rung.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
