package accel

// The rung packages register themselves with the global registry from
// init(). The q7 and q15 rungs only do so on amd64 and arm64 without the
// purego tag; elsewhere the generic rung is the whole ladder.

import (
	_ "github.com/cwbudde/algo-fixed/internal/accel/arch/generic"
	_ "github.com/cwbudde/algo-fixed/internal/accel/arch/q15"
	_ "github.com/cwbudde/algo-fixed/internal/accel/arch/q7"
)
