package fixed

import (
	"github.com/cwbudde/algo-fixed/backend"
)

type (
	ref = backend.Reference
	acc = backend.Accelerated
)

func q15[B backend.Backend](v float64) Value[int16, Q1_15, B] {
	return FromFloat[int16, Q1_15, B](v)
}

func q313[B backend.Backend](v float64) Value[int16, Q3_13, B] {
	return FromFloat[int16, Q3_13, B](v)
}

func q88[B backend.Backend](v float64) Value[int16, Q8_8, B] {
	return FromFloat[int16, Q8_8, B](v)
}

func q17[B backend.Backend](v float64) Value[int8, Q1_7, B] {
	return FromFloat[int8, Q1_7, B](v)
}

func q15s[B backend.Backend](vals ...float64) Array[int16, Q1_15, B] {
	buf := make([]int16, len(vals))
	a := NewArray[int16, Q1_15, B](buf)
	for i, v := range vals {
		a.Set(i, q15[B](v))
	}
	return a
}
