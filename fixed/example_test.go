package fixed_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/fixed"
)

type Q15 = fixed.Value[int16, fixed.Q1_15, backend.Reference]

func q15(v float64) Q15 {
	return fixed.FromFloat[int16, fixed.Q1_15, backend.Reference](v)
}

func ExampleValue_Mul() {
	fmt.Println(q15(0.5).Mul(q15(0.75)))

	// Output:
	// 0.375
}

func ExampleValue_Div() {
	// 0.5 / 0.25 does not fit Q1.15 and saturates.
	fmt.Println(q15(0.5).Div(q15(0.25)))

	// Output:
	// 0.999969482421875
}

func ExampleDivTo() {
	q := fixed.DivTo[int16, fixed.Q3_13](q15(0.75), q15(0.5))
	fmt.Println(q, q.IntBits(), q.FracBits())

	// Output:
	// 1.5 3 13
}

func ExampleValue_Sqrt() {
	r := q15(-0.25).Sqrt()
	fmt.Println(r, r.IsMin())

	// Output:
	// -1 true
}

func ExampleValue_Log2() {
	l := q15(0.5).Log2()
	back := fixed.Exp2[int16, fixed.Q1_15](l)
	fmt.Println(l, back)

	// Output:
	// -1 0.5
}

func ExampleArray() {
	buf := make([]int16, 4)
	a := fixed.NewArray[int16, fixed.Q1_15, backend.Accelerated](buf)
	for i, v := range []float64{0.25, -0.5, 0.75, 0.125} {
		a.Set(i, fixed.FromFloat[int16, fixed.Q1_15, backend.Accelerated](v))
	}
	fmt.Println("min", a.Min(), "at", a.ArgMin())
	fmt.Println("max", a.Max(), "at", a.ArgMax())
	fmt.Println("sum", a.Sum(), "mean", a.Mean())

	// Output:
	// min -0.5 at 1
	// max 0.75 at 2
	// sum 0.625 mean 0.15625
}
