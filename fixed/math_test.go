package fixed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/testutil"
)

func testMath[B backend.Backend](t *testing.T) {
	t.Run("sqrt", func(t *testing.T) {
		assert.Equal(t, 1.5, q313[B](2.25).Sqrt().Float())
		assert.Equal(t, 0.5, q15[B](0.25).Sqrt().Float())
		assert.True(t, q15[B](-0.5).Sqrt().IsMin())
	})

	t.Run("rsqrt", func(t *testing.T) {
		assert.Equal(t, 2.0, q313[B](0.25).Rsqrt().Float())
		assert.Equal(t, MaxOf[int16, Q3_13, B](), q313[B](0).Rsqrt())
		assert.True(t, q313[B](-1).Rsqrt().IsMin())
	})

	t.Run("log", func(t *testing.T) {
		assert.Equal(t, -1.0, q15[B](0.5).Log2().Float())
		assert.Equal(t, 1.0, q313[B](2).Log2().Float())
		assert.Equal(t, 0.0, q313[B](1).Ln().Float())
		testutil.RequireWithinLSB(t, q88[B](100).Log10().Float(), 2, 26, 1)
		assert.True(t, q15[B](0).Log2().IsMin())
		assert.True(t, q15[B](-0.25).Ln().IsMin())
	})

	t.Run("antilog", func(t *testing.T) {
		half := Exp2[int16, Q3_13](q15[B](0.5).Log2())
		assert.Equal(t, 0.5, half.Float())

		one := FromFloat[int32, LogFormat, B](1.0)
		testutil.RequireWithinLSB(t, Exp[int16, Q3_13](one).Float(), math.E, 13, 0.5)
		testutil.RequireWithinLSB(t, Exp10[int16, Q8_8](one).Float(), 10, 8, 0)

		// 2^4 does not fit Q3.13.
		four := FromFloat[int32, LogFormat, B](4.0)
		assert.Equal(t, MaxOf[int16, Q3_13, B](), Exp2[int16, Q3_13](four))
	})

	t.Run("pow", func(t *testing.T) {
		assert.Equal(t, 2.25, Pow(q313[B](1.5), q88[B](2)).Float())
		testutil.RequireWithinLSB(t, q15[B](0.5).Pow(q15[B](0.5)).Float(), math.Sqrt(0.5), 15, 0.5)
		assert.True(t, Pow(q313[B](-2), q15[B](0.5)).IsMin())
		assert.Equal(t, MaxOf[int16, Q3_13, B](), q313[B](2).Pow(q313[B](3)))
	})

	t.Run("activations", func(t *testing.T) {
		assert.Equal(t, 0.0, q15[B](-0.5).Relu().Float())
		assert.Equal(t, 0.25, q15[B](0.25).Relu().Float())
		assert.Equal(t, 0.5, q313[B](0).Sigmoid().Float())
		testutil.RequireWithinLSB(t, q313[B](1).Tanh().Float(), math.Tanh(1), 13, 0.5)
	})

	t.Run("trig", func(t *testing.T) {
		testutil.RequireWithinLSB(t, q15[B](0.5).Sin().Float(), math.Sin(0.5), 15, 1.5)
		testutil.RequireWithinLSB(t, q313[B](1).Cos().Float(), math.Cos(1), 13, 1.5)
		testutil.RequireWithinLSB(t, q313[B](1).Atan().Float(), math.Pi/4, 13, 0.5)
		assert.Equal(t, MaxOf[int16, Q3_13, B](), q313[B](1.5).Tan())
	})
}

func TestMath(t *testing.T) {
	t.Run("reference", testMath[ref])
	t.Run("accelerated", testMath[acc])
}
