package fixed

import (
	"github.com/cwbudde/algo-fixed/backend"
	"github.com/cwbudde/algo-fixed/internal/storage"
)

// AddTo returns a+b in format FO. Each operand is realigned to FO on its
// own before the sum is formed.
func AddTo[TO storage.Int, FO Format[TO], T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](
	a Value[T1, F1, B], b Value[T2, F2, B],
) Value[TO, FO, B] {
	var be B
	wa, fa := meta[T1, F1]()
	wb, fb := meta[T2, F2]()
	wo, fo := meta[TO, FO]()
	return wrap[TO, FO, B](be.Add(int64(a.raw), fa, int64(b.raw), fb, wa, wb, wo, fo))
}

// SubTo returns a-b in format FO.
func SubTo[TO storage.Int, FO Format[TO], T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](
	a Value[T1, F1, B], b Value[T2, F2, B],
) Value[TO, FO, B] {
	var be B
	wa, fa := meta[T1, F1]()
	wb, fb := meta[T2, F2]()
	wo, fo := meta[TO, FO]()
	return wrap[TO, FO, B](be.Sub(int64(a.raw), fa, int64(b.raw), fb, wa, wb, wo, fo))
}

// MulTo returns a*b in format FO. The product is formed at full precision
// and rounded once.
func MulTo[TO storage.Int, FO Format[TO], T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](
	a Value[T1, F1, B], b Value[T2, F2, B],
) Value[TO, FO, B] {
	var be B
	wa, fa := meta[T1, F1]()
	wb, fb := meta[T2, F2]()
	wo, fo := meta[TO, FO]()
	return wrap[TO, FO, B](be.Mul(int64(a.raw), int64(b.raw), wa, wb, wo, fa+fb-fo))
}

// DivTo returns a/b in format FO. Division by zero saturates toward the
// sign of a.
func DivTo[TO storage.Int, FO Format[TO], T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](
	a Value[T1, F1, B], b Value[T2, F2, B],
) Value[TO, FO, B] {
	var be B
	wa, fa := meta[T1, F1]()
	wb, fb := meta[T2, F2]()
	wo, fo := meta[TO, FO]()
	return wrap[TO, FO, B](be.Div(int64(a.raw), int64(b.raw), wa, wb, wo, fa-fb-fo))
}

// Add returns a+b in a's format.
func Add[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) Value[T1, F1, B] {
	return AddTo[T1, F1](a, b)
}

// Sub returns a-b in a's format.
func Sub[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) Value[T1, F1, B] {
	return SubTo[T1, F1](a, b)
}

// Mul returns a*b in a's format.
func Mul[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) Value[T1, F1, B] {
	return MulTo[T1, F1](a, b)
}

// Div returns a/b in a's format.
func Div[T1 storage.Int, F1 Format[T1], T2 storage.Int, F2 Format[T2], B backend.Backend](a Value[T1, F1, B], b Value[T2, F2, B]) Value[T1, F1, B] {
	return DivTo[T1, F1](a, b)
}

// Convert returns v in format FO, rounding and saturating as needed.
func Convert[TO storage.Int, FO Format[TO], T storage.Int, F Format[T], B backend.Backend](v Value[T, F, B]) Value[TO, FO, B] {
	_, f := meta[T, F]()
	wo, fo := meta[TO, FO]()
	return wrap[TO, FO, B](storage.Sat(storage.RoundShift(int64(v.raw), f-fo), wo))
}

// Add returns v+o.
func (v Value[T, F, B]) Add(o Value[T, F, B]) Value[T, F, B] { return AddTo[T, F](v, o) }

// Sub returns v-o.
func (v Value[T, F, B]) Sub(o Value[T, F, B]) Value[T, F, B] { return SubTo[T, F](v, o) }

// Mul returns v*o.
func (v Value[T, F, B]) Mul(o Value[T, F, B]) Value[T, F, B] { return MulTo[T, F](v, o) }

// Div returns v/o.
func (v Value[T, F, B]) Div(o Value[T, F, B]) Value[T, F, B] { return DivTo[T, F](v, o) }

// Neg returns -v. Negating the minimum saturates to the maximum.
func (v Value[T, F, B]) Neg() Value[T, F, B] {
	return Value[T, F, B]{raw: storage.SatCast[T](-int64(v.raw))}
}

// Abs returns |v|, saturating like [Value.Neg].
func (v Value[T, F, B]) Abs() Value[T, F, B] {
	if v.raw < 0 {
		return v.Neg()
	}
	return v
}
