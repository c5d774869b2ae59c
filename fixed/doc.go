// Package fixed provides fixed-point numbers whose format lives in their
// type.
//
// A [Value] holds one raw integer of 8, 16 or 32 bits and is parameterized
// by its storage type, its format and its backend:
//
//	type Gain = fixed.Value[int16, fixed.Q3_13, backend.Reference]
//
// The format is a zero-size tag type such as [Q1_15] (one integer bit
// including the sign, fifteen fractional bits). Raw value r of a format
// with f fractional bits represents r / 2^f. Formats beyond the predefined
// ones are generated by the qgen command, which also emits compile-time
// assertions that the bits fit the storage type.
//
// # Arithmetic
//
// Methods combine two values of the same type:
//
//	a := fixed.FromFloat[int16, fixed.Q1_15, backend.Reference](0.5)
//	b := fixed.FromFloat[int16, fixed.Q1_15, backend.Reference](0.75)
//	p := a.Mul(b) // 0.375
//
// Generic functions mix formats. [Add], [Sub], [Mul] and [Div] return the
// left operand's format; [AddTo], [SubTo], [MulTo] and [DivTo] take the
// output format explicitly:
//
//	q := fixed.DivTo[int16, fixed.Q3_13](b, a) // 1.5
//
// Results that do not fit saturate to the output range. There are no error
// returns in arithmetic: domain errors such as the square root of a negative
// value produce the most negative raw value of the result (a sentinel).
//
// Comparisons across formats align both operands to the larger fractional
// bit count first, so [Cmp], [Equal] and [Less] compare mathematical values.
//
// # Backends
//
// The backend type parameter picks the implementation of every operation.
// [backend.Reference] is portable integer and float code.
// [backend.Accelerated] picks the most specialized kernel the CPU supports
// for the operand widths and falls back to the reference kernels otherwise;
// results agree with the reference backend. Switching backends changes no
// call site.
//
// # Arrays
//
// [Array] is a view over a caller-owned raw buffer that runs array kernels
// (reductions, element-wise ops, statistics, softmax and a magnitude
// spectrum) through the same backend. It never copies or owns the buffer.
package fixed
