package reference

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

// SoftmaxArray writes softmax(src) into dst, both in the format with frac
// fractional bits. dst and src may be the same slice.
func SoftmaxArray[T storage.Int](dst, src []T, frac int) {
	n := min(len(dst), len(src))
	if n == 0 {
		return
	}
	hi, _ := MaxArray(src[:n])
	top := storage.Dequantize(int64(hi), frac)

	var total float64
	for i := range n {
		total += math.Exp(storage.Dequantize(int64(src[i]), frac) - top)
	}
	w := storage.WidthOf[T]()
	for i := range n {
		p := math.Exp(storage.Dequantize(int64(src[i]), frac)-top) / total
		dst[i] = T(storage.Quantize(p, frac, w))
	}
}

// SpectrumArray writes the normalized magnitude spectrum |X_k|/N of src,
// bins 0..N/2, into dst in the same format. Bins past N/2 and every bin of
// a length the FFT cannot plan are zeroed.
func SpectrumArray[T storage.Int](dst, src []T, frac int) {
	clear(dst)
	n := len(src)
	if n == 0 {
		return
	}
	bins, ok := Transform(src, frac)
	if !ok {
		return
	}
	w := storage.WidthOf[T]()
	for k := 0; k <= n/2 && k < len(dst); k++ {
		dst[k] = T(storage.Quantize(cmplx.Abs(bins[k])/float64(n), frac, w))
	}
}

// Transform runs the forward FFT of the dequantized input. It allocates and
// reports false when the length has no FFT plan.
func Transform[T storage.Int](src []T, frac int) ([]complex128, bool) {
	plan, err := algofft.NewPlan64(len(src))
	if err != nil {
		return nil, false
	}
	in := make([]complex128, len(src))
	for i, v := range src {
		in[i] = complex(storage.Dequantize(int64(v), frac), 0)
	}
	out := make([]complex128, len(src))
	if err := plan.Forward(out, in); err != nil {
		return nil, false
	}
	return out, true
}
