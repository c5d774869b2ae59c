package q15

import (
	"math"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

const tableSize = 1024

// sinTable holds one full period plus the wrap-around sample.
var sinTable = func() (t [tableSize + 1]float64) {
	for i := range t {
		t[i] = math.Sin(2 * math.Pi * float64(i) / tableSize)
	}
	return t
}()

func lookup(phase float64) float64 {
	p := phase / (2 * math.Pi) * tableSize
	p -= math.Floor(p/tableSize) * tableSize
	i := int(p)
	if i >= tableSize {
		i = 0
	}
	f := p - float64(i)
	return sinTable[i] + (sinTable[i+1]-sinTable[i])*f
}

// Sin evaluates the sine by linear interpolation in a 1024-entry table.
func Sin(x int64, w storage.Width, frac int) int64 {
	return storage.Quantize(lookup(storage.Dequantize(x, frac)), frac, w)
}

// Cos is Sin shifted by a quarter period.
func Cos(x int64, w storage.Width, frac int) int64 {
	return storage.Quantize(lookup(storage.Dequantize(x, frac)+math.Pi/2), frac, w)
}
