package window

import (
	"fmt"
	"math"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeGauss
)

var (
	hannCoeffs    = []float64{0.5, -0.5}
	hammingCoeffs = []float64{0.54, -0.46}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	sigma float64
}

func defaultConfig() config {
	return config{sigma: 1}
}

// WithSigma sets the standard deviation in samples for the Gauss window.
func WithSigma(v float64) Option {
	return func(c *config) {
		if v > 0 {
			c.sigma = v
		}
	}
}

// Generate returns symmetric window coefficients of the given length.
//
// The symmetric forms match the numpy/scipy conventions: endpoints of the
// Hann window are exactly zero and a length-1 window is the single
// coefficient 1.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, i, length, cfg)
	}

	return out
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size), validateLength(size)
}

// Gaussian returns Gaussian window coefficients with the given standard
// deviation in samples, centered on (size-1)/2.
func Gaussian(size int, sigma float64) ([]float64, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("gauss sigma must be > 0: %f", sigma)
	}

	return Generate(TypeGauss, size, WithSigma(sigma)), validateLength(size)
}

// Apply multiplies buf by the selected window and returns a new slice.
func Apply(t Type, buf []float64, opts ...Option) []float64 {
	coeffs := Generate(t, len(buf), opts...)

	out := make([]float64, len(buf))
	for i := range buf {
		out[i] = buf[i] * coeffs[i]
	}

	return out
}

func evalWindow(t Type, n, size int, cfg config) float64 {
	x := float64(n) / float64(size-1)

	switch t {
	case TypeRectangular:
		return 1
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeGauss:
		d := (float64(n) - float64(size-1)/2) / cfg.sigma
		return math.Exp(-0.5 * d * d)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}

	return nil
}
