package tinyfmt

import "math"

// Float renderers: scale into [1,10) when an exponent form is wanted,
// round half away from zero by biasing with 0.5*10^-precision, split into
// a 32-bit whole part and a fraction scaled to an integer, and hand both
// to the decimal integer paths. Precision runs 0..9; the fraction is
// rendered zero-padded at exactly that many digits.
//
// Magnitudes whose whole part would overflow int32 in fixed form are
// forced into exponential form instead of overflowing silently.

// Display window for the general (%g) forms: fixed inside, exponential
// outside. No trailing-zero suppression is attempted.
const (
	gMin = 0.0001
	gMax = 999999.9
)

var pow10 = [10]float64{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// appendFloat64 is the working-precision path. The exponent suffix is
// rendered signed and zero-padded at minimum width 3.
func appendFloat64(dst []byte, f float64, width, precision int, flags fmtFlags) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NAN"...)
	case math.IsInf(f, -1):
		return append(dst, "-INF"...)
	case math.IsInf(f, 1):
		return append(dst, "INF"...)
	}
	if flags.exp == expNone && math.Abs(f) > float64(math.MaxInt32-1) {
		flags.exp = expLower
	}
	exponent := 0
	if flags.exp != expNone && math.Abs(f) > 0 {
		exponent = int(math.Log10(math.Abs(f)))
		f *= math.Pow(10, float64(-exponent))
		// The log estimate can land one decade high for magnitudes
		// just under a power of ten; rescale so the whole part is
		// nonzero.
		if int32(f) == 0 {
			f *= 10
			exponent--
		}
	}
	if precision < 0 || precision > maxFloatPrecision {
		precision = maxFloatPrecision
	}
	fmul := pow10[precision]
	frnd := 0.5 / fmul
	rounded := f + frnd
	if f < 0 {
		rounded = f - frnd
	}
	whole := int32(rounded)
	if flags.exp != expNone && whole >= 10 {
		// Rounding carried into the next decade.
		rounded *= 0.1
		exponent++
		whole = int32(rounded)
	}
	if whole == 0 && math.Signbit(f) {
		// Negative zero whole part: emit the sign here and keep the
		// integer path from emitting a second one.
		dst = append(dst, '-')
		flags.sign = signAuto
	}
	if whole > math.MaxInt16 || whole < math.MinInt16 || width > 4 {
		dst = appendInt32(dst, whole, width, flags)
	} else {
		dst = appendInt16(dst, int16(whole), width, flags)
	}
	if precision > 0 || flags.exp != expNone {
		dst = append(dst, '.')
	}
	if precision > 0 {
		fraction := math.Abs(fmul * (rounded - float64(whole)))
		ff := fmtFlags{zeroPad: true}
		if fraction > math.MaxUint16 || precision > 4 {
			dst = appendUint32(dst, uint32(fraction), precision, ff)
		} else {
			dst = appendUint16(dst, uint16(fraction), precision, ff)
		}
	}
	return appendExponent(dst, exponent, 3, flags)
}

// appendFloat32 is the narrow path, used for float32 arguments the way a
// build with 32-bit doubles would use it for everything. Arithmetic stays
// in float32 so the printed digits reflect the argument's precision; the
// exponent suffix gets a minimum width of 2 instead of 3.
func appendFloat32(dst []byte, f float32, width, precision int, flags fmtFlags) []byte {
	f64 := float64(f)
	switch {
	case math.IsNaN(f64):
		return append(dst, "NAN"...)
	case math.IsInf(f64, -1):
		return append(dst, "-INF"...)
	case math.IsInf(f64, 1):
		return append(dst, "INF"...)
	}
	if flags.exp == expNone && math.Abs(f64) > float64(math.MaxInt32-1) {
		flags.exp = expLower
	}
	exponent := 0
	if flags.exp != expNone && math.Abs(f64) > 0 {
		exponent = int(math.Log10(math.Abs(f64)))
		f = float32(f64 * math.Pow(10, float64(-exponent)))
		if int32(f) == 0 {
			f *= 10
			exponent--
		}
	}
	if precision < 0 || precision > maxFloatPrecision {
		precision = maxFloatPrecision
	}
	fmul := float32(pow10[precision])
	frnd := float32(0.5) / fmul
	rounded := f + frnd
	if f < 0 {
		rounded = f - frnd
	}
	whole := int32(rounded)
	if flags.exp != expNone && whole >= 10 {
		rounded *= 0.1
		exponent++
		whole = int32(rounded)
	}
	if whole == 0 && math.Signbit(float64(f)) {
		dst = append(dst, '-')
		flags.sign = signAuto
	}
	if whole > math.MaxInt16 || whole < math.MinInt16 || width > 4 {
		dst = appendInt32(dst, whole, width, flags)
	} else {
		dst = appendInt16(dst, int16(whole), width, flags)
	}
	if precision > 0 || flags.exp != expNone {
		dst = append(dst, '.')
	}
	if precision > 0 {
		fraction := rounded - float32(whole)
		if fraction < 0 {
			fraction = -fraction
		}
		fraction *= fmul
		ff := fmtFlags{zeroPad: true}
		if fraction > math.MaxUint16 || precision > 4 {
			dst = appendUint32(dst, uint32(fraction), precision, ff)
		} else {
			dst = appendUint16(dst, uint16(fraction), precision, ff)
		}
	}
	return appendExponent(dst, exponent, 2, flags)
}

// appendExponent emits the e/E suffix: sign always, zero-padded, at the
// given minimum width. Exponents fit the 16-bit decimal path comfortably.
func appendExponent(dst []byte, exponent, width int, flags fmtFlags) []byte {
	switch flags.exp {
	case expLower:
		dst = append(dst, 'e')
	case expUpper:
		dst = append(dst, 'E')
	default:
		return dst
	}
	return appendInt16(dst, int16(exponent), width, fmtFlags{sign: signAlways, zeroPad: true})
}
