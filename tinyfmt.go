package tinyfmt

import (
	"math"
	"strings"
)

// convLetters is the whitelist of terminating conversion letters. The
// scanner takes the first occurrence after a % as the directive's
// terminator; everything between is the subspec.
const convLetters = "duxXfFeEgGs%iocpaAn"

// scratchSize covers the widest token a renderer can produce: a fully
// padded octal (22 positions), or a float with sign, 10-digit whole part,
// point, 9 fraction digits and a signed exponent suffix.
const scratchSize = 40

// Snprintf renders format and args into buf, whose length is the
// capacity. The buffer receives the output plus a terminating NUL within
// its capacity; when the output does not fit, writing stops but counting
// continues. The return value is the logical length — the bytes the
// output would occupy given unbounded capacity — so a caller can size a
// retry buffer exactly. A zero-length buf is legal: nothing is written
// and the logical length is still returned.
//
// Malformed directives never fail: unknown flag text degrades to
// defaults, and a % with no terminating conversion letter before the end
// of the format is dropped, with the remaining text passing through
// literally.
func Snprintf(buf []byte, format string, args ...any) int {
	return Vsnprintf(buf, format, args)
}

// Vsnprintf is [Snprintf] with an explicit argument list.
func Vsnprintf(buf []byte, format string, args []any) int {
	o := output{dst: buf}
	r := argReader{args: args}
	var scratch [scratchSize]byte
	for {
		pct := strings.IndexByte(format, '%')
		if pct < 0 {
			break
		}
		o.writeString(format[:pct])
		rest := format[pct+1:]
		letAt := strings.IndexAny(rest, convLetters)
		if letAt < 0 {
			// No terminator anywhere ahead; drop the introducer and
			// let the tail pass through as literal text.
			format = rest
			continue
		}
		letter := rest[letAt]
		sub := rest[:letAt]
		format = rest[letAt+1:]

		k, _ := kindOf(letter)
		flags, s := parseFlags(sub)
		width, s := parseWidth(s)
		if width == widthFromArg {
			if width = r.fetchStar(); width < 0 {
				width = 0
			}
		}
		precision, s := parsePrecision(s)
		if precision == precisionFromArg {
			if precision = r.fetchStar(); precision < 0 {
				precision = precisionUnset
			}
		}
		class := parseLength(s)

		tok := scratch[:0]
		switch k {
		case kindPercent:
			o.writeString("%")
		case kindSigned:
			tok = appendSigned(tok, r.fetchInt(class), class, width, flags)
			o.writeBytes(tok)
		case kindUnsigned:
			tok = appendUnsigned(tok, r.fetchUint(class), class, width, flags)
			o.writeBytes(tok)
		case kindHex, kindHexUpper:
			tok = appendHex(tok, sizeOfClass(class), r.fetchUint(class), width, flags, k == kindHexUpper)
			o.writeBytes(tok)
		case kindOctal:
			tok = appendOctal(tok, sizeOfClass(class), r.fetchUint(class), width, flags)
			o.writeBytes(tok)
		case kindFixed, kindExp, kindExpUpper, kindGeneral, kindGeneralUpper:
			f64, f32, narrow := r.fetchFloat()
			if precision == precisionUnset {
				precision = defaultFloatPrecision
			}
			switch k {
			case kindExp:
				flags.exp = expLower
			case kindExpUpper:
				flags.exp = expUpper
			case kindGeneral, kindGeneralUpper:
				abs := math.Abs(f64)
				if narrow {
					abs = math.Abs(float64(f32))
				}
				if abs < gMin || abs > gMax {
					if k == kindGeneral {
						flags.exp = expLower
					} else {
						flags.exp = expUpper
					}
				}
			}
			if narrow {
				tok = appendFloat32(tok, f32, width, precision, flags)
			} else {
				tok = appendFloat64(tok, f64, width, precision, flags)
			}
			o.writeBytes(tok)
		case kindString:
			if v, ok := r.fetch(); ok {
				switch v := v.(type) {
				case string:
					o.writeString(v)
				case []byte:
					o.writeBytes(v)
				}
			}
		case kindChar:
			tok = append(tok, r.fetchByte())
			o.writeBytes(tok)
		case kindPointer:
			tok = appendHex(tok, sizeOfClass(sizeClass), r.fetchPointer(), width, flags, false)
			o.writeBytes(tok)
		case kindCount:
			if p, ok := r.fetchCountPtr(); ok {
				*p = o.n
			}
		}
	}
	o.writeString(format)
	o.terminate()
	return o.n
}
