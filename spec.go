package tinyfmt

import (
	"math/bits"
	"strings"
)

// kind is the semantic meaning of a directive's conversion letter,
// resolved once by the scanner and consumed once by the render stage.
type kind uint8

const (
	kindSigned       kind = iota // d, i
	kindUnsigned                 // u
	kindHex                      // x
	kindHexUpper                 // X
	kindOctal                    // o
	kindFixed                    // f, F
	kindExp                      // e, a
	kindExpUpper                 // E, A
	kindGeneral                  // g
	kindGeneralUpper             // G
	kindString                   // s
	kindChar                     // c
	kindPointer                  // p
	kindPercent                  // %
	kindCount                    // n
)

// lengthClass is the integer width family selected by a length modifier.
type lengthClass uint8

const (
	lengthInt lengthClass = iota
	lengthLong
	lengthLongLong
)

type signMode uint8

const (
	signAuto signMode = iota
	signAlways
	signSpace
)

type expForm uint8

const (
	expNone expForm = iota
	expLower
	expUpper
)

// fmtFlags carries the flag characters of one directive. leftAlign and
// altForm are parsed so their characters are consumed, but have no
// rendering effect.
type fmtFlags struct {
	leftAlign bool
	altForm   bool
	zeroPad   bool
	sign      signMode
	exp       expForm
}

const (
	widthFromArg     = -2
	precisionFromArg = -2
	precisionUnset   = -1

	defaultFloatPrecision = 4
	maxFloatPrecision     = 9
)

// Decode widths of the length classes. The int class is fixed at 32 bits;
// the long class tracks the platform word.
const (
	intClassBits      = 32
	longClassBits     = bits.UintSize
	longLongClassBits = 64
)

// sizeClass resolves the z and t modifiers against the class widths when
// the package is initialized, never per directive.
var sizeClass = func() lengthClass {
	switch {
	case bits.UintSize <= intClassBits:
		return lengthInt
	case bits.UintSize <= longClassBits:
		return lengthLong
	default:
		return lengthLongLong
	}
}()

func classBits(c lengthClass) int {
	switch c {
	case lengthLong:
		return longClassBits
	case lengthLongLong:
		return longLongClassBits
	}
	return intClassBits
}

func kindOf(c byte) (kind, bool) {
	switch c {
	case 'd', 'i':
		return kindSigned, true
	case 'u':
		return kindUnsigned, true
	case 'x':
		return kindHex, true
	case 'X':
		return kindHexUpper, true
	case 'o':
		return kindOctal, true
	case 'f', 'F':
		return kindFixed, true
	case 'e', 'a':
		return kindExp, true
	case 'E', 'A':
		return kindExpUpper, true
	case 'g':
		return kindGeneral, true
	case 'G':
		return kindGeneralUpper, true
	case 's':
		return kindString, true
	case 'c':
		return kindChar, true
	case 'p':
		return kindPointer, true
	case '%':
		return kindPercent, true
	case 'n':
		return kindCount, true
	}
	return 0, false
}

// parseFlags consumes the flag characters leading the subspec.
func parseFlags(sub string) (fmtFlags, string) {
	var f fmtFlags
	for len(sub) > 0 {
		switch sub[0] {
		case '-':
			f.leftAlign = true
		case '+':
			f.sign = signAlways
		case ' ':
			if f.sign != signAlways {
				f.sign = signSpace
			}
		case '#':
			f.altForm = true
		case '0':
			f.zeroPad = true
		default:
			return f, sub
		}
		sub = sub[1:]
	}
	return f, sub
}

// parseWidth reads a numeric width or the * sentinel. Widths large enough
// to overflow are capped; every render path clamps far below this anyway.
func parseWidth(sub string) (int, string) {
	if len(sub) > 0 && sub[0] == '*' {
		return widthFromArg, sub[1:]
	}
	w := 0
	i := 0
	for i < len(sub) && sub[i] >= '0' && sub[i] <= '9' {
		if w < 1<<24 {
			w = w*10 + int(sub[i]-'0')
		}
		i++
	}
	return w, sub[i:]
}

// parsePrecision reads an optional .digits or .* precision. A bare dot or
// unparsable digits resolve to unspecified rather than failing.
func parsePrecision(sub string) (int, string) {
	dot := strings.IndexByte(sub, '.')
	if dot < 0 {
		return precisionUnset, sub
	}
	rest := sub[dot+1:]
	if len(rest) > 0 && rest[0] == '*' {
		return precisionFromArg, rest[1:]
	}
	p := 0
	i := 0
	for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
		if p < 1<<24 {
			p = p*10 + int(rest[i]-'0')
		}
		i++
	}
	if i == 0 {
		return precisionUnset, rest
	}
	return p, rest[i:]
}

// parseLength maps the length-modifier letters remaining in the subspec
// to a class. ll and j mean 64 bits regardless of platform; l and L the
// platform word; h and hh the int class; z and t whatever class the
// platform word resolved to at init.
func parseLength(sub string) lengthClass {
	switch {
	case strings.Contains(sub, "ll"):
		return lengthLongLong
	case strings.ContainsAny(sub, "lL"):
		return lengthLong
	case strings.Contains(sub, "j"):
		return lengthLongLong
	case strings.Contains(sub, "h"):
		return lengthInt
	case strings.Contains(sub, "z"), strings.Contains(sub, "t"):
		return sizeClass
	}
	return lengthInt
}
