package tinyfmt

import "math"

// Integer renderers. All of them append to a caller-owned scratch slice
// and return the extended slice, strconv.AppendInt style, so nothing here
// allocates as long as the token fits the scratch capacity.
//
// Width is 1-based, is a minimum (never truncates), counts the sign
// character, and is clamped to the digit capacity of the render path:
// 4 for 16-bit decimal, 9 for 32-bit decimal, 19/20 for 64-bit decimal,
// 15 for hex, 21 for octal (0-based after the initial decrement).
//
// The 16 and 32-bit decimal paths extract digits with a fixed multiply-add
// weighted-sum reduction over the value's nibbles instead of iterative
// division, which is the cheap option on cores with slow hardware divide.
// The 64-bit path redirects values that fit 32 bits and otherwise falls
// back to plain divide-and-reverse.

const (
	lowerHexDigits = "0123456789abcdef"
	upperHexDigits = "0123456789ABCDEF"
)

// intSize bounds the digit positions scanned by the hex and octal paths.
type intSize uint8

const (
	size16 intSize = iota
	size32
	size64
)

func sizeOfClass(c lengthClass) intSize {
	if classBits(c) == 64 {
		return size64
	}
	return size32
}

// appendSign emits the sign character the directive's flags call for.
func appendSign(dst []byte, neg bool, flags fmtFlags) []byte {
	switch {
	case neg:
		dst = append(dst, '-')
	case flags.sign == signAlways:
		dst = append(dst, '+')
	case flags.sign == signSpace:
		dst = append(dst, ' ')
	}
	return dst
}

// padSign applies the width policy shared by the signed decimal paths.
// Width counts the sign. Zero padding places the sign before the zeros;
// space padding places it after the spaces, flush against the digits.
func padSign(dst []byte, width, top, maxw int, neg bool, flags fmtFlags) []byte {
	if width <= 0 {
		return appendSign(dst, neg, flags)
	}
	if width > maxw {
		width = maxw
	} else {
		width--
	}
	if neg || flags.sign != signAuto {
		width--
	}
	if flags.zeroPad {
		dst = appendSign(dst, neg, flags)
		for i := width; i > top; i-- {
			dst = append(dst, '0')
		}
	} else {
		for i := width; i > top; i-- {
			dst = append(dst, ' ')
		}
		dst = appendSign(dst, neg, flags)
	}
	return dst
}

// padOnly is the width policy for the unsigned paths, which never carry
// a sign.
func padOnly(dst []byte, width, top, maxw int, flags fmtFlags) []byte {
	if width <= 0 {
		return dst
	}
	if width > maxw {
		width = maxw
	} else {
		width--
	}
	pad := byte(' ')
	if flags.zeroPad {
		pad = '0'
	}
	for i := width; i > top; i-- {
		dst = append(dst, pad)
	}
	return dst
}

// dec16 expands a 16-bit magnitude into decimal digits, least significant
// first, via the weighted contribution of each nibble to each decimal
// position. top is the index of the most significant nonzero digit.
func dec16(n uint16) (d [5]uint8, top int) {
	n0 := uint32(n & 0xF)
	n1 := uint32((n >> 4) & 0xF)
	n2 := uint32((n >> 8) & 0xF)
	n3 := uint32((n >> 12) & 0xF)

	a := 6*(n3+n2+n1) + n0
	q := a / 10
	d[0] = uint8(a % 10)

	a = q + 9*n3 + 5*n2 + n1
	q = a / 10
	d[1] = uint8(a % 10)
	if d[1] != 0 {
		top = 1
	}

	a = q + 2*n2
	q = a / 10
	d[2] = uint8(a % 10)
	if d[2] != 0 {
		top = 2
	}

	a = q + 4*n3
	q = a / 10
	d[3] = uint8(a % 10)
	if d[3] != 0 {
		top = 3
	}

	d[4] = uint8(q)
	if d[4] != 0 {
		top = 4
	}
	return d, top
}

// dec32 is the 32-bit analogue of dec16.
func dec32(n uint32) (d [10]uint8, top int) {
	n0 := n & 0xF
	n1 := (n >> 4) & 0xF
	n2 := (n >> 8) & 0xF
	n3 := (n >> 12) & 0xF
	n4 := (n >> 16) & 0xF
	n5 := (n >> 20) & 0xF
	n6 := (n >> 24) & 0xF
	n7 := (n >> 28) & 0xF

	a := 6*(n7+n6+n5+n4+n3+n2+n1) + n0
	q := a / 10
	d[0] = uint8(a % 10)

	a = q + 5*n7 + n6 + 7*n5 + 3*n4 + 9*n3 + 5*n2 + n1
	q = a / 10
	d[1] = uint8(a % 10)
	if d[1] != 0 {
		top = 1
	}

	a = q + 4*n7 + 2*n6 + 5*n5 + 5*n4 + 2*n2
	q = a / 10
	d[2] = uint8(a % 10)
	if d[2] != 0 {
		top = 2
	}

	a = q + 5*n7 + 7*n6 + 8*n5 + 5*n4 + 4*n3
	q = a / 10
	d[3] = uint8(a % 10)
	if d[3] != 0 {
		top = 3
	}

	a = q + 3*n7 + 7*n6 + 4*n5 + 6*n4
	q = a / 10
	d[4] = uint8(a % 10)
	if d[4] != 0 {
		top = 4
	}

	a = q + 4*n7 + 7*n6
	q = a / 10
	d[5] = uint8(a % 10)
	if d[5] != 0 {
		top = 5
	}

	a = q + 8*n7 + 6*n6 + n5
	q = a / 10
	d[6] = uint8(a % 10)
	if d[6] != 0 {
		top = 6
	}

	a = q + 6*n7 + n6
	q = a / 10
	d[7] = uint8(a % 10)
	if d[7] != 0 {
		top = 7
	}

	a = q + 2*n7
	q = a / 10
	d[8] = uint8(a % 10)
	if d[8] != 0 {
		top = 8
	}

	d[9] = uint8(q)
	if d[9] != 0 {
		top = 9
	}
	return d, top
}

func appendInt16(dst []byte, n int16, width int, flags fmtFlags) []byte {
	m := uint16(n)
	if n < 0 {
		m = -m
	}
	d, top := dec16(m)
	dst = padSign(dst, width, top, 4, n < 0, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

func appendUint16(dst []byte, n uint16, width int, flags fmtFlags) []byte {
	d, top := dec16(n)
	dst = padOnly(dst, width, top, 4, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

func appendInt32(dst []byte, n int32, width int, flags fmtFlags) []byte {
	m := uint32(n)
	if n < 0 {
		m = -m
	}
	d, top := dec32(m)
	dst = padSign(dst, width, top, 9, n < 0, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

func appendUint32(dst []byte, n uint32, width int, flags fmtFlags) []byte {
	d, top := dec32(n)
	dst = padOnly(dst, width, top, 9, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// appendInt64 renders a signed 64-bit decimal. Magnitudes that fit the
// 32-bit range take the weighted-sum path; the rest use plain repeated
// division into a fixed digit buffer followed by reversal.
func appendInt64(dst []byte, n int64, width int, flags fmtFlags) []byte {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return appendInt32(dst, int32(n), width, flags)
	}
	var tmp [19]byte
	m := uint64(n)
	if n < 0 {
		m = -m
	}
	top := 0
	for m != 0 {
		tmp[top] = byte('0' + m%10)
		m /= 10
		top++
	}
	top--
	reverse(tmp[:top+1])
	dst = padSign(dst, width, top, 19, n < 0, flags)
	return append(dst, tmp[:top+1]...)
}

func appendUint64(dst []byte, n uint64, width int, flags fmtFlags) []byte {
	if n <= math.MaxUint32 {
		return appendUint32(dst, uint32(n), width, flags)
	}
	var tmp [20]byte
	top := 0
	for n != 0 {
		tmp[top] = byte('0' + n%10)
		n /= 10
		top++
	}
	top--
	reverse(tmp[:top+1])
	dst = padOnly(dst, width, top, 20, flags)
	return append(dst, tmp[:top+1]...)
}

// appendHex renders an unsigned value in hexadecimal by masking out each
// nibble; size bounds the positions scanned.
func appendHex(dst []byte, size intSize, n uint64, width int, flags fmtFlags, upper bool) []byte {
	digits := lowerHexDigits
	if upper {
		digits = upperHexDigits
	}
	last := 3
	if size >= size32 {
		last = 7
	}
	if size >= size64 {
		last = 15
	}
	var d [16]uint8
	top := 0
	for i := 0; i <= last; i++ {
		d[i] = uint8(n>>(4*i)) & 0xF
		if i > 0 && d[i] != 0 {
			top = i
		}
	}
	dst = padOnly(dst, width, top, 15, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, digits[d[i]])
	}
	return dst
}

// appendOctal renders an unsigned value in octal from 3-bit groups.
func appendOctal(dst []byte, size intSize, n uint64, width int, flags fmtFlags) []byte {
	last := 5
	if size >= size32 {
		last = 10
	}
	if size >= size64 {
		last = 21
	}
	var d [22]uint8
	top := 0
	for i := 0; i <= last; i++ {
		d[i] = uint8(n>>(3*i)) & 0x7
		if i > 0 && d[i] != 0 {
			top = i
		}
	}
	dst = padOnly(dst, width, top, 21, flags)
	for i := top; i >= 0; i-- {
		dst = append(dst, '0'+d[i])
	}
	return dst
}

// appendSigned and appendUnsigned pick the decimal path for a resolved
// length class.
func appendSigned(dst []byte, v int64, class lengthClass, width int, flags fmtFlags) []byte {
	if classBits(class) == 64 {
		return appendInt64(dst, v, width, flags)
	}
	return appendInt32(dst, int32(v), width, flags)
}

func appendUnsigned(dst []byte, v uint64, class lengthClass, width int, flags fmtFlags) []byte {
	if classBits(class) == 64 {
		return appendUint64(dst, v, width, flags)
	}
	return appendUint32(dst, uint32(v), width, flags)
}
