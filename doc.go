// Package tinyfmt renders printf-style format strings into fixed-capacity
// byte buffers without allocating.
//
// The entry points are [Snprintf] and [Vsnprintf]. Both take a destination
// buffer whose length is the capacity, a format string, and arguments, and
// return the logical length: the number of bytes the output would occupy
// given unbounded capacity. The buffer always receives a terminating NUL
// within its capacity (displacing the last content byte if the output was
// truncated), so the result drops straight into C-interop and wire buffers:
//
//	var buf [64]byte
//	n := tinyfmt.Snprintf(buf[:], "temp=%d.%02u C", whole, frac)
//	if n >= len(buf) {
//		// output was truncated; n is the capacity a retry needs
//	}
//
// # Why not fmt
//
// The engine is built for environments where fmt's allocation and
// reflection machinery is unwelcome: TinyGo targets, interrupt-style
// callbacks, and code that formats into caller-owned buffers. One pass over
// the format string, no dynamic allocation, no locale tables, and scratch
// space statically sized to the widest supported value. Calls are
// independent, so concurrent use is safe as long as each call owns its
// destination buffer.
//
// # Conversions
//
// Supported conversion letters:
//
//   - %d, %i — signed decimal
//   - %u — unsigned decimal
//   - %x, %X — hexadecimal, lower/upper
//   - %o — octal
//   - %f, %F — fixed-point float
//   - %e, %E — exponential float
//   - %g, %G — fixed within roughly 1e-4..1e6, exponential outside
//   - %a, %A — treated as %e, %E
//   - %s — string or []byte, copied verbatim
//   - %c — single byte
//   - %p — pointer as unsigned hex of pointer width
//   - %% — literal percent
//   - %n — stores the logical length so far through a *int argument
//
// Length modifiers h/hh select the 32-bit int class, l/L the platform
// word, and ll/j 64 bits; z and t resolve against those widths when the
// package is built. Width may be given as digits or *; precision as
// .digits or .*. A % with no terminating conversion letter before the end
// of the format is dropped and the remaining text passes through
// literally.
//
// # Flags
//
// The 0 (zero-pad), + (force sign), and space (space for non-negative)
// flags are honored. Width is a minimum, counts the sign character, and
// never truncates; with 0 the sign precedes the pad zeros, without it the
// sign sits between the pad spaces and the first digit. The - and # flags
// are parsed and deliberately ignored.
//
// # Deviations
//
// tinyfmt trades strict C99 conformance for bounded cost:
//
//   - float precision is clamped to 9 digits (default 4)
//   - %f falls back to %e when the whole part would overflow int32
//   - %g never suppresses trailing zeros
//   - %s ignores width and precision
//   - rounding is half-away-from-zero on the binary value, not exact
//     IEEE-754 correctly-rounded output
//   - NaN and infinities render as NAN, INF, -INF under every width,
//     precision, and flag combination
//
// Mismatched argument and conversion types render as zero values rather
// than faulting; argument counts are the caller's responsibility, exactly
// as with C's snprintf.
package tinyfmt
