package tinyfmt_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/bjaus/tinyfmt"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func format(capacity int, f string, args ...any) (string, int) {
	buf := make([]byte, capacity)
	n := tinyfmt.Snprintf(buf, f, args...)
	if capacity == 0 {
		return "", n
	}
	idx := bytes.IndexByte(buf, 0)
	if idx < 0 {
		return string(buf), n
	}
	return string(buf[:idx]), n
}

// TestRoundTripProperties renders integers and parses them back across
// every supported width and radix.
func TestRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("signed 32-bit decimal round-trips", prop.ForAll(
		func(v int32) bool {
			s, _ := format(64, "%d", v)
			back, err := strconv.ParseInt(s, 10, 32)
			return err == nil && int32(back) == v
		},
		gen.Int32(),
	))

	properties.Property("unsigned 32-bit decimal round-trips", prop.ForAll(
		func(v uint32) bool {
			s, _ := format(64, "%u", v)
			back, err := strconv.ParseUint(s, 10, 32)
			return err == nil && uint32(back) == v
		},
		gen.UInt32(),
	))

	properties.Property("signed 64-bit decimal round-trips", prop.ForAll(
		func(v int64) bool {
			s, _ := format(64, "%lld", v)
			back, err := strconv.ParseInt(s, 10, 64)
			return err == nil && back == v
		},
		gen.Int64(),
	))

	properties.Property("unsigned 64-bit decimal round-trips", prop.ForAll(
		func(v uint64) bool {
			s, _ := format(64, "%llu", v)
			back, err := strconv.ParseUint(s, 10, 64)
			return err == nil && back == v
		},
		gen.UInt64(),
	))

	properties.Property("64-bit hex round-trips", prop.ForAll(
		func(v uint64) bool {
			s, _ := format(64, "%llx", v)
			back, err := strconv.ParseUint(s, 16, 64)
			return err == nil && back == v
		},
		gen.UInt64(),
	))

	properties.Property("64-bit octal round-trips", prop.ForAll(
		func(v uint64) bool {
			s, _ := format(64, "%llo", v)
			back, err := strconv.ParseUint(s, 8, 64)
			return err == nil && back == v
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestWidthProperties checks the width law: the rendered length is the
// larger of the requested width and the natural digit+sign count, for
// widths inside the path's clamp.
func TestWidthProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("width is a minimum, never a truncation", prop.ForAll(
		func(v int32, w int) bool {
			s, _ := format(64, "%"+strconv.Itoa(w)+"d", v)
			natural := len(strconv.FormatInt(int64(v), 10))
			want := natural
			if w > want {
				want = w
			}
			return len(s) == want
		},
		gen.Int32(),
		gen.IntRange(0, 10),
	))

	properties.Property("zero padding preserves the value", prop.ForAll(
		func(v int32, w int) bool {
			s, _ := format(64, "%0"+strconv.Itoa(w)+"d", v)
			back, err := strconv.ParseInt(s, 10, 64)
			return err == nil && int32(back) == v
		},
		gen.Int32(),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}

// TestCapacityProperties checks the truncation law: for any capacity the
// returned length equals the unbounded length, the buffer is
// NUL-terminated, and the content is an exact prefix.
func TestCapacityProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("logical length is capacity-independent", prop.ForAll(
		func(v int32, s string, capacity int) bool {
			full, wantLen := format(256, "v=%d s=%s", v, s)
			if wantLen != len(full) {
				return false
			}

			buf := make([]byte, capacity)
			n := tinyfmt.Snprintf(buf, "v=%d s=%s", v, s)
			if n != wantLen {
				return false
			}
			if capacity == 0 {
				return true
			}
			idx := bytes.IndexByte(buf, 0)
			if idx < 0 {
				return false
			}
			keep := min(wantLen, capacity-1)
			return idx == keep && string(buf[:idx]) == full[:keep]
		},
		gen.Int32(),
		gen.RegexMatch(`^[a-z]{0,8}$`).SuchThat(func(s string) bool {
			return !strings.ContainsAny(s, "%\x00")
		}),
		gen.IntRange(0, 48),
	))

	properties.TestingRun(t)
}
