package tinyfmt

import "reflect"

// argReader pulls successive values from the argument list. The decode
// width of each pull is fully determined by the conversion kind and length
// class of the directive being rendered; a mismatch between the declared
// and actual argument type degrades to a zero value, never a fault.
type argReader struct {
	args []any
	next int
}

func (r *argReader) fetch() (any, bool) {
	if r.next >= len(r.args) {
		return nil, false
	}
	v := r.args[r.next]
	r.next++
	return v, true
}

// coerceUint reduces any built-in integer value to its 64-bit two's
// complement bit pattern. Non-integer arguments yield 0.
func coerceUint(v any) uint64 {
	switch v := v.(type) {
	case int:
		return uint64(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint:
		return uint64(v)
	case uint8:
		return uint64(v)
	case uint16:
		return uint64(v)
	case uint32:
		return uint64(v)
	case uint64:
		return v
	case uintptr:
		return uint64(v)
	}
	return 0
}

// fetchInt pulls a signed value truncated to the class width.
func (r *argReader) fetchInt(class lengthClass) int64 {
	v, ok := r.fetch()
	if !ok {
		return 0
	}
	raw := coerceUint(v)
	if classBits(class) == 64 {
		return int64(raw)
	}
	return int64(int32(raw))
}

// fetchUint pulls an unsigned value truncated to the class width.
func (r *argReader) fetchUint(class lengthClass) uint64 {
	v, ok := r.fetch()
	if !ok {
		return 0
	}
	raw := coerceUint(v)
	if classBits(class) == 64 {
		return raw
	}
	return uint64(uint32(raw))
}

// fetchFloat pulls a floating value. A float32 argument selects the
// narrow render path; anything else goes through the working (float64)
// path, with integer arguments converted as a courtesy.
func (r *argReader) fetchFloat() (f64 float64, f32 float32, narrow bool) {
	v, ok := r.fetch()
	if !ok {
		return 0, 0, false
	}
	switch v := v.(type) {
	case float64:
		return v, 0, false
	case float32:
		return 0, v, true
	}
	return float64(int64(coerceUint(v))), 0, false
}

func (r *argReader) fetchByte() byte {
	v, ok := r.fetch()
	if !ok {
		return 0
	}
	return byte(coerceUint(v))
}

// fetchPointer pulls a pointer-shaped value as an unsigned integer of
// pointer width. The fast cases avoid reflection; the fallback covers the
// reference kinds that carry an address.
func (r *argReader) fetchPointer() uint64 {
	v, ok := r.fetch()
	if !ok || v == nil {
		return 0
	}
	if p, ok := v.(uintptr); ok {
		return uint64(p)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return uint64(rv.Pointer())
	}
	return coerceUint(v)
}

func (r *argReader) fetchCountPtr() (*int, bool) {
	v, ok := r.fetch()
	if !ok {
		return nil, false
	}
	p, ok := v.(*int)
	return p, ok
}

// fetchStar resolves a * width or precision from the argument list.
func (r *argReader) fetchStar() int {
	v, ok := r.fetch()
	if !ok {
		return 0
	}
	return int(int32(coerceUint(v)))
}
