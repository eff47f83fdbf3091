package core

// ZeroExtend returns buf grown to length n with the new tail set to zero.
// buf capacity is reused when possible. If n <= len(buf), buf is returned
// unchanged; ZeroExtend never truncates.
func ZeroExtend(buf []float64, n int) []float64 {
	if n <= len(buf) {
		return buf
	}
	if cap(buf) >= n {
		old := len(buf)
		buf = buf[:n]
		Zero(buf[old:])
		return buf
	}
	out := make([]float64, n)
	copy(out, buf)
	return out
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// Clone returns a copy of buf. A nil input gives nil.
func Clone(buf []float64) []float64 {
	if buf == nil {
		return nil
	}
	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}
