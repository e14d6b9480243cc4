// Package bounds orders pairs of integers into low/high ranges.
package bounds

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Min returns the smaller of a and b.
func Min[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// MinMax returns (a, b) ordered as (low, high).
func MinMax[T Integer](a, b T) (lo, hi T) {
	return Min(a, b), Max(a, b)
}

// Rect returns the per-axis bounds of two points (x1, y1) and (x2, y2).
func Rect[T Integer](x1, y1, x2, y2 T) (xlo, xhi, ylo, yhi T) {
	xlo, xhi = MinMax(x1, x2)
	ylo, yhi = MinMax(y1, y2)
	return xlo, xhi, ylo, yhi
}
