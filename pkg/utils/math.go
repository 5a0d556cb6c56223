// pkg/utils/math.go
package utils

// Sign returns -1, 0 or 1 depending on the sign of x.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
