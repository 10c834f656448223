package are

import (
	"cmp"
	"math"
	"reflect"
)

// NearlyEqual reports whether x == y, allowing x to be one representable
// value away from y when x is a floating-point number. Only x's neighbors
// are considered. Integers, strings and every other kind are compared
// exactly.
func NearlyEqual[T cmp.Ordered](x, y T) bool {
	if x == y {
		return true
	}
	// reflect also catches named types like `type Celsius float64`
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	switch vx.Kind() {
	case reflect.Float64:
		f, target := vx.Float(), vy.Float()
		return math.Nextafter(f, math.Inf(1)) == target ||
			math.Nextafter(f, math.Inf(-1)) == target
	case reflect.Float32:
		f, target := float32(vx.Float()), float32(vy.Float())
		return math.Nextafter32(f, float32(math.Inf(1))) == target ||
			math.Nextafter32(f, float32(math.Inf(-1))) == target
	default:
		return false
	}
}
