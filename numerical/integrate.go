package numerical

// Integrate approximates the integral of f over [a, b] with the composite
// Simpson rule on count intervals. Odd counts are rounded up.
func Integrate(f func(float64) float64, a, b float64, count int) float64 {
	if count < 2 {
		count = 2
	}
	if count&1 == 1 {
		count++
	}

	h := (b - a) / float64(count)
	sum := f(a) + f(b)
	for i := 1; i < count; i++ {
		x := a + float64(i)*h
		if i&1 == 1 {
			sum += 4 * f(x)
		} else {
			sum += 2 * f(x)
		}
	}
	return sum * h / 3
}
