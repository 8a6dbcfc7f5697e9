package calculator

// GreatestCommonDivisor runs Euclid's algorithm on |a| and |b|.
// GreatestCommonDivisor(0, 0) is 0.
func (Calculator) GreatestCommonDivisor(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LeastCommonMultiple returns |a*b| / gcd(a, b), or 0 when either operand is 0.
// The product is taken in fixed width before dividing.
func (c Calculator) LeastCommonMultiple(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a*b) / c.GreatestCommonDivisor(a, b)
}

// IsPrime tests primality by 6k±1 trial division
func (Calculator) IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// FibonacciSequence returns the first count terms starting 0, 1, 1, 2, ...
func (Calculator) FibonacciSequence(count int) ([]int, error) {
	if count <= 0 {
		return nil, invalidArgument("FibonacciSequence", "Count must be positive")
	}

	sequence := make([]int, 0, count)
	sequence = append(sequence, 0)
	if count >= 2 {
		sequence = append(sequence, 1)
	}
	for i := 2; i < count; i++ {
		sequence = append(sequence, sequence[i-1]+sequence[i-2])
	}
	return sequence, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
