package fibonacci

import "math/big"

// Sequence returns the first n+1 Fibonacci numbers, F(0) through F(n).
// The whole sequence is kept in memory, which makes it O(n) in space and
// O(n²) in bits.
func Sequence(n uint64) []*big.Int {
	seq := make([]*big.Int, 2, max(n+1, 2))
	seq[0] = big.NewInt(0)
	seq[1] = big.NewInt(1)
	for i := uint64(1); i < n; i++ {
		next := new(big.Int).Add(seq[i], seq[i-1])
		seq = append(seq, next)
	}
	return seq[:n+1]
}

// IterativeArray computes F(n) by building the sequence seeded with [0, 1]
// and appending a[i]+a[i-1] until index n is reached.
func IterativeArray(n uint64) *big.Int {
	return Sequence(n)[n]
}

// IterativePair computes F(n) keeping only the last two values. Each
// iteration updates (a, b) to (b, a+b) simultaneously; after n iterations a
// holds F(n). O(n) additions, O(1) live integers.
func IterativePair(n uint64) *big.Int {
	a := big.NewInt(0)
	b := big.NewInt(1)
	for i := uint64(0); i < n; i++ {
		// a, b = b, a+b reusing the storage of a for the new b.
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
