package fibonacci

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Matrix2x2 is a 2x2 matrix of *big.Int values:
//
//	[ a b ]
//	[ c d ]
//
// It carries only what the matrix method needs: multiplication,
// exponentiation by squaring and a matrix-vector product.
type Matrix2x2 struct{ a, b, c, d *big.Int }

// Vector2 is a column vector of two *big.Int values.
type Vector2 [2]*big.Int

// NewMatrix returns a matrix with the given entries in row-major order.
func NewMatrix(a, b, c, d int64) *Matrix2x2 {
	return &Matrix2x2{
		a: big.NewInt(a),
		b: big.NewInt(b),
		c: big.NewInt(c),
		d: big.NewInt(d),
	}
}

// NewQMatrix returns the Fibonacci Q-matrix [[0, 1], [1, 1]].
// Q^n = [[F(n-1), F(n)], [F(n), F(n+1)]] for n >= 1.
func NewQMatrix() *Matrix2x2 {
	return NewMatrix(0, 1, 1, 1)
}

// Entries returns copies of the four entries in row-major order.
func (m *Matrix2x2) Entries() [4]*big.Int {
	return [4]*big.Int{
		new(big.Int).Set(m.a),
		new(big.Int).Set(m.b),
		new(big.Int).Set(m.c),
		new(big.Int).Set(m.d),
	}
}

// SetIdentity sets m to the identity matrix and returns it.
func (m *Matrix2x2) SetIdentity() *Matrix2x2 {
	m.a.SetInt64(1)
	m.b.SetInt64(0)
	m.c.SetInt64(0)
	m.d.SetInt64(1)
	return m
}

// Set copies x into m and returns m.
func (m *Matrix2x2) Set(x *Matrix2x2) *Matrix2x2 {
	m.a.Set(x.a)
	m.b.Set(x.b)
	m.c.Set(x.c)
	m.d.Set(x.d)
	return m
}

// Mul sets m to the product x*y and returns m. m may alias x or y.
func (m *Matrix2x2) Mul(x, y *Matrix2x2) *Matrix2x2 {
	a := dot(x.a, y.a, x.b, y.c)
	b := dot(x.a, y.b, x.b, y.d)
	c := dot(x.c, y.a, x.d, y.c)
	d := dot(x.c, y.b, x.d, y.d)
	m.a, m.b, m.c, m.d = a, b, c, d
	return m
}

// Pow sets m to x^e by exponentiation by squaring and returns m.
// x^0 is the identity. m may alias x.
func (m *Matrix2x2) Pow(x *Matrix2x2, e uint64) *Matrix2x2 {
	base := NewMatrix(0, 0, 0, 0).Set(x)
	result := NewMatrix(1, 0, 0, 1)
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		result.Mul(result, result)
		if (e>>uint(i))&1 == 1 {
			result.Mul(result, base)
		}
	}
	return m.Set(result)
}

// MulVector returns the product m*v as a new vector.
func (m *Matrix2x2) MulVector(v Vector2) Vector2 {
	return Vector2{
		dot(m.a, v[0], m.b, v[1]),
		dot(m.c, v[0], m.d, v[1]),
	}
}

// String renders the matrix as [[a b] [c d]].
func (m *Matrix2x2) String() string {
	return fmt.Sprintf("[[%s %s] [%s %s]]", m.a, m.b, m.c, m.d)
}

// dot returns x1*y1 + x2*y2 as a new integer.
func dot(x1, y1, x2, y2 *big.Int) *big.Int {
	r := new(big.Int).Mul(x1, y1)
	t := new(big.Int).Mul(x2, y2)
	return r.Add(r, t)
}

// MatrixVector raises Q to the n-th power and multiplies it by the column
// vector [0, 1], producing [F(n), F(n+1)].
func MatrixVector(n uint64) Vector2 {
	q := NewQMatrix()
	q.Pow(q, n)
	return q.MulVector(Vector2{big.NewInt(0), big.NewInt(1)})
}

// Matrix computes F(n) by matrix exponentiation in O(log n) matrix
// multiplications. It extracts the scalar from MatrixVector.
func Matrix(n uint64) *big.Int {
	return MatrixVector(n)[0]
}
