// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// MustVectorN builds a VectorN or fails the test.
func MustVectorN(t *testing.T, values ...float64) *vector.VectorN {
	t.Helper()
	v, err := vector.NewVectorN(values...)
	require.NoError(t, err)

	return v
}

type VectorNSuite struct {
	suite.Suite
	a, b, short *vector.VectorN
}

func (s *VectorNSuite) SetupTest() {
	s.a = MustVectorN(s.T(), 1, 2, 3)
	s.b = MustVectorN(s.T(), 4, -5, 6)
	s.short = MustVectorN(s.T(), 1, 2)
}

func (s *VectorNSuite) TestConstruction() {
	_, err := vector.NewVectorN()
	s.Require().ErrorIs(err, vector.ErrEmptyVector)
	_, err = vector.NewVectorNZero(0)
	s.Require().ErrorIs(err, numeric.ErrInvalidArgument)

	z, err := vector.NewVectorNZero(4)
	s.Require().NoError(err)
	s.Require().Equal(4, z.Size())
	s.Require().Equal(0.0, z.Length())

	src := []float64{1, 2}
	v := MustVectorN(s.T(), src...)
	src[0] = 99
	x, err := v.At(0)
	s.Require().NoError(err)
	s.Require().Equal(1.0, x, "constructor must copy")

	vals := v.Values()
	vals[1] = 99
	x, _ = v.At(1)
	s.Require().Equal(2.0, x, "Values must copy")
}

func (s *VectorNSuite) TestIndexing() {
	s.Require().NoError(s.a.Set(2, 7))
	x, err := s.a.At(2)
	s.Require().NoError(err)
	s.Require().Equal(7.0, x)

	_, err = s.a.At(3)
	s.Require().ErrorIs(err, vector.ErrOutOfRange)
	s.Require().ErrorIs(s.a.Set(-1, 0), vector.ErrOutOfRange)
}

func (s *VectorNSuite) TestDimensionMismatch() {
	_, err := s.a.Add(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	s.Require().ErrorIs(err, numeric.ErrInvalidArgument)

	_, err = s.a.Sub(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.Mul(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.Div(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.Dot(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.Distance(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.Lerp(s.short, 0.5)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	_, err = s.a.PosModv(s.short)
	s.Require().ErrorIs(err, vector.ErrDimensionMismatch)
	s.Require().ErrorIs(s.a.ClampValues(vector.Range{Min: 0, Max: 1}), vector.ErrDimensionMismatch)
	s.Require().False(s.a.Equal(s.short))
}

func (s *VectorNSuite) TestArithmetic() {
	sum, err := s.a.Add(s.b)
	s.Require().NoError(err)
	s.Require().True(sum.Equal(MustVectorN(s.T(), 5, -3, 9)))

	diff, err := s.a.Sub(s.b)
	s.Require().NoError(err)
	s.Require().True(diff.Equal(MustVectorN(s.T(), -3, 7, -3)))

	dot, err := s.a.Dot(s.b)
	s.Require().NoError(err)
	s.Require().Equal(12.0, dot)

	s.Require().True(s.a.Scale(2).Equal(MustVectorN(s.T(), 2, 4, 6)))
	s.Require().True(s.a.Neg().Equal(MustVectorN(s.T(), -1, -2, -3)))
	s.Require().True(s.b.Abs().Equal(MustVectorN(s.T(), 4, 5, 6)))
	s.Require().True(s.b.Sign().Equal(MustVectorN(s.T(), 1, -1, 1)))

	_, err = s.a.Cross(s.b)
	s.Require().ErrorIs(err, vector.ErrNotImplemented)
}

func (s *VectorNSuite) TestNormalize() {
	n, err := s.b.Normalized(1)
	s.Require().NoError(err)
	s.Require().InDelta(1, n.Length(), tol)
	s.Require().InDelta(s.b.Length(), 8.774964387392123, tol, "receiver untouched")

	z, _ := vector.NewVectorNZero(3)
	s.Require().NoError(z.Normalize(1))
	s.Require().Equal(0.0, z.Length())

	_, err = s.a.Normalized(0)
	s.Require().ErrorIs(err, vector.ErrZeroLength)
	s.Require().ErrorIs(err, numeric.ErrDivideByZero)
}

func (s *VectorNSuite) TestClampAndRound() {
	v := MustVectorN(s.T(), -3, 0.5, 9)
	s.Require().NoError(v.ClampValues(vector.Range{Min: -1, Max: 1}, vector.Range{Min: 0, Max: 1}, vector.Range{Min: 0, Max: 5}))
	s.Require().True(v.Equal(MustVectorN(s.T(), -1, 0.5, 5)))

	v.ClampValuesUniform(0, 1)
	s.Require().True(v.Equal(MustVectorN(s.T(), 0, 0.5, 1)))

	w := MustVectorN(s.T(), 0, 3, 4)
	w.ClampLength(0, 1)
	s.Require().True(w.ApproxEqual(MustVectorN(s.T(), 0, 0.6, 0.8), tol))

	r := MustVectorN(s.T(), 1.5, -0.5, 2.4)
	r.RoundValues()
	s.Require().True(r.Equal(MustVectorN(s.T(), 2, 0, 2)))
}

func (s *VectorNSuite) TestModLerpFormatHash() {
	m := MustVectorN(s.T(), -1, 4, 6).NegMod(3)
	s.Require().True(m.Equal(MustVectorN(s.T(), -1, -2, 0)))

	l, err := s.a.Lerp(s.b, 0.5)
	s.Require().NoError(err)
	s.Require().True(l.Equal(MustVectorN(s.T(), 2.5, -1.5, 4.5)))

	r1, err := s.a.LerpRand(s.b, numeric.NewRand(5))
	s.Require().NoError(err)
	r2, err := s.a.LerpRand(s.b, numeric.NewRand(5))
	s.Require().NoError(err)
	s.Require().True(r1.Equal(r2))

	s.Require().Equal("(1, 2, 3)", s.a.String())
	s.Require().Equal(s.a.Hash(), s.a.Clone().Hash())
	s.Require().NotEqual(s.a.Hash(), s.b.Hash())
	s.Require().Equal(vector.FromVector3(vector.NewVector3(1, 2, 3)).Hash(), s.a.Hash())
}

func TestVectorNSuite(t *testing.T) {
	suite.Run(t, new(VectorNSuite))
}
