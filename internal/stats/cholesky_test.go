package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationMatrix(t *testing.T) {
	m := CorrelationMatrix(3, 0.3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, m.At(i, i), "diagonal must be 1")
		for j := 0; j < 3; j++ {
			if i != j {
				assert.InDelta(t, 0.7, m.At(i, j), 1e-12, "off-diagonal must be 1-factor")
			}
		}
	}
}

func TestCorrelationMatrix_SingleAsset(t *testing.T) {
	m := CorrelationMatrix(1, 0.3)
	r, c := m.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestCholeskyLower_Valid(t *testing.T) {
	m := CorrelationMatrix(4, 0.3)

	l, ok := CholeskyLower(m)
	require.True(t, ok, "flat block matrix with off-diag 0.7 is positive definite")

	// L × Lᵀ가 원래 행렬을 복원하는지 스팟 체크
	var sum float64
	for k := 0; k < 4; k++ {
		sum += l.At(1, k) * l.At(2, k)
	}
	assert.InDelta(t, 0.7, sum, 1e-10)
}

func TestCholeskyLower_NotPositiveDefinite(t *testing.T) {
	// factor = -0.5 → off-diag 1.5 > 1: 상관행렬로 성립 불가
	m := CorrelationMatrix(3, -0.5)

	_, ok := CholeskyLower(m)
	assert.False(t, ok, "off-diagonal > 1 must fail factorization")
}

func TestIdentityLower(t *testing.T) {
	l := IdentityLower(3)
	for i := 0; i < 3; i++ {
		for j := 0; j <= i; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, l.At(i, j))
		}
	}
}

func TestPairLower(t *testing.T) {
	l := PairLower(0.25)

	assert.Equal(t, 1.0, l[0][0])
	assert.Equal(t, 0.0, l[0][1])
	assert.Equal(t, 0.25, l[1][0])
	assert.InDelta(t, math.Sqrt(1-0.25*0.25), l[1][1], 1e-12)

	// 상관 복원: w2 = rho*z1 + sqrt(1-rho^2)*z2 → corr(w1,w2) = rho
	assert.InDelta(t, 1.0, l[1][0]*l[1][0]+l[1][1]*l[1][1], 1e-12, "row norm must be 1")
}
