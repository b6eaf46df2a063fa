package stats

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// =============================================================================
// 상관행렬 & Cholesky 분해
// =============================================================================

// CorrelationMatrix 플랫 블록 상관행렬 생성
// 대각 = 1.0, 비대각 = 1 - factor
// n == 1이면 [[1.0]]
func CorrelationMatrix(n int, factor float64) *mat.SymDense {
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		m.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			m.SetSym(i, j, 1.0-factor)
		}
	}
	return m
}

// CholeskyLower 상관행렬의 하삼각 Cholesky 인자 계산
// ok == false: 양정치가 아님 (호출자가 identity fallback 결정)
func CholeskyLower(m *mat.SymDense) (*mat.TriDense, bool) {
	var chol mat.Cholesky
	if ok := chol.Factorize(m); !ok {
		return nil, false
	}

	n, _ := m.Dims()
	l := mat.NewTriDense(n, mat.Lower, nil)
	chol.LTo(l)
	return l, true
}

// IdentityLower n×n 단위 하삼각 행렬 (무상관 fallback용)
func IdentityLower(n int) *mat.TriDense {
	l := mat.NewTriDense(n, mat.Lower, nil)
	for i := 0; i < n; i++ {
		l.SetTri(i, i, 1.0)
	}
	return l
}

// PairLower 2×2 상관행렬의 닫힌형 하삼각 Cholesky 인자
// [[1, 0], [rho, sqrt(1-rho^2)]]
// 신용 엔진의 2-스트림(시스템/기후) 상관 충격 생성에 사용
func PairLower(rho float64) [2][2]float64 {
	return [2][2]float64{
		{1.0, 0.0},
		{rho, math.Sqrt(1.0 - rho*rho)},
	}
}
