package credit

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wonny/climarisk/internal/stats"
)

// =============================================================================
// Stochastic PD Simulation (Monte Carlo)
// =============================================================================

// SimulatePD 기후 스트레스 하의 PD 분포를 Monte Carlo로 계산
//
// 모형: 일별 스텝(dt=1/252)마다 경로별로 상관된 표준정규 충격 2개를 생성
//   - w1: 평균회귀 PD 과정 구동 (속도 κ, 장기평균 θ=base_pd, 변동성 σ)
//   - w2: 평균회귀 기후충격 과정 구동 (0으로 회귀, 변동성 1, 동일 κ)
//
// 두 스트림의 상관은 고정 ρ=0.25, 2×2 Cholesky 인자로 실현.
// 스텝마다 PD에 기후효과 β(climateFactor + climateShock_t)가 가산되고
// [0.0001, 0.9999]로 하드 클리핑해 유효 확률을 유지.
//
// 경로 행렬은 요약 통계 추출 후 폐기 — 터미널 값만 반환.
// stressed_pd = 터미널 분포의 99 백분위 (고정 관례)
func (e *Engine) SimulatePD(horizonYears int, climateFactor float64, nSims int, seed int64) (*PDDistribution, error) {
	if horizonYears < 1 {
		return nil, fmt.Errorf("%w: time_horizon must be >= 1, got %d", ErrInvalidInput, horizonYears)
	}
	if nSims < 1 {
		return nil, fmt.Errorf("%w: n_simulations must be >= 1, got %d", ErrInvalidInput, nSims)
	}

	// ⭐ 호출별 독점 RNG — 전역 시딩 금지 (호출간 간섭 방지)
	rng := rand.New(rand.NewSource(seed))

	dt := 1.0 / float64(TradingDaysPerYear)
	sqrtDt := math.Sqrt(dt)
	nSteps := horizonYears * TradingDaysPerYear

	// 2×2 하삼각 Cholesky 인자 (시스템-기후 상관)
	l := stats.PairLower(e.params.ClimateCorrelation)

	// 현재 스텝 상태만 유지 (Markov — 전체 경로 행렬 불필요)
	pd := make([]float64, nSims)
	climate := make([]float64, nSims)
	for i := range pd {
		pd[i] = e.cfg.BasePD
	}

	for t := 1; t <= nSteps; t++ {
		for i := 0; i < nSims; i++ {
			// 독립 표준정규 → 상관 충격
			z1 := rng.NormFloat64()
			z2 := rng.NormFloat64()
			w1 := l[0][0] * z1
			w2 := l[1][0]*z1 + l[1][1]*z2

			// 기후충격 과정: 0으로 평균회귀, 변동성 1
			climate[i] += e.params.Kappa*(0-climate[i])*dt + sqrtDt*w2

			// PD에 대한 기후효과
			climateEffect := e.cfg.ClimateBeta * (climateFactor + climate[i])

			// 평균회귀 PD 동학 + 기후 조정
			p := pd[i] +
				e.params.Kappa*(e.params.LongRunMean-pd[i])*dt +
				sqrtDt*e.params.Sigma*w1 +
				climateEffect

			// 유효 확률 범위로 클리핑 (안정화 정책)
			pd[i] = clampPD(p)
		}
	}

	percentiles := stats.Percentiles(pd, []int{5, 25, 50, 75, 95, 99})

	return &PDDistribution{
		BasePD:       e.cfg.BasePD,
		Mean:         stats.Mean(pd),
		Std:          stats.StdDev(pd),
		Percentiles:  percentiles,
		StressedPD:   percentiles[StressedPDPercentile],
		FinalPDs:     pd,
		NSimulations: nSims,
		TimeHorizon:  horizonYears,
	}, nil
}

// clampPD PD를 [PDFloor, PDCeil]로 클리핑
func clampPD(p float64) float64 {
	if p < PDFloor {
		return PDFloor
	}
	if p > PDCeil {
		return PDCeil
	}
	return p
}
