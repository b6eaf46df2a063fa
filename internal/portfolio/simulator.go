package portfolio

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/wonny/climarisk/internal/stats"
	"github.com/wonny/climarisk/pkg/logger"
)

// =============================================================================
// PortfolioSimulator - 다자산 Monte Carlo (순수 계산기)
// =============================================================================

var (
	ErrInvalidConfig  = errors.New("invalid simulation configuration")
	ErrInvalidAsset   = errors.New("invalid portfolio asset")
	ErrEmptyPortfolio = errors.New("portfolio must contain at least one asset")
)

// Simulator 포트폴리오 가치경로 Monte Carlo 시뮬레이터
// ⭐ SSOT: 해저드 평가(damage_ratio)와 시나리오 카탈로그(climate_factor)는
// 외부 협력자 — 엔진은 스칼라만 소비
type Simulator struct {
	config SimulationConfig
	log    *logger.Logger
}

// NewSimulator 새 시뮬레이터 생성 (설정 검증 fail-fast)
func NewSimulator(config SimulationConfig, log *logger.Logger) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Simulator{config: config, log: log}, nil
}

// Config 시뮬레이터 설정 조회
func (s *Simulator) Config() SimulationConfig {
	return s.config
}

// Run 포트폴리오 Monte Carlo 시뮬레이션 실행
//
// 스텝마다 (t = 1..T, T = 년수×252):
//   - 공유 기후충격 벡터 1개 (n_sims 표준정규)
//   - 상관충격 행렬 1개 (L × 독립 표준정규, n_assets×n_sims)
//
// 자산별 수익률 충격 = market + idiosyncratic + beta_effect - drag
// 가치 갱신은 승법: value_t = value_{t-1} × (1 + total_shock)
//
// ⭐ 바닥 정책: 극단 충격으로 가치가 음수가 되면 0으로 바닥 처리
// (파괴된 실물자산의 가치는 음수가 될 수 없음 — 건수 집계 후 로깅)
func (s *Simulator) Run(assets []Asset, climateFactor float64, hazardType string) (*SimulationResult, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyPortfolio
	}
	for _, a := range assets {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	nAssets := len(assets)
	nSims := s.config.NumSimulations
	nSteps := s.config.TimeHorizon * TradingDaysPerYear

	// ⭐ 호출별 독점 RNG — 전역 시딩 금지
	rng := rand.New(rand.NewSource(s.config.Seed))

	// 상관행렬 → Cholesky, 양정치 아니면 identity fallback (명시적 퇴화 처리)
	l := s.choleskyOrIdentity(nAssets)

	// 현재 스텝 가치만 유지 (Markov — 전체 경로 행렬 불필요)
	values := make([][]float64, nAssets)
	for i, a := range assets {
		values[i] = make([]float64, nSims)
		for j := range values[i] {
			values[i][j] = a.Value
		}
	}

	initialValue := totalValue(assets)

	dt := 1.0 / float64(TradingDaysPerYear)
	sqrtDt := math.Sqrt(dt)
	idioScale := math.Sqrt(1.0-s.config.CorrelationFactor) * sqrtDt * IdiosyncraticVolatility

	climateShock := make([]float64, nSims)
	zData := make([]float64, nAssets*nSims)
	correlated := mat.NewDense(nAssets, nSims, nil)

	flooredPaths := 0

	for t := 1; t <= nSteps; t++ {
		// 리스크는 경과 기간에 따라 누적
		timeFactor := math.Sqrt(float64(t) / float64(nSteps))

		// 공유 기후충격 (스텝당 1회, 전 자산 공유)
		for j := range climateShock {
			climateShock[j] = rng.NormFloat64()
		}

		// 상관충격: L × Z
		for k := range zData {
			zData[k] = rng.NormFloat64()
		}
		z := mat.NewDense(nAssets, nSims, zData)
		correlated.Mul(l, z)

		for i, a := range assets {
			corrRow := correlated.RawRowView(i)
			betaScale := a.ClimateBeta * climateFactor * timeFactor
			drag := a.DamageRatio * climateFactor * timeFactor

			for j := 0; j < nSims; j++ {
				marketShock := corrRow[j] * sqrtDt * MarketVolatility * timeFactor
				idioShock := corrRow[j] * idioScale * rng.NormFloat64()
				betaEffect := betaScale * climateShock[j]

				totalShock := marketShock + idioShock + betaEffect - drag

				v := values[i][j] * (1 + totalShock)
				if v < 0 {
					v = 0
					flooredPaths++
				}
				values[i][j] = v
			}
		}
	}

	if flooredPaths > 0 {
		s.log.WithFields(map[string]interface{}{
			"floored_updates": flooredPaths,
			"climate_factor":  climateFactor,
		}).Warn("asset values floored at zero under extreme shocks")
	}

	// 터미널 포트폴리오 가치 = 자산 가치의 명시적 합산
	finalValues := make([]float64, nSims)
	for j := 0; j < nSims; j++ {
		var sum float64
		for i := 0; i < nAssets; i++ {
			sum += values[i][j]
		}
		finalValues[j] = sum
	}

	// 터미널 수익률
	returns := make([]float64, nSims)
	for j, fv := range finalValues {
		returns[j] = (fv - initialValue) / initialValue
	}

	metrics := s.calculateRiskMetrics(returns, initialValue)

	result := &SimulationResult{
		RunID:         uuid.New().String(),
		Config:        s.config,
		ClimateFactor: climateFactor,
		HazardType:    hazardType,
		InitialValue:  initialValue,
		FinalDistribution: ValueDistribution{
			Mean:        stats.Mean(finalValues),
			Std:         stats.StdDev(finalValues),
			Min:         stats.Min(finalValues),
			Max:         stats.Max(finalValues),
			Percentiles: stats.Percentiles(finalValues, []int{5, 25, 50, 75, 95}),
		},
		ReturnDistribution: ReturnDistribution{
			Mean:        stats.Mean(returns),
			Std:         stats.StdDev(returns),
			Percentiles: stats.Percentiles(returns, []int{5, 25, 50, 75, 95}),
		},
		Returns:      returns,
		RiskMetrics:  metrics,
		FlooredPaths: flooredPaths,
		NSuccessful:  nSims,
	}

	s.log.WithFields(map[string]interface{}{
		"run_id":         result.RunID,
		"n_assets":       nAssets,
		"n_simulations":  nSims,
		"climate_factor": climateFactor,
		"mean_return":    result.ReturnDistribution.Mean,
	}).Debug("portfolio simulation complete")

	return result, nil
}

// choleskyOrIdentity 상관행렬 Cholesky 인자 계산
// 양정치가 아니면 (n=1 퇴화, 병적 correlation_factor) identity로 fallback
// — 에러가 아닌 로깅되는 퇴화 처리 분기
func (s *Simulator) choleskyOrIdentity(nAssets int) *mat.TriDense {
	corr := stats.CorrelationMatrix(nAssets, s.config.CorrelationFactor)
	l, ok := stats.CholeskyLower(corr)
	if !ok {
		s.log.WithFields(map[string]interface{}{
			"n_assets":           nAssets,
			"correlation_factor": s.config.CorrelationFactor,
		}).Warn("correlation matrix not positive definite, falling back to identity")
		return stats.IdentityLower(nAssets)
	}
	return l
}

// totalValue 포트폴리오 초기 총가치
func totalValue(assets []Asset) float64 {
	var sum float64
	for _, a := range assets {
		sum += a.Value
	}
	return sum
}

// Compare 다중 기후 시나리오 비교 실행
// 동일 자산/설정으로 시나리오별 독립 시뮬레이션 (시나리오간 상관 없음)
func (s *Simulator) Compare(assets []Asset, scenarios map[string]float64) (map[string]ScenarioSummary, error) {
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios given", ErrInvalidConfig)
	}

	results := make(map[string]ScenarioSummary, len(scenarios))
	for name, climateFactor := range scenarios {
		r, err := s.Run(assets, climateFactor, name)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}

		results[name] = ScenarioSummary{
			ClimateFactor:          climateFactor,
			MeanReturn:             r.ReturnDistribution.Mean,
			StdReturn:              r.ReturnDistribution.Std,
			VaR5:                   r.ReturnDistribution.Percentiles[5],
			ExpectedShortfall:      r.RiskMetrics.ExpectedShortfall,
			ProbabilityOfLoss:      r.RiskMetrics.ProbabilityOfLoss,
			ProbabilityOf50PctLoss: r.RiskMetrics.ProbabilityOf50PctLoss,
			MeanFinalValue:         r.FinalDistribution.Mean,
			WorstCase5Pct:          r.FinalDistribution.Percentiles[5],
		}
	}

	return results, nil
}
