package portfolio

import (
	"math"
	"sort"

	"github.com/wonny/climarisk/internal/stats"
)

// =============================================================================
// Risk Metrics (터미널 수익률 경험분포 기반)
// =============================================================================

// calculateRiskMetrics 터미널 수익률 분포에서 리스크 지표 계산
// VaR: (1-confidence) 백분위 수익률 (부호 그대로, 손실 = 음수)
// ES: 하위 5% 꼬리 평균 — 신뢰수준과 무관한 고정 관례 (ESTailPercentile)
func (s *Simulator) calculateRiskMetrics(returns []float64, initialValue float64) RiskMetrics {
	n := len(returns)
	if n == 0 {
		return RiskMetrics{ConfidenceLevel: s.config.ConfidenceLevel}
	}

	sorted := make([]float64, n)
	copy(sorted, returns)
	sort.Float64s(sorted)

	// VaR 인덱스: (1-confidence) 비율 지점
	varIdx := int((1.0 - s.config.ConfidenceLevel) * float64(n))
	if varIdx >= n {
		varIdx = n - 1
	}
	varValue := sorted[varIdx]

	// ES: 하위 5% 평균 (소규모 앙상블은 최악 1개로 퇴화)
	esIdx := int(float64(ESTailPercentile) / 100.0 * float64(n))
	if esIdx < 1 {
		esIdx = 1
	}
	var esSum float64
	for i := 0; i < esIdx; i++ {
		esSum += sorted[i]
	}
	expectedShortfall := esSum / float64(esIdx)

	// 손실 확률 (경험 빈도)
	var pLoss, p25, p50, p75 float64
	for _, r := range returns {
		if r < 0 {
			pLoss++
		}
		if r < -0.25 {
			p25++
		}
		if r < -0.50 {
			p50++
		}
		if r < -0.75 {
			p75++
		}
	}
	nf := float64(n)

	return RiskMetrics{
		ValueAtRisk:             varValue,
		ValueAtRiskDollar:       math.Abs(varValue) * initialValue,
		ExpectedShortfall:       expectedShortfall,
		ExpectedShortfallDollar: math.Abs(expectedShortfall) * initialValue,
		ProbabilityOfLoss:       pLoss / nf,
		ProbabilityOf25PctLoss:  p25 / nf,
		ProbabilityOf50PctLoss:  p50 / nf,
		ProbabilityOf75PctLoss:  p75 / nf,
		ConfidenceLevel:         s.config.ConfidenceLevel,
		VolatilityAnnualized:    stats.StdDev(returns) * math.Sqrt(TradingDaysPerYear),
		Skewness:                stats.Skewness(returns),
		Kurtosis:                stats.Kurtosis(returns),
	}
}
