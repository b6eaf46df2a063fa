package portfolio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator(t *testing.T, config SimulationConfig) *Simulator {
	t.Helper()
	sim, err := NewSimulator(config, nil)
	require.NoError(t, err)
	return sim
}

func testConfig() SimulationConfig {
	return SimulationConfig{
		NumSimulations:    200,
		TimeHorizon:       1,
		ConfidenceLevel:   0.95,
		Seed:              42,
		CorrelationFactor: 0.3,
	}
}

// craftedReturns 하위 10개가 -1.0 ~ -0.1인 100개 수익률
func craftedReturns() []float64 {
	returns := make([]float64, 0, 100)
	for i := 10; i >= 1; i-- {
		returns = append(returns, -float64(i)/10.0)
	}
	for i := 1; i <= 90; i++ {
		returns = append(returns, 0.02*float64(i))
	}
	return returns
}

func TestCalculateRiskMetrics_Crafted(t *testing.T) {
	sim := newTestSimulator(t, testConfig())

	metrics := sim.calculateRiskMetrics(craftedReturns(), 1_000_000)

	// VaR95: 정렬 후 인덱스 int(0.05×100)=5 → -0.5
	assert.InDelta(t, -0.5, metrics.ValueAtRisk, 1e-12)
	assert.InDelta(t, 500_000, metrics.ValueAtRiskDollar, 1e-6)

	// ES: 하위 5% 평균 = mean(-1.0, -0.9, -0.8, -0.7, -0.6) = -0.8
	assert.InDelta(t, -0.8, metrics.ExpectedShortfall, 1e-12)
	assert.InDelta(t, 800_000, metrics.ExpectedShortfallDollar, 1e-6)

	// VaR95 ≤ ES (절대 손실 기준)
	assert.GreaterOrEqual(t, math.Abs(metrics.ExpectedShortfall), math.Abs(metrics.ValueAtRisk))

	// 손실 확률 (경험 빈도)
	assert.InDelta(t, 0.10, metrics.ProbabilityOfLoss, 1e-12)
	assert.InDelta(t, 0.08, metrics.ProbabilityOf25PctLoss, 1e-12)
	assert.InDelta(t, 0.05, metrics.ProbabilityOf50PctLoss, 1e-12)
	assert.InDelta(t, 0.03, metrics.ProbabilityOf75PctLoss, 1e-12)

	assert.Equal(t, 0.95, metrics.ConfidenceLevel)
}

func TestCalculateRiskMetrics_DegenerateEnsemble(t *testing.T) {
	// 분산 0인 퇴화 앙상블: NaN/∞ 대신 0
	sim := newTestSimulator(t, testConfig())

	returns := make([]float64, 20)
	for i := range returns {
		returns[i] = 0.05
	}

	metrics := sim.calculateRiskMetrics(returns, 100)

	assert.Equal(t, 0.05, metrics.ValueAtRisk)
	assert.Equal(t, 0.05, metrics.ExpectedShortfall)
	assert.Equal(t, 0.0, metrics.Skewness)
	assert.Equal(t, 0.0, metrics.Kurtosis)
	assert.Equal(t, 0.0, metrics.VolatilityAnnualized)
	assert.Equal(t, 0.0, metrics.ProbabilityOfLoss)
}

func TestCalculateRiskMetrics_Empty(t *testing.T) {
	sim := newTestSimulator(t, testConfig())

	metrics := sim.calculateRiskMetrics(nil, 100)
	assert.Equal(t, 0.95, metrics.ConfidenceLevel)
	assert.Equal(t, 0.0, metrics.ValueAtRisk)
}

func TestCalculateRiskMetrics_ESFixedTail(t *testing.T) {
	// ES는 신뢰수준과 무관하게 항상 5% 꼬리 (고정 관례)
	config := testConfig()
	config.ConfidenceLevel = 0.99
	sim := newTestSimulator(t, config)

	metrics := sim.calculateRiskMetrics(craftedReturns(), 100)

	// VaR99: 인덱스 int(0.01×100)=1 → -0.9
	assert.InDelta(t, -0.9, metrics.ValueAtRisk, 1e-12)
	// ES는 여전히 하위 5% 평균
	assert.InDelta(t, -0.8, metrics.ExpectedShortfall, 1e-12)
}
