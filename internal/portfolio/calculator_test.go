package portfolio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() *Calculator {
	// 테스트는 소규모 시뮬레이션으로 충분 (결정론 파트 검증이 목적)
	return NewCalculator(CalculatorConfig{NumSimulations: 50, Seed: 42}, nil)
}

func TestCalculatePortfolioRisk_TwoEqualExposures(t *testing.T) {
	calc := testCalculator()

	assets := []Asset{
		{AssetID: "exp_1", Value: 50_000_000, AssetType: "commercial", Region: "coastal",
			BasePD: 0.02, BaseLGD: 0.4, ClimateBeta: 0.5, DamageRatio: 0.25},
		{AssetID: "exp_2", Value: 50_000_000, AssetType: "residential", Region: "inland",
			BasePD: 0.02, BaseLGD: 0.4, ClimateBeta: 0.5, DamageRatio: 0.25},
	}

	result, err := calc.CalculatePortfolioRisk(assets)
	require.NoError(t, err)

	assert.Equal(t, 100_000_000.0, result.TotalExposure)
	assert.Equal(t, 2, result.NumExposures)

	// 균등 2자산: 비중 0.5/0.5 → HHI = 0.5 → "high" (임계 0.25)
	assert.InDelta(t, 0.5, result.Concentration.HHI, 1e-12)
	assert.Equal(t, "high", result.Concentration.ConcentrationLevel)
	assert.InDelta(t, 0.5, result.Concentration.MaxWeight, 1e-12)

	// 분산효과 할인 = √(1/2 + 1/2×0.3) = √0.65
	assert.InDelta(t, math.Sqrt(0.65), result.DiversificationFactor, 1e-12)

	require.Len(t, result.IndividualRisks, 2)
	for _, r := range result.IndividualRisks {
		assert.InDelta(t, 0.5, r.Weight, 1e-12)
		// damage > 0 ⇒ 스트레스 손실 증가분 양수
		assert.Greater(t, r.ExpectedLoss, 0.0)
	}
}

func TestCalculatePortfolioRisk_SingleExposure(t *testing.T) {
	calc := testCalculator()

	result, err := calc.CalculatePortfolioRisk(testAssets(1))
	require.NoError(t, err)

	// n=1은 분산효과 없음
	assert.Equal(t, 1.0, result.DiversificationFactor)
	assert.InDelta(t, 1.0, result.Concentration.HHI, 1e-12)
	assert.Equal(t, "high", result.Concentration.ConcentrationLevel)
}

func TestCalculatePortfolioRisk_Empty(t *testing.T) {
	calc := testCalculator()

	_, err := calc.CalculatePortfolioRisk(nil)
	assert.ErrorIs(t, err, ErrEmptyPortfolio)
}

func TestCalculatePortfolioRisk_InvalidAsset(t *testing.T) {
	calc := testCalculator()

	assets := testAssets(1)
	assets[0].BasePD = 0

	_, err := calc.CalculatePortfolioRisk(assets)
	assert.ErrorIs(t, err, ErrInvalidAsset)
}

func TestCalculateConcentration_Levels(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		want    string
	}{
		{"two equal = high", []float64{0.5, 0.5}, "high"},
		{"five equal = medium", []float64{0.2, 0.2, 0.2, 0.2, 0.2}, "medium"},
		{"ten equal = low", []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}, "low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risks := make([]IndividualRisk, len(tt.weights))
			for i, w := range tt.weights {
				risks[i] = IndividualRisk{Weight: w}
			}
			got := calculateConcentration(risks)
			assert.Equal(t, tt.want, got.ConcentrationLevel)
		})
	}
}

func TestCalculateConcentration_Empty(t *testing.T) {
	got := calculateConcentration(nil)
	assert.Equal(t, Concentration{}, got)
}
