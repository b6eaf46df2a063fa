package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZScore_Table(t *testing.T) {
	tests := []struct {
		confidence float64
		want       float64
	}{
		{0.90, 1.28},
		{0.95, 1.645},
		{0.99, 2.33},
		{0.999, 3.09},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ZScore(tt.confidence), "confidence %v", tt.confidence)
	}
}

func TestZScore_UnknownDefaultsToZ999(t *testing.T) {
	// 미등록 신뢰수준은 0.999 기본값
	assert.Equal(t, Z999, ZScore(0.975))
	assert.Equal(t, Z999, ZScore(0.5))
	assert.Equal(t, Z999, ZScore(0))
}

func TestParametricVaR(t *testing.T) {
	result := ParametricVaR(0, 0.02, 0.95)

	assert.Equal(t, 0.95, result.Confidence)
	// VaR95 ≈ 1.6449 × σ
	assert.InDelta(t, 1.6449*0.02, result.VaR, 1e-4)
	// CVaR는 항상 VaR보다 큼 (꼬리 평균 > 꼬리 경계)
	assert.Greater(t, result.CVaR, result.VaR)
}

func TestParametricVaR_InvalidConfidence(t *testing.T) {
	result := ParametricVaR(0, 0.02, 1.5)
	assert.Equal(t, 0.0, result.VaR)
	assert.Equal(t, 0.0, result.CVaR)
}
