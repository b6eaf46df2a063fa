package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// =============================================================================
// 신뢰수준 → Z-score
// =============================================================================

// 규제자본 계산용 고정 Z-score 테이블
// ⭐ SSOT: 자본 스케일링은 이 테이블만 사용 (분포 적합 아님)
const (
	Z90  = 1.28
	Z95  = 1.645
	Z99  = 2.33
	Z999 = 3.09
)

// ZScore 신뢰수준에 대응하는 Z-score 조회
// 미등록 신뢰수준은 0.999 (Z999) 기본값
func ZScore(confidence float64) float64 {
	switch confidence {
	case 0.90:
		return Z90
	case 0.95:
		return Z95
	case 0.99:
		return Z99
	case 0.999:
		return Z999
	default:
		return Z999
	}
}

// =============================================================================
// Parametric VaR (정규분포 가정)
// =============================================================================

// VaRResult VaR 계산 결과
// ⭐ SSOT: VaR/CVaR는 손실을 양수로 표현 (VaR=0.05 → 5% 손실 가능)
type VaRResult struct {
	Confidence float64 `json:"confidence"` // 신뢰수준 (예: 0.95, 0.99)
	VaR        float64 `json:"var"`        // Value at Risk (손실, 양수)
	CVaR       float64 `json:"cvar"`       // Conditional VaR (Expected Shortfall, 양수)
}

// ParametricVaR 정규분포 가정 VaR 계산
// mean: 평균 수익률, stdDev: 표준편차, confidence: 신뢰수준
func ParametricVaR(mean, stdDev, confidence float64) VaRResult {
	if confidence <= 0 || confidence >= 1 {
		return VaRResult{Confidence: confidence}
	}

	z := distuv.UnitNormal.Quantile(confidence)

	// 단순화: mean은 작으므로 무시하고 z * stdDev 사용
	varValue := z * stdDev
	if varValue < 0 {
		varValue = 0
	}

	// Parametric CVaR: VaR + stdDev * φ(z) / (1-confidence)
	phi := distuv.UnitNormal.Prob(z)
	cvar := varValue + (stdDev * phi / (1 - confidence))

	return VaRResult{
		Confidence: confidence,
		VaR:        varValue,
		CVaR:       cvar,
	}
}
