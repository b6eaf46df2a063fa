package credit

import (
	"math"

	"github.com/wonny/climarisk/internal/stats"
)

// =============================================================================
// Loss & Capital Arithmetic (닫힌형, 시뮬레이션 아님)
// =============================================================================

// ExpectedLoss 기대손실 계산
// EL = EAD × PD × LGD
func (e *Engine) ExpectedLoss(exposure, pd, lgd float64) float64 {
	return exposure * pd * lgd
}

// UnexpectedLoss 비기대손실 계산 (엔진 상관계수 사용)
func (e *Engine) UnexpectedLoss(exposure, pd, lgd float64) float64 {
	return e.UnexpectedLossWithCorrelation(exposure, pd, lgd, e.cfg.Correlation)
}

// UnexpectedLossWithCorrelation 비기대손실 계산
// UL = EAD × √(PD × LGD² × (1-PD)) × √ρ
// 단일요인 근사식 — 완전한 Vasicek 점근 공식이 아님
func (e *Engine) UnexpectedLossWithCorrelation(exposure, pd, lgd, correlation float64) float64 {
	ulComponent := math.Sqrt(pd * lgd * lgd * (1 - pd))
	return exposure * ulComponent * math.Sqrt(correlation)
}

// CapitalRequirement 비기대손실에 대한 자본요구량 계산
// base = UL × ratio, adjusted = base × z/z_999 (고정 Z-score 테이블)
// 미등록 신뢰수준은 0.999로 처리
func (e *Engine) CapitalRequirement(unexpectedLoss, confidenceLevel, capitalRatio float64) CapitalResult {
	z := stats.ZScore(confidenceLevel)

	baseCapital := unexpectedLoss * capitalRatio
	adjustedCapital := baseCapital * z / stats.Z999

	return CapitalResult{
		UnexpectedLoss:  unexpectedLoss,
		BaseCapital:     baseCapital,
		AdjustedCapital: adjustedCapital,
		ConfidenceLevel: confidenceLevel,
		ZScore:          z,
		CapitalRatio:    capitalRatio,
	}
}
