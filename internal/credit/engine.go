package credit

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/wonny/climarisk/pkg/logger"
)

// =============================================================================
// CreditRiskEngine - 순수 계산기
// =============================================================================

var (
	ErrInvalidConfig = errors.New("invalid engine configuration")
	ErrInvalidInput  = errors.New("invalid analysis input")
)

// Engine 기후 확장 단일요인 신용리스크 엔진 (순수 계산기)
// ⭐ SSOT: 해저드 평가/시나리오 선택은 상위 레이어에서 조립
// internal/credit은 숫자 입력 → 숫자 출력만 담당, I/O 없음
type Engine struct {
	cfg    EngineConfig
	params ModelParams
	log    *logger.Logger
}

// NewEngine 새 신용리스크 엔진 생성
// 구성 검증 실패 시 fail-fast
func NewEngine(cfg EngineConfig, log *logger.Logger) (*Engine, error) {
	if cfg.BasePD <= 0 || cfg.BasePD >= 1 {
		return nil, fmt.Errorf("%w: base_pd must be in (0,1), got %v", ErrInvalidConfig, cfg.BasePD)
	}
	if cfg.BaseLGD <= 0 || cfg.BaseLGD > 1 {
		return nil, fmt.Errorf("%w: base_lgd must be in (0,1], got %v", ErrInvalidConfig, cfg.BaseLGD)
	}
	if cfg.ClimateBeta < 0 || cfg.ClimateBeta > 1 {
		return nil, fmt.Errorf("%w: climate_beta must be in [0,1], got %v", ErrInvalidConfig, cfg.ClimateBeta)
	}
	if cfg.Correlation < 0 || cfg.Correlation > 1 {
		return nil, fmt.Errorf("%w: correlation must be in [0,1], got %v", ErrInvalidConfig, cfg.Correlation)
	}
	if cfg.ClimateCorrelation < 0 || cfg.ClimateCorrelation >= 1 {
		return nil, fmt.Errorf("%w: climate_correlation must be in [0,1), got %v", ErrInvalidConfig, cfg.ClimateCorrelation)
	}
	if cfg.Maturity < 0 {
		return nil, fmt.Errorf("%w: maturity must be >= 0, got %d", ErrInvalidConfig, cfg.Maturity)
	}
	if cfg.Maturity == 0 {
		cfg.Maturity = 5
	}
	if cfg.RecoveryRate == 0 {
		cfg.RecoveryRate = 1.0 - cfg.BaseLGD
	}
	if log == nil {
		log = logger.Nop()
	}

	params := DefaultModelParams(cfg.BasePD)
	if cfg.ClimateCorrelation > 0 {
		params.ClimateCorrelation = cfg.ClimateCorrelation
	}

	return &Engine{
		cfg:    cfg,
		params: params,
		log:    log,
	}, nil
}

// Config 엔진 구성 조회
func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// =============================================================================
// Climate Adjustment (결정론적)
// =============================================================================

// Adjust 물리적 피해율에 대한 기후 조정 계산 (기본 상한 적용)
func (e *Engine) Adjust(damageRatio float64) Adjustment {
	return e.AdjustWithCaps(damageRatio, DefaultPDCap, DefaultLGDCap)
}

// AdjustWithCaps 상한을 지정한 기후 조정 계산
// damageRatio가 [0,1] 밖이어도 그대로 계산 (호출자 책임)
func (e *Engine) AdjustWithCaps(damageRatio, pdCap, lgdCap float64) Adjustment {
	// PD는 물리적 피해에 비례해 증가 (민감도 = climate_beta)
	pdMultiplier := math.Min(pdCap, 1.0+e.cfg.ClimateBeta*damageRatio)

	// LGD는 담보 손상에 비례해 증가
	lgdMultiplier := math.Min(lgdCap, 1.0+0.5*damageRatio)

	// 확률과정 시뮬레이션에 주입되는 기후 팩터
	climateFactor := e.cfg.ClimateBeta * damageRatio

	return Adjustment{
		PDMultiplier:  pdMultiplier,
		LGDMultiplier: lgdMultiplier,
		ClimateFactor: climateFactor,
		AdjustedPD:    e.cfg.BasePD * pdMultiplier,
		AdjustedLGD:   math.Min(1.0, e.cfg.BaseLGD*lgdMultiplier),
	}
}

// =============================================================================
// Full Analysis
// =============================================================================

// RunFullAnalysis 기후 신용리스크 전체 분석 실행
// 기준 지표: (base_pd, base_lgd)
// 스트레스 지표: (시뮬레이션 stressed_pd, 결정론적 adjusted_lgd)
// — PD 스트레스는 확률적, LGD 스트레스는 결정론적 (원 모형의 혼합 설계)
func (e *Engine) RunFullAnalysis(req AnalysisRequest) (*AnalysisResult, error) {
	if req.Exposure <= 0 {
		return nil, fmt.Errorf("%w: exposure must be > 0, got %v", ErrInvalidInput, req.Exposure)
	}
	if req.TimeHorizon < 1 {
		return nil, fmt.Errorf("%w: time_horizon must be >= 1, got %d", ErrInvalidInput, req.TimeHorizon)
	}
	if req.NumSimulations < 1 {
		return nil, fmt.Errorf("%w: n_simulations must be >= 1, got %d", ErrInvalidInput, req.NumSimulations)
	}

	// 기후 조정 (결정론적)
	adjustment := e.Adjust(req.DamageRatio)

	// 스트레스 PD (확률적)
	dist, err := e.SimulatePD(req.TimeHorizon, adjustment.ClimateFactor, req.NumSimulations, req.Seed)
	if err != nil {
		return nil, err
	}

	// Expected Loss
	baseEL := e.ExpectedLoss(req.Exposure, e.cfg.BasePD, e.cfg.BaseLGD)
	stressedEL := e.ExpectedLoss(req.Exposure, dist.StressedPD, adjustment.AdjustedLGD)

	// Unexpected Loss
	baseUL := e.UnexpectedLoss(req.Exposure, e.cfg.BasePD, e.cfg.BaseLGD)
	stressedUL := e.UnexpectedLoss(req.Exposure, dist.StressedPD, adjustment.AdjustedLGD)

	// Capital: 기준은 BaseCapital, 스트레스는 기본 신뢰수준(0.999)의 AdjustedCapital
	baseCapital := e.CapitalRequirement(baseUL, 0.999, DefaultCapitalRatio)
	stressedCapital := e.CapitalRequirement(stressedUL, 0.999, DefaultCapitalRatio)

	capital := CapitalFigures{
		Base:          baseCapital.BaseCapital,
		Stressed:      stressedCapital.AdjustedCapital,
		Additional:    stressedCapital.AdjustedCapital - baseCapital.BaseCapital,
		ClimateBuffer: stressedCapital.AdjustedCapital * ClimateBufferRatio,
	}

	result := &AnalysisResult{
		RunID:      uuid.New().String(),
		Input:      req,
		Config:     e.cfg,
		Adjustment: adjustment,
		PDAnalysis: PDAnalysis{
			BasePD:           e.cfg.BasePD,
			StressedPD:       dist.StressedPD,
			PDIncreaseFactor: dist.StressedPD / e.cfg.BasePD,
			Distribution:     dist,
		},
		ExpectedLoss:   lossFigures(baseEL, stressedEL),
		UnexpectedLoss: lossFigures(baseUL, stressedUL),
		Capital:        capital,
		Summary: AnalysisSummary{
			PDMultiplier:    adjustment.PDMultiplier,
			LGDMultiplier:   adjustment.LGDMultiplier,
			TotalImpact:     (stressedEL - baseEL) + (stressedUL - baseUL),
			CapitalIncrease: capital.Additional,
		},
	}

	e.log.WithFields(map[string]interface{}{
		"run_id":      result.RunID,
		"exposure":    req.Exposure,
		"stressed_pd": dist.StressedPD,
		"base_el":     baseEL,
		"stressed_el": stressedEL,
	}).Debug("credit analysis complete")

	return result, nil
}

// lossFigures 기준/스트레스 손실 지표 조립
// base=0이면 증가율 0 (division guard)
func lossFigures(base, stressed float64) LossFigures {
	increasePct := 0.0
	if base > 0 {
		increasePct = (stressed - base) / base * 100
	}
	return LossFigures{
		Base:               base,
		Stressed:           stressed,
		Additional:         stressed - base,
		IncreasePercentage: increasePct,
	}
}
