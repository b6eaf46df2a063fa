package portfolio

import (
	"math"

	"github.com/wonny/climarisk/internal/credit"
	"github.com/wonny/climarisk/pkg/logger"
)

// =============================================================================
// PortfolioRiskCalculator - 신용리스크 집계기 (thin aggregator)
// =============================================================================

// 집계 상수
const (
	// CreditHorizonYears 익스포저별 신용 분석 고정 기간
	CreditHorizonYears = 10

	// AvgCorrelation 분산효과 계산용 고정 평균 상관 가정
	AvgCorrelation = 0.3

	// HHI 집중도 등급 임계값
	HHIHighThreshold   = 0.25
	HHIMediumThreshold = 0.15
)

// CalculatorConfig 집계기 설정
type CalculatorConfig struct {
	NumSimulations int   `json:"n_simulations"` // 익스포저별 Monte Carlo 횟수
	Seed           int64 `json:"seed"`
}

// DefaultCalculatorConfig 기본 집계기 설정
func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		NumSimulations: 10000,
		Seed:           42,
	}
}

// IndividualRisk 익스포저별 리스크 (기준 대비 추가분)
type IndividualRisk struct {
	ExposureID     string  `json:"exposure_id"`
	Value          float64 `json:"value"`
	Weight         float64 `json:"weight"`
	ExpectedLoss   float64 `json:"expected_loss"`   // ΔEL
	UnexpectedLoss float64 `json:"unexpected_loss"` // ΔUL
	CapitalImpact  float64 `json:"capital_impact"`  // Δ자본
}

// Concentration 포트폴리오 집중도 지표
type Concentration struct {
	MaxWeight          float64 `json:"max_weight"`
	HHI                float64 `json:"hhi"` // Herfindahl-Hirschman Index
	ConcentrationLevel string  `json:"concentration_level"`
}

// PortfolioRiskResult 포트폴리오 신용리스크 집계 결과
type PortfolioRiskResult struct {
	TotalExposure         float64          `json:"total_exposure"`
	NumExposures          int              `json:"num_exposures"`
	DiversificationFactor float64          `json:"diversification_factor"`
	ExpectedLoss          float64          `json:"expected_loss"`
	UnexpectedLoss        float64          `json:"unexpected_loss"` // 분산효과 반영
	CapitalImpact         float64          `json:"capital_impact"`
	IndividualRisks       []IndividualRisk `json:"individual_risks"`
	Concentration         Concentration    `json:"concentration"`
}

// Calculator 익스포저별 신용 분석을 실행하고 분산효과로 집계
// 원 모형의 duck-typed 입력은 Asset 구조체 단일 타입으로 대체
type Calculator struct {
	config CalculatorConfig
	log    *logger.Logger
}

// NewCalculator 새 집계기 생성
func NewCalculator(config CalculatorConfig, log *logger.Logger) *Calculator {
	if config.NumSimulations < 1 {
		config = DefaultCalculatorConfig()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Calculator{config: config, log: log}
}

// CalculatePortfolioRisk 포트폴리오 레벨 신용리스크 계산
// 익스포저마다 신용 엔진을 고정 10년 기간으로 호출하고
// 분산효과 할인 √(1/n + (n-1)/n × ρ̄)로 UL을 집계
func (c *Calculator) CalculatePortfolioRisk(assets []Asset) (*PortfolioRiskResult, error) {
	if len(assets) == 0 {
		return nil, ErrEmptyPortfolio
	}
	for _, a := range assets {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	totalExposure := totalValue(assets)

	individual := make([]IndividualRisk, 0, len(assets))
	for _, a := range assets {
		engine, err := credit.NewEngine(credit.EngineConfig{
			BasePD:      a.BasePD,
			BaseLGD:     a.BaseLGD,
			ClimateBeta: a.ClimateBeta,
			Correlation: AvgCorrelation,
		}, c.log)
		if err != nil {
			return nil, err
		}

		analysis, err := engine.RunFullAnalysis(credit.AnalysisRequest{
			Exposure:       a.Value,
			TimeHorizon:    CreditHorizonYears,
			DamageRatio:    a.DamageRatio,
			NumSimulations: c.config.NumSimulations,
			Seed:           c.config.Seed,
		})
		if err != nil {
			return nil, err
		}

		weight := 0.0
		if totalExposure > 0 {
			weight = a.Value / totalExposure
		}

		individual = append(individual, IndividualRisk{
			ExposureID:     a.AssetID,
			Value:          a.Value,
			Weight:         weight,
			ExpectedLoss:   analysis.ExpectedLoss.Additional,
			UnexpectedLoss: analysis.UnexpectedLoss.Additional,
			CapitalImpact:  analysis.Capital.Additional,
		})
	}

	// 분산효과 할인: n=1이면 1.0
	n := len(assets)
	diversificationFactor := 1.0
	if n > 1 {
		nf := float64(n)
		diversificationFactor = math.Sqrt(1.0/nf + (nf-1.0)/nf*AvgCorrelation)
	}

	var totalEL, totalUL, totalCapital float64
	for _, r := range individual {
		totalEL += r.ExpectedLoss
		totalUL += r.UnexpectedLoss
		totalCapital += r.CapitalImpact
	}
	totalUL *= diversificationFactor

	return &PortfolioRiskResult{
		TotalExposure:         totalExposure,
		NumExposures:          n,
		DiversificationFactor: diversificationFactor,
		ExpectedLoss:          totalEL,
		UnexpectedLoss:        totalUL,
		CapitalImpact:         totalCapital,
		IndividualRisks:       individual,
		Concentration:         calculateConcentration(individual),
	}, nil
}

// calculateConcentration 비중 기반 집중도 지표 계산
func calculateConcentration(risks []IndividualRisk) Concentration {
	if len(risks) == 0 {
		return Concentration{}
	}

	var maxWeight, hhi float64
	for _, r := range risks {
		if r.Weight > maxWeight {
			maxWeight = r.Weight
		}
		hhi += r.Weight * r.Weight
	}

	level := "low"
	switch {
	case hhi > HHIHighThreshold:
		level = "high"
	case hhi > HHIMediumThreshold:
		level = "medium"
	}

	return Concentration{
		MaxWeight:          maxWeight,
		HHI:                hhi,
		ConcentrationLevel: level,
	}
}
