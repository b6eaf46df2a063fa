package portfolio

import "fmt"

// =============================================================================
// Simulation Constants
// =============================================================================

const (
	TradingDaysPerYear = 252

	// 스텝별 충격 스케일 (원 모형의 고정 계수)
	MarketVolatility        = 0.1  // 시장(상관) 충격 스케일
	IdiosyncraticVolatility = 0.05 // 개별 충격 스케일
)

// ESTailPercentile Expected Shortfall 꼬리 백분위
// ⭐ 고정 관례: 신뢰수준 파라미터와 무관하게 항상 하위 5% 꼬리 평균
// (stressed PD의 99 백분위 관례와 대칭 — DESIGN.md 참고)
const ESTailPercentile = 5

// =============================================================================
// Asset
// =============================================================================

// Asset 포트폴리오 내 개별 실물자산 (시뮬레이션 중 읽기 전용)
type Asset struct {
	AssetID     string  `json:"asset_id"`     // 고유 식별자
	Value       float64 `json:"value"`        // 자산가치 (> 0)
	AssetType   string  `json:"asset_type"`   // residential, commercial, industrial
	Region      string  `json:"region"`       // 지역 (엔진은 불투명 문자열로 취급)
	BasePD      float64 `json:"base_pd"`      // 기준 부도확률 (0,1)
	BaseLGD     float64 `json:"base_lgd"`     // 기준 부도시손실률 (0,1]
	ClimateBeta float64 `json:"climate_beta"` // 기후 민감도 [0,1]
	DamageRatio float64 `json:"damage_ratio"` // 해저드 레이어가 산출한 피해율 [0,1]
}

// Validate 자산 필드 범위 검증 (fail-fast)
func (a Asset) Validate() error {
	if a.AssetID == "" {
		return fmt.Errorf("%w: asset_id is required", ErrInvalidAsset)
	}
	if a.Value <= 0 {
		return fmt.Errorf("%w: asset %s value must be > 0, got %v", ErrInvalidAsset, a.AssetID, a.Value)
	}
	if a.BasePD <= 0 || a.BasePD >= 1 {
		return fmt.Errorf("%w: asset %s base_pd must be in (0,1), got %v", ErrInvalidAsset, a.AssetID, a.BasePD)
	}
	if a.BaseLGD <= 0 || a.BaseLGD > 1 {
		return fmt.Errorf("%w: asset %s base_lgd must be in (0,1], got %v", ErrInvalidAsset, a.AssetID, a.BaseLGD)
	}
	if a.ClimateBeta < 0 || a.ClimateBeta > 1 {
		return fmt.Errorf("%w: asset %s climate_beta must be in [0,1], got %v", ErrInvalidAsset, a.AssetID, a.ClimateBeta)
	}
	if a.DamageRatio < 0 || a.DamageRatio > 1 {
		return fmt.Errorf("%w: asset %s damage_ratio must be in [0,1], got %v", ErrInvalidAsset, a.AssetID, a.DamageRatio)
	}
	return nil
}

// =============================================================================
// Simulation Config
// =============================================================================

// SimulationConfig Monte Carlo 시뮬레이션 설정
// ⭐ SSOT: 재현성을 위해 모든 설정을 명시적으로 기록
type SimulationConfig struct {
	NumSimulations     int     `json:"n_simulations"`       // 시뮬레이션 횟수 (>= 1)
	TimeHorizon        int     `json:"time_horizon"`        // 분석 기간 (년, >= 1)
	ConfidenceLevel    float64 `json:"confidence_level"`    // 0.90/0.95/0.99/0.999
	Seed              int64   `json:"seed"`               // 재현성용 시드
	CorrelationFactor float64 `json:"correlation_factor"` // 자산간 기본 상관
}

// DefaultSimulationConfig 기본 시뮬레이션 설정
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		NumSimulations:    10000,
		TimeHorizon:       10,
		ConfidenceLevel:   0.95,
		Seed:              42,
		CorrelationFactor: 0.3,
	}
}

// Validate 설정 유효성 검사
func (c SimulationConfig) Validate() error {
	if c.NumSimulations < 1 {
		return fmt.Errorf("%w: n_simulations must be >= 1, got %d", ErrInvalidConfig, c.NumSimulations)
	}
	if c.TimeHorizon < 1 {
		return fmt.Errorf("%w: time_horizon must be >= 1, got %d", ErrInvalidConfig, c.TimeHorizon)
	}
	if c.ConfidenceLevel <= 0 || c.ConfidenceLevel >= 1 {
		return fmt.Errorf("%w: confidence_level must be in (0,1), got %v", ErrInvalidConfig, c.ConfidenceLevel)
	}
	return nil
}

// =============================================================================
// Result Types
// =============================================================================

// ValueDistribution 터미널 가치 분포 요약
type ValueDistribution struct {
	Mean        float64         `json:"mean"`
	Std         float64         `json:"std"`
	Min         float64         `json:"min"`
	Max         float64         `json:"max"`
	Percentiles map[int]float64 `json:"percentiles"` // 5, 25, 50, 75, 95
}

// ReturnDistribution 터미널 수익률 분포 요약
type ReturnDistribution struct {
	Mean        float64         `json:"mean"`
	Std         float64         `json:"std"`
	Percentiles map[int]float64 `json:"percentiles"` // 5, 25, 50, 75, 95
}

// RiskMetrics 터미널 수익률 분포에서 유도한 리스크 지표 (불변)
// ValueAtRisk/ExpectedShortfall은 수익률 부호 그대로 (손실 = 음수)
type RiskMetrics struct {
	ValueAtRisk             float64 `json:"value_at_risk"`
	ValueAtRiskDollar       float64 `json:"value_at_risk_dollar"`
	ExpectedShortfall       float64 `json:"expected_shortfall"`
	ExpectedShortfallDollar float64 `json:"expected_shortfall_dollar"`
	ProbabilityOfLoss       float64 `json:"probability_of_loss"`
	ProbabilityOf25PctLoss  float64 `json:"probability_of_25pct_loss"`
	ProbabilityOf50PctLoss  float64 `json:"probability_of_50pct_loss"`
	ProbabilityOf75PctLoss  float64 `json:"probability_of_75pct_loss"`
	ConfidenceLevel         float64 `json:"confidence_level"`
	VolatilityAnnualized    float64 `json:"volatility_annualized"`
	Skewness                float64 `json:"skewness"`
	Kurtosis                float64 `json:"kurtosis"`
}

// SimulationResult 포트폴리오 시뮬레이션 결과
type SimulationResult struct {
	RunID              string             `json:"run_id"`
	Config             SimulationConfig   `json:"simulation_config"`
	ClimateFactor      float64            `json:"climate_factor"`
	HazardType         string             `json:"hazard_type"`
	InitialValue       float64            `json:"initial_value"`
	FinalDistribution  ValueDistribution  `json:"final_distribution"`
	ReturnDistribution ReturnDistribution `json:"return_distribution"`
	Returns            []float64          `json:"-"` // 터미널 수익률 원본 (JSON 제외)
	RiskMetrics        RiskMetrics        `json:"risk_metrics"`
	FlooredPaths       int                `json:"floored_paths"` // 0으로 바닥 처리된 가치 업데이트 수
	NSuccessful        int                `json:"n_successful_simulations"`
}

// ScenarioSummary 시나리오별 비교 요약 (플랫 테이블 한 행)
type ScenarioSummary struct {
	ClimateFactor          float64 `json:"climate_factor"`
	MeanReturn             float64 `json:"mean_return"`
	StdReturn              float64 `json:"std_return"`
	VaR5                   float64 `json:"var_5"` // 수익률 5 백분위
	ExpectedShortfall      float64 `json:"expected_shortfall"`
	ProbabilityOfLoss      float64 `json:"probability_of_loss"`
	ProbabilityOf50PctLoss float64 `json:"probability_of_50pct_loss"`
	MeanFinalValue         float64 `json:"mean_final_value"`
	WorstCase5Pct          float64 `json:"worst_case_5pct"` // 터미널 가치 5 백분위
}
