package credit

// =============================================================================
// Model Constants
// =============================================================================

// 거래일 기준 일별 시간격자
const (
	TradingDaysPerYear = 252
)

// PD 경로 클리핑 경계
// ⭐ SSOT: 시뮬레이션 PD는 항상 이 범위 안 (유효 확률 유지)
const (
	PDFloor = 0.0001
	PDCeil  = 0.9999
)

// 기후 조정 승수 상한 (기본값)
const (
	DefaultPDCap  = 3.0
	DefaultLGDCap = 1.5
)

// StressedPDPercentile 스트레스 PD 정의 백분위
// ⭐ 고정 관례: 신뢰수준 파라미터와 무관하게 터미널 분포의 99 백분위 사용
// (신뢰수준이 tail 선택을 구동해야 하는지는 미결 — DESIGN.md 참고)
const StressedPDPercentile = 99

// 자본 계산 상수
const (
	DefaultCapitalRatio = 0.08 // 최소 자본비율 (8%)
	ClimateBufferRatio  = 0.15 // 스트레스 자본 대비 기후 버퍼 가산 (15%)
)

// =============================================================================
// Engine Configuration
// =============================================================================

// EngineConfig 신용리스크 엔진 구성 (엔진당 불변)
type EngineConfig struct {
	BasePD       float64 `json:"base_pd"`       // 기준 부도확률 (0,1)
	BaseLGD      float64 `json:"base_lgd"`      // 기준 부도시손실률 (0,1]
	ClimateBeta  float64 `json:"climate_beta"`  // 기후 민감도 계수 [0,1]
	Correlation  float64 `json:"correlation"`   // 자산 상관계수 [0,1]
	Maturity     int     `json:"maturity"`      // 만기 (년, 0이면 기본 5년)
	RecoveryRate float64 `json:"recovery_rate"` // 회수율 (0이면 1-LGD로 유도)

	// ClimateCorrelation 시스템-기후 충격 상관 ρ 재정의 (0이면 기본 0.25)
	ClimateCorrelation float64 `json:"climate_correlation,omitempty"`
}

// ModelParams 평균회귀 확률과정 파라미터
// 원 모형의 고정 계수 — 데이터 캘리브레이션 대상 아님
type ModelParams struct {
	Kappa              float64 `json:"kappa"`               // 평균회귀 속도 κ
	LongRunMean        float64 `json:"long_run_mean"`       // 장기 평균 θ (= BasePD)
	Sigma              float64 `json:"sigma"`               // PD 변동성 σ
	ClimateCorrelation float64 `json:"climate_correlation"` // 시스템-기후 충격 상관 ρ
}

// DefaultModelParams 기준 PD에 대한 기본 모형 파라미터
func DefaultModelParams(basePD float64) ModelParams {
	return ModelParams{
		Kappa:              0.05,
		LongRunMean:        basePD,
		Sigma:              0.12,
		ClimateCorrelation: 0.25,
	}
}

// =============================================================================
// Adjustment & Simulation Results
// =============================================================================

// Adjustment 기후 조정 결과 (결정론적)
// 불변식: AdjustedPD, AdjustedLGD ∈ (0,1]
type Adjustment struct {
	PDMultiplier  float64 `json:"pd_multiplier"`  // PD 승수 (>=1, 상한 적용)
	LGDMultiplier float64 `json:"lgd_multiplier"` // LGD 승수 (>=1, 상한 적용)
	ClimateFactor float64 `json:"climate_factor"` // β × damage_ratio (시뮬레이션 시드)
	AdjustedPD    float64 `json:"adjusted_pd"`
	AdjustedLGD   float64 `json:"adjusted_lgd"`
}

// PDDistribution Monte Carlo PD 분포 요약
// 경로 앙상블은 요약 추출 후 폐기, 터미널 값만 유지
type PDDistribution struct {
	BasePD       float64         `json:"base_pd"`
	Mean         float64         `json:"mean"`
	Std          float64         `json:"std"`
	Percentiles  map[int]float64 `json:"percentiles"` // 5, 25, 50, 75, 95, 99
	StressedPD   float64         `json:"stressed_pd"` // 터미널 분포의 99 백분위
	FinalPDs     []float64       `json:"-"`           // 터미널 PD (분포 분석용, JSON 제외)
	NSimulations int             `json:"n_simulations"`
	TimeHorizon  int             `json:"time_horizon"`
}

// =============================================================================
// Loss & Capital Results
// =============================================================================

// LossFigures 손실 지표 (EL/UL 공용)
type LossFigures struct {
	Base               float64 `json:"base"`
	Stressed           float64 `json:"stressed"`
	Additional         float64 `json:"additional"`          // stressed - base
	IncreasePercentage float64 `json:"increase_percentage"` // base=0이면 0
}

// CapitalResult 단일 자본요구량 계산 결과
type CapitalResult struct {
	UnexpectedLoss  float64 `json:"unexpected_loss"`
	BaseCapital     float64 `json:"base_capital"`     // UL × ratio
	AdjustedCapital float64 `json:"adjusted_capital"` // BaseCapital × z/z_999
	ConfidenceLevel float64 `json:"confidence_level"`
	ZScore          float64 `json:"z_score"`
	CapitalRatio    float64 `json:"capital_ratio"`
}

// CapitalFigures 기준 대비 스트레스 자본 비교
type CapitalFigures struct {
	Base          float64 `json:"base"`
	Stressed      float64 `json:"stressed"`
	Additional    float64 `json:"additional"`
	ClimateBuffer float64 `json:"climate_buffer"` // Stressed × 0.15 (고정 가산)
}

// =============================================================================
// Full Analysis
// =============================================================================

// AnalysisRequest 전체 분석 요청
type AnalysisRequest struct {
	Exposure       float64 `json:"exposure"`        // EAD (> 0)
	TimeHorizon    int     `json:"time_horizon"`    // 분석 기간 (년, >= 1)
	DamageRatio    float64 `json:"damage_ratio"`    // 물리적 피해율 [0,1]
	NumSimulations int     `json:"n_simulations"`   // >= 1
	Seed           int64   `json:"seed"`            // 재현성용 시드
}

// PDAnalysis 전체 분석 내 PD 파트
type PDAnalysis struct {
	BasePD           float64         `json:"base_pd"`
	StressedPD       float64         `json:"stressed_pd"`
	PDIncreaseFactor float64         `json:"pd_increase_factor"` // stressed / base
	Distribution     *PDDistribution `json:"distribution"`
}

// AnalysisSummary 전체 분석 요약
type AnalysisSummary struct {
	PDMultiplier    float64 `json:"pd_multiplier"`
	LGDMultiplier   float64 `json:"lgd_multiplier"`
	TotalImpact     float64 `json:"total_impact"`     // ΔEL + ΔUL
	CapitalIncrease float64 `json:"capital_increase"` // 스트레스 - 기준 자본
}

// AnalysisResult 기후 신용리스크 전체 분석 결과
// ⭐ SSOT: 재현성을 위해 입력 에코 + RunID 포함
type AnalysisResult struct {
	RunID          string          `json:"run_id"`
	Input          AnalysisRequest `json:"input"`
	Config         EngineConfig    `json:"config"`
	Adjustment     Adjustment      `json:"climate_adjustment"`
	PDAnalysis     PDAnalysis      `json:"pd_analysis"`
	ExpectedLoss   LossFigures     `json:"expected_loss"`
	UnexpectedLoss LossFigures     `json:"unexpected_loss"`
	Capital        CapitalFigures  `json:"capital"`
	Summary        AnalysisSummary `json:"summary"`
}
