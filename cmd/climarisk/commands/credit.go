package commands

import (
	"github.com/spf13/cobra"

	"github.com/wonny/climarisk/internal/credit"
)

var (
	creditExposure    float64
	creditBasePD      float64
	creditBaseLGD     float64
	creditBeta        float64
	creditCorrelation float64
	creditDamageRatio float64
	creditHorizon     int
	creditSims        int
	creditSeed        int64
)

// creditCmd 단일 익스포저 기후 신용리스크 전체 분석
var creditCmd = &cobra.Command{
	Use:   "credit",
	Short: "기후 조정 신용리스크 분석 (EL/UL/자본)",
	Long: `단일 익스포저에 대한 기후 신용리스크 전체 분석.

기준 PD/LGD와 물리적 피해율로부터 기후 조정 → 스트레스 PD Monte Carlo
→ EL/UL/자본요구량을 계산하고 결과를 JSON으로 출력한다.

Example:
  go run ./cmd/climarisk credit \
    --exposure 100000000 --base-pd 0.02 --base-lgd 0.4 \
    --beta 0.5 --damage-ratio 0.25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		// 플래그 미지정 항목은 환경설정 기본값 사용
		if !cmd.Flags().Changed("horizon") {
			creditHorizon = cfg.Engine.TimeHorizon
		}
		if !cmd.Flags().Changed("sims") {
			creditSims = cfg.Engine.NumSimulations
		}
		if !cmd.Flags().Changed("seed") {
			creditSeed = cfg.Engine.Seed
		}

		engine, err := credit.NewEngine(credit.EngineConfig{
			BasePD:             creditBasePD,
			BaseLGD:            creditBaseLGD,
			ClimateBeta:        creditBeta,
			Correlation:        creditCorrelation,
			ClimateCorrelation: cfg.Engine.ClimateCorrelation,
		}, log)
		if err != nil {
			return err
		}

		result, err := engine.RunFullAnalysis(credit.AnalysisRequest{
			Exposure:       creditExposure,
			TimeHorizon:    creditHorizon,
			DamageRatio:    creditDamageRatio,
			NumSimulations: creditSims,
			Seed:           creditSeed,
		})
		if err != nil {
			log.WithError(err).Error("credit analysis failed")
			return err
		}

		return printJSON(result)
	},
}

func init() {
	creditCmd.Flags().Float64Var(&creditExposure, "exposure", 100_000_000, "익스포저 (EAD)")
	creditCmd.Flags().Float64Var(&creditBasePD, "base-pd", 0.02, "기준 부도확률")
	creditCmd.Flags().Float64Var(&creditBaseLGD, "base-lgd", 0.4, "기준 부도시손실률")
	creditCmd.Flags().Float64Var(&creditBeta, "beta", 0.5, "기후 민감도 계수")
	creditCmd.Flags().Float64Var(&creditCorrelation, "correlation", 0.3, "자산 상관계수")
	creditCmd.Flags().Float64Var(&creditDamageRatio, "damage-ratio", 0.0, "물리적 피해율 [0,1]")
	creditCmd.Flags().IntVar(&creditHorizon, "horizon", 10, "분석 기간 (년)")
	creditCmd.Flags().IntVar(&creditSims, "sims", 10000, "Monte Carlo 시뮬레이션 횟수")
	creditCmd.Flags().Int64Var(&creditSeed, "seed", 42, "재현성용 시드")

	rootCmd.AddCommand(creditCmd)
}
