package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wonny/climarisk/internal/portfolio"
)

var compareScenarios []string

// compareCmd 다중 기후 시나리오 비교
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "다중 기후 시나리오 비교 시뮬레이션",
	Long: `동일 포트폴리오를 여러 기후 시나리오로 시뮬레이션하고
시나리오별 요약(평균 수익률, VaR, ES, 손실확률)을 비교한다.

시나리오 카탈로그는 엔진 외부 — 이름=팩터 쌍으로 직접 지정한다.

Example:
  go run ./cmd/climarisk compare \
    --scenario baseline=0.0 --scenario severe=0.5 --scenario catastrophic=1.0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		scenarios, err := parseScenarios(compareScenarios)
		if err != nil {
			return err
		}

		sim, err := portfolio.NewSimulator(simulationConfig(cmd, cfg), log)
		if err != nil {
			return err
		}

		results, err := sim.Compare(syntheticAssets(), scenarios)
		if err != nil {
			log.WithError(err).Error("scenario comparison failed")
			return err
		}

		return printJSON(results)
	},
}

// parseScenarios "name=factor" 쌍 파싱
func parseScenarios(specs []string) (map[string]float64, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("at least one --scenario name=factor is required")
	}

	scenarios := make(map[string]float64, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("invalid scenario %q, expected name=factor", spec)
		}
		factor, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid climate factor in %q: %w", spec, err)
		}
		scenarios[parts[0]] = factor
	}
	return scenarios, nil
}

func init() {
	compareCmd.Flags().StringArrayVar(&compareScenarios, "scenario", nil, "시나리오 (name=factor, 반복 지정)")

	// simulate와 동일한 포트폴리오/설정 플래그 공유
	compareCmd.Flags().IntVar(&simNAssets, "n-assets", 3, "합성 포트폴리오 자산 수")
	compareCmd.Flags().Float64Var(&simAssetValue, "asset-value", 10_000_000, "자산당 가치")
	compareCmd.Flags().Float64Var(&simBasePD, "base-pd", 0.02, "기준 부도확률")
	compareCmd.Flags().Float64Var(&simBaseLGD, "base-lgd", 0.4, "기준 부도시손실률")
	compareCmd.Flags().Float64Var(&simBeta, "beta", 0.5, "기후 민감도 계수")
	compareCmd.Flags().Float64Var(&simDamageRatio, "damage-ratio", 0.1, "물리적 피해율 [0,1]")
	compareCmd.Flags().IntVar(&simHorizon, "horizon", 10, "분석 기간 (년)")
	compareCmd.Flags().IntVar(&simSims, "sims", 10000, "Monte Carlo 시뮬레이션 횟수")
	compareCmd.Flags().Float64Var(&simConfidence, "confidence", 0.95, "신뢰수준")
	compareCmd.Flags().Int64Var(&simSeed, "seed", 42, "재현성용 시드")

	rootCmd.AddCommand(compareCmd)
}
