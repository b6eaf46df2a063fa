package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "climarisk",
	Short: "기후 물리 리스크 → 신용/포트폴리오 리스크 정량화 엔진",
	Long: `climarisk CLI

기후 해저드(홍수/태풍/산불/가뭄)의 물리적 피해가 신용리스크와
포트폴리오 가치에 미치는 영향을 정량화하는 시뮬레이션 엔진.

Usage:
  go run ./cmd/climarisk [command]

Examples:
  go run ./cmd/climarisk credit --exposure 100000000 --damage-ratio 0.25
  go run ./cmd/climarisk simulate --n-assets 3 --climate-factor 0.5
  go run ./cmd/climarisk compare --scenario baseline=0.0 --scenario severe=0.5
  go run ./cmd/climarisk portfolio --n-assets 2`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
