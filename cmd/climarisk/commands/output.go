package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/wonny/climarisk/pkg/config"
	"github.com/wonny/climarisk/pkg/logger"
)

// setup 설정 로드 + 로거 생성 (명령 공통)
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logger.New(cfg), nil
}

// printJSON 결과를 들여쓰기된 JSON으로 stdout에 출력
// 로그는 stderr로 분리되어 있어 파이프라인에서 결과만 소비 가능
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
