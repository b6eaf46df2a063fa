package credit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatePD_Bounds(t *testing.T) {
	// 극단 입력 (β=1, factor=1)에서도 모든 PD는 [0.0001, 0.9999]
	engine, err := NewEngine(EngineConfig{
		BasePD:      0.02,
		BaseLGD:     0.4,
		ClimateBeta: 1.0,
		Correlation: 0.3,
	}, nil)
	require.NoError(t, err)

	dist, err := engine.SimulatePD(1, 1.0, 500, 42)
	require.NoError(t, err)

	for _, pd := range dist.FinalPDs {
		assert.GreaterOrEqual(t, pd, PDFloor)
		assert.LessOrEqual(t, pd, PDCeil)
	}
}

func TestSimulatePD_StressedPDMonotonic(t *testing.T) {
	// 동일 시드/기간에서 stressed_pd는 climate_factor에 단조 비감소
	engine := newTestEngine(t)

	base, err := engine.SimulatePD(1, 0.0, 2000, 42)
	require.NoError(t, err)

	stressed, err := engine.SimulatePD(1, 0.5, 2000, 42)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, stressed.StressedPD, base.StressedPD)
}

func TestSimulatePD_Reproducible(t *testing.T) {
	// 동일 입력 + 동일 시드 ⇒ 비트 동일 앙상블
	engine := newTestEngine(t)

	a, err := engine.SimulatePD(1, 0.25, 300, 7)
	require.NoError(t, err)

	b, err := engine.SimulatePD(1, 0.25, 300, 7)
	require.NoError(t, err)

	require.Equal(t, len(a.FinalPDs), len(b.FinalPDs))
	for i := range a.FinalPDs {
		assert.Equal(t, a.FinalPDs[i], b.FinalPDs[i], "path %d diverged", i)
	}
	assert.Equal(t, a.StressedPD, b.StressedPD)
	assert.Equal(t, a.Mean, b.Mean)
}

func TestSimulatePD_DifferentSeeds(t *testing.T) {
	engine := newTestEngine(t)

	a, err := engine.SimulatePD(1, 0.25, 300, 1)
	require.NoError(t, err)

	b, err := engine.SimulatePD(1, 0.25, 300, 2)
	require.NoError(t, err)

	assert.NotEqual(t, a.Mean, b.Mean, "different seeds must produce different ensembles")
}

func TestSimulatePD_StressedIsP99(t *testing.T) {
	// stressed_pd = 터미널 분포 99 백분위 (고정 관례)
	engine := newTestEngine(t)

	dist, err := engine.SimulatePD(1, 0.1, 500, 42)
	require.NoError(t, err)

	assert.Equal(t, dist.Percentiles[StressedPDPercentile], dist.StressedPD)
	assert.GreaterOrEqual(t, dist.Percentiles[99], dist.Percentiles[95])
	assert.GreaterOrEqual(t, dist.Percentiles[95], dist.Percentiles[50])
}

func TestSimulatePD_Validation(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.SimulatePD(0, 0.1, 100, 42)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = engine.SimulatePD(1, 0.1, 0, 42)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
