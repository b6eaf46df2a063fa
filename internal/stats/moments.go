package stats

import (
	"math"
	"sort"
)

// =============================================================================
// 기술통계 (population moments)
// =============================================================================
// ⭐ SSOT: 시뮬레이션 앙상블 통계는 모두 모집단(population) 기준
// 표본 보정(n-1)을 쓰지 않음 — 앙상블 자체가 전체 분포이기 때문

// Mean 평균 계산
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev 모집단 표준편차 계산
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	mean := Mean(values)
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// Skewness 왜도 계산 (3차 표준화 모멘트)
// 분산이 0인 퇴화 분포는 0 반환 (NaN 방지)
func Skewness(values []float64) float64 {
	n := len(values)
	if n <= 2 {
		return 0
	}
	mean := Mean(values)
	std := StdDev(values)
	if std == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		z := (v - mean) / std
		sum += z * z * z
	}
	return sum / float64(n)
}

// Kurtosis 초과첨도 계산 (4차 표준화 모멘트 - 3)
// 분산이 0인 퇴화 분포는 0 반환 (NaN 방지)
func Kurtosis(values []float64) float64 {
	n := len(values)
	if n <= 3 {
		return 0
	}
	mean := Mean(values)
	std := StdDev(values)
	if std == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		z := (v - mean) / std
		sum += z * z * z * z
	}
	return sum/float64(n) - 3
}

// Min 최솟값
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max 최댓값
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// =============================================================================
// 백분위수
// =============================================================================

// Percentile 백분위수 계산 (선형 보간)
// sorted: 오름차순 정렬된 값
// p: 백분위 (0~100)
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	idx := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	// 선형 보간
	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Percentiles 여러 백분위수를 한 번에 계산
// values는 정렬하지 않은 원본 (내부에서 복사 후 정렬)
func Percentiles(values []float64, ps []int) map[int]float64 {
	result := make(map[int]float64, len(ps))
	if len(values) == 0 {
		for _, p := range ps {
			result[p] = 0
		}
		return result
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	for _, p := range ps {
		result[p] = Percentile(sorted, float64(p))
	}
	return result
}
