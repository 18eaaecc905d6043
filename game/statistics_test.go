package game

import (
	"math"
	"testing"
)

func TestStatisticsKnownValues(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	if got := Sum(data); got != 40 {
		t.Fatalf("expected sum 40, got %v", got)
	}
	if got := Mean(data); got != 5 {
		t.Fatalf("expected mean 5, got %v", got)
	}
	if got := Variance(data); got != 4 {
		t.Fatalf("expected variance 4, got %v", got)
	}
	if got := StandardDeviation(data); got != 2 {
		t.Fatalf("expected stddev 2, got %v", got)
	}
	if got := Median(data); got != 4.5 {
		t.Fatalf("expected median 4.5, got %v", got)
	}
}

func TestMedianOddCount(t *testing.T) {
	if got := Median([]float64{3, 1, 2}); got != 2 {
		t.Fatalf("expected median 2, got %v", got)
	}
}

func TestStatisticsEmptyInput(t *testing.T) {
	for name, got := range map[string]float64{
		"sum":      Sum(nil),
		"mean":     Mean(nil),
		"median":   Median(nil),
		"variance": Variance(nil),
		"stddev":   StandardDeviation(nil),
	} {
		if got != 0 || math.IsNaN(got) {
			t.Fatalf("expected %s of empty input to be 0, got %v", name, got)
		}
	}
}
