package engine

import (
	"reflect"
	"testing"
)

func TestMinRankDesc(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"empty", nil, []int{}},
		{"single", []float64{3.2}, []int{1}},
		{"distinct", []float64{1.0, 3.0, 2.0}, []int{3, 1, 2}},
		{"pair tie skips next", []float64{5.0, 5.0, 1.0}, []int{1, 1, 3}},
		{"tie in the middle", []float64{9.0, 4.0, 4.0, 2.0}, []int{1, 2, 2, 4}},
		{"all tied", []float64{0.0, 0.0, 0.0}, []int{1, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MinRankDesc(tc.values)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("MinRankDesc(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}
