package clipping

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPointEqual(t *testing.T) {
	test.T(t, NewPoint(1, 2).Equal(NewPoint(1, 2)), true)
	test.T(t, NewPoint(1, 2).Equal(NewPoint(2, 1)), false)
}

func TestPointCompare(t *testing.T) {
	tests := []struct {
		a, b Point
		want int
	}{
		{NewPoint(0, 0), NewPoint(1, 0), -1},
		{NewPoint(1, 0), NewPoint(0, 0), 1},
		{NewPoint(1, 1), NewPoint(1, 1), 0},
		{NewPoint(1, 0), NewPoint(1, 1), -1},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			got := tt.a.Compare(tt.b)
			if tt.want < 0 {
				test.T(t, got < 0, true)
			} else if tt.want > 0 {
				test.T(t, got > 0, true)
			} else {
				test.T(t, got, 0)
			}
		})
	}
}

func TestPointLess(t *testing.T) {
	test.T(t, NewPoint(0, 0).Less(NewPoint(0, 1)), true)
	test.T(t, NewPoint(0, 1).Less(NewPoint(0, 0)), false)
}
