package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuanwang7/TowerDefenceGame/pkg/utils"
)

func TestRangeContains(t *testing.T) {
	circle := RangeDef{Shape: RangeCircle, Outer: 1.5}
	donut := RangeDef{Shape: RangeDonut, Inner: 1.5, Outer: 4.5}
	plus := RangeDef{Shape: RangePlus, Inner: 0.5, Outer: 2.5}

	tests := []struct {
		name string
		r    RangeDef
		p    utils.Point
		want bool
	}{
		{"circle centre", circle, utils.Point{}, true},
		{"circle edge", circle, utils.Point{X: 1.5}, true},
		{"circle diagonal outside", circle, utils.Point{X: 1.1, Y: 1.1}, false},
		{"donut hole", donut, utils.Point{X: 1}, false},
		{"donut inner edge", donut, utils.Point{X: 1.5}, true},
		{"donut ring", donut, utils.Point{X: 0, Y: -3}, true},
		{"donut outer edge", donut, utils.Point{X: 4.5}, true},
		{"donut outside", donut, utils.Point{X: 5}, false},
		{"plus vertical bar", plus, utils.Point{Y: 2}, true},
		{"plus horizontal bar", plus, utils.Point{X: -2, Y: 0.4}, true},
		{"plus corner", plus, utils.Point{X: 1, Y: 1}, false},
		{"plus bar edge is open", plus, utils.Point{X: 0, Y: 2.5}, false},
		{"unknown shape", RangeDef{Shape: "STAR", Outer: 10}, utils.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.p))
		})
	}
}
