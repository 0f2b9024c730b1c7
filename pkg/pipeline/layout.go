package pipeline

import (
	"github.com/matzehuels/piechart/pkg/render/pie"
)

// GenerateLayout computes child props for a chart, filling every unset
// prop from the chart's theme and then from [pie.DefaultProps].
func GenerateLayout(props pie.Props) pie.ChildProps {
	return pie.BaseProps(props, pie.DefaultProps())
}

// CountLabels returns the number of elements that carry label text.
func CountLabels(cp pie.ChildProps) int {
	n := 0
	for _, el := range cp.Elements {
		if el.Labels.Text != nil {
			n++
		}
	}
	return n
}
