package chartfile

import (
	"bytes"
	"math"
	"strings"
	"text/template"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/render/chart"
)

var templateFuncs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"round": func(v float64, places int) float64 {
		p := math.Pow(10, float64(places))
		return math.Round(v*p) / p
	},
}

func isTemplate(s string) bool { return strings.Contains(s, "{{") }

// compile parses src as a datum template. The returned function yields nil
// when execution fails.
func compile(name, src string) (func(chart.Datum) any, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidChart, err, "%s: invalid template", name)
	}
	return func(d chart.Datum) any {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, d); err != nil {
			return nil
		}
		return buf.String()
	}, nil
}

// compileNumber is like compile but parses the output as a number.
func compileNumber(name, src string) (func(chart.Datum) any, error) {
	fn, err := compile(name, src)
	if err != nil {
		return nil, err
	}
	return func(d chart.Datum) any {
		s, _ := fn(d).(string)
		if f, ok := chart.ToFloat(strings.TrimSpace(s)); ok {
			return f
		}
		return nil
	}, nil
}
