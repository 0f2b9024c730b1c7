package pie

import "fmt"

// NormalizeText converts a label value to display text. Nil means "no
// label" and stays nil, which is distinct from an empty string.
func NormalizeText(v any) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprint(v)
	return &s
}
