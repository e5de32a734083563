package evaluator

import (
	"strconv"
	"strings"
)

// versionBuiltins holds `compareVersions`, the one optional-capability
// builtin that is actually implemented rather than a NotYetImplemented
// stub.
func (e *Evaluator) versionBuiltins() []*Builtin {
	return []*Builtin{
		curry2("compareVersions", func(aV, bV Value) (Value, error) {
			if !e.Caps.CompareVersions {
				return nil, notEnabled("compare_versions")
			}
			a, err := e.forceString(aV)
			if err != nil {
				return nil, err
			}
			b, err := e.forceString(bV)
			if err != nil {
				return nil, err
			}
			return &Integer{Value: int64(compareVersionStrings(a, b))}, nil
		}),
	}
}

// versionComponents splits a version string into dot/dash-delimited
// components, the same splitting rule parseDrvName uses on `-`.
func versionComponents(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		return r == '.' || r == '-'
	})
}

// compareVersionStrings compares two version strings component by
// component: numeric components compare numerically, other components
// compare lexically; a missing trailing component sorts lower than
// any present one.
func compareVersionStrings(a, b string) int {
	ac := versionComponents(a)
	bc := versionComponents(b)
	n := len(ac)
	if len(bc) > n {
		n = len(bc)
	}
	for i := 0; i < n; i++ {
		if i >= len(ac) {
			return -1
		}
		if i >= len(bc) {
			return 1
		}
		if cmp := compareVersionComponent(ac[i], bc[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func compareVersionComponent(a, b string) int {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
