// Package match provides assertion-layer matchers over query results.
//
// Matchers report through the TestingT seam rather than wrapping a
// specific assertion library, so they plug into plain *testing.T,
// testify-driven suites, and test doubles alike:
//
//	res := query.RenderT(t, testbed.Counter{})
//	match.HasText(t, res, "0")
//	match.HasStyle(t, res, style.Style{FontWeight: style.WeightBold})
package match

import (
	"strings"

	"github.com/go-drift/q/pkg/query"
	"github.com/go-drift/q/pkg/style"
)

// TestingT is the subset of *testing.T used by matchers, allowing test
// doubles to intercept failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

// HasText asserts the result's concatenated text equals want.
func HasText(t TestingT, r query.Result, want string) bool {
	t.Helper()
	got := r.Text()
	if got != want {
		t.Errorf("HasText: got %q, want %q", got, want)
		return false
	}
	return true
}

// ContainsText asserts the result's concatenated text contains substring.
func ContainsText(t TestingT, r query.Result, substring string) bool {
	t.Helper()
	got := r.Text()
	if !strings.Contains(got, substring) {
		t.Errorf("ContainsText: %q does not contain %q", got, substring)
		return false
	}
	return true
}

// HasStyle asserts the first matched node carries every property set on
// want. Properties left zero on want are not checked, so partial style
// expectations compose:
//
//	match.HasStyle(t, res, style.Style{Color: style.ColorRed})
func HasStyle(t TestingT, r query.Result, want style.Style) bool {
	t.Helper()
	got, ok := r.Style()
	if !ok {
		t.Errorf("HasStyle: no matched node")
		return false
	}
	pass := true
	if want.Color != 0 && got.Color != want.Color {
		t.Errorf("HasStyle: color got %v, want %v", got.Color, want.Color)
		pass = false
	}
	if want.Background != 0 && got.Background != want.Background {
		t.Errorf("HasStyle: background got %v, want %v", got.Background, want.Background)
		pass = false
	}
	if want.FontSize != 0 && got.FontSize != want.FontSize {
		t.Errorf("HasStyle: fontSize got %v, want %v", got.FontSize, want.FontSize)
		pass = false
	}
	if want.FontWeight != "" && got.FontWeight != want.FontWeight {
		t.Errorf("HasStyle: fontWeight got %q, want %q", got.FontWeight, want.FontWeight)
		pass = false
	}
	if want.Padding != 0 && got.Padding != want.Padding {
		t.Errorf("HasStyle: padding got %v, want %v", got.Padding, want.Padding)
		pass = false
	}
	return pass
}

// HasAttr asserts the first matched node carries attribute name=want.
func HasAttr(t TestingT, r query.Result, name, want string) bool {
	t.Helper()
	got, ok := r.Attr(name)
	if !ok {
		t.Errorf("HasAttr: attribute %q absent", name)
		return false
	}
	if got != want {
		t.Errorf("HasAttr: %s got %q, want %q", name, got, want)
		return false
	}
	return true
}

// Count asserts the matched set has exactly want nodes.
func Count(t TestingT, r query.Result, want int) bool {
	t.Helper()
	if got := r.Len(); got != want {
		t.Errorf("Count: matched %d nodes, want %d", got, want)
		return false
	}
	return true
}

// Exists asserts the matched set is non-empty.
func Exists(t TestingT, r query.Result) bool {
	t.Helper()
	if !r.Exists() {
		t.Errorf("Exists: no matched nodes")
		return false
	}
	return true
}

// NotExists asserts the matched set is empty.
func NotExists(t TestingT, r query.Result) bool {
	t.Helper()
	if r.Exists() {
		t.Errorf("NotExists: matched %d nodes", r.Len())
		return false
	}
	return true
}
