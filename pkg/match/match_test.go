package match_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/q/pkg/dom"
	"github.com/go-drift/q/pkg/internal/testbed"
	"github.com/go-drift/q/pkg/match"
	"github.com/go-drift/q/pkg/query"
	"github.com/go-drift/q/pkg/style"
)

// recorderT captures matcher failures instead of failing the test.
type recorderT struct {
	failures []string
}

func (r *recorderT) Helper() {}

func (r *recorderT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestTextMatchers(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B"}})

	assert.True(t, match.HasText(t, res, "AB"))
	assert.True(t, match.ContainsText(t, res, "B"))

	rec := &recorderT{}
	assert.False(t, match.HasText(rec, res, "BA"))
	assert.False(t, match.ContainsText(rec, res, "Z"))
	assert.Len(t, rec.failures, 2)
	assert.Contains(t, rec.failures[0], `got "AB", want "BA"`)
}

func TestHasStyleChecksOnlySetProperties(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	// Partial expectations: unset properties of want are not compared.
	assert.True(t, match.HasStyle(t, res, style.Style{Padding: 8}))
	assert.True(t, match.HasStyle(t, res, testbed.ListStyle))

	rec := &recorderT{}
	assert.False(t, match.HasStyle(rec, res, style.Style{
		Background: style.ColorRed,
		FontWeight: style.WeightBold,
	}))
	assert.Len(t, rec.failures, 2)

	rec = &recorderT{}
	empty := res.Filter(func(*dom.Node) bool { return false })
	assert.False(t, match.HasStyle(rec, empty, style.Style{Padding: 8}))
	assert.Contains(t, rec.failures[0], "no matched node")
}

func TestHasAttr(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	assert.True(t, match.HasAttr(t, res, "role", "list"))

	rec := &recorderT{}
	assert.False(t, match.HasAttr(rec, res, "role", "grid"))
	assert.False(t, match.HasAttr(rec, res, "missing", "x"))
	assert.Len(t, rec.failures, 2)
}

func TestCountAndExistence(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B"}})
	items := res.Children()

	assert.True(t, match.Count(t, items, 2))
	assert.True(t, match.Exists(t, items))

	empty := items.Filter(func(*dom.Node) bool { return false })
	assert.True(t, match.NotExists(t, empty))

	rec := &recorderT{}
	assert.False(t, match.Count(rec, items, 3))
	assert.False(t, match.Exists(rec, empty))
	assert.False(t, match.NotExists(rec, items))
	assert.Len(t, rec.failures, 3)
}
