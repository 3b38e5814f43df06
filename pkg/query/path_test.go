package query_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/go-drift/q/pkg/errors"
	"github.com/go-drift/q/pkg/internal/testbed"
	"github.com/go-drift/q/pkg/query"
)

func TestSelectChildTexts(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B"}})

	texts, err := res.Select(`$.nodes[0].children[*].text`)
	require.NoError(t, err)
	assert.Equal(t, []any{"A", "B"}, texts)
}

func TestSelectAttributes(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	roles, err := res.Select(`$.nodes[0].attrs.role`)
	require.NoError(t, err)
	assert.Equal(t, []any{"list"}, roles)

	background, err := res.Select(`$.nodes[0].style.background`)
	require.NoError(t, err)
	assert.Equal(t, []any{"#FF336699"}, background)
}

func TestSelectDescendantFilter(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A", "B", "C"}})

	matched, err := res.Select(`$..children[?@.text == "B"].id`)
	require.NoError(t, err)
	assert.Equal(t, []any{"text#1"}, matched)
}

func TestSelectNoMatches(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	out, err := res.Select(`$.nodes[0].children[*].missing`)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSelectInvalidExpression(t *testing.T) {
	res := query.RenderT(t, testbed.List{Items: []string{"A"}})

	_, err := res.Select(`$[`)
	require.Error(t, err)
	var qerr *qerrors.Error
	require.True(t, errors.As(err, &qerr))
	assert.Equal(t, qerrors.KindQuery, qerr.Kind)
}
