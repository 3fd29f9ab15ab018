package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/wcaresults/models"
)

func event(t *testing.T, id string) *models.Event {
	t.Helper()
	ev, err := models.FindEvent(id)
	require.NoError(t, err)
	return ev
}

func TestNormaliseMultiBlind(t *testing.T) {
	r := &models.Result{Best: 1960300037}
	r.SetValues([]int64{1960300037, -1, 950120001})

	changed := normaliseResult(r, event(t, "333mbf"))

	assert.Equal(t, 2, changed)
	assert.Equal(t, int64(960003700), r.Best)
	assert.Equal(t, []int64{960003700, -1, 950120001, 0, 0}, r.Values())
}

func TestNormaliseOldStyleKeepsPacking(t *testing.T) {
	r := &models.Result{Best: 1960300037}
	r.SetValues([]int64{1960300037})

	assert.Zero(t, normaliseResult(r, event(t, "333mbo")))
	assert.Equal(t, int64(1960300037), r.Value1)
}

func TestNormaliseLeavesOtherEvents(t *testing.T) {
	r := &models.Result{Best: 1960300037, Average: 3367}
	r.SetValues([]int64{1960300037})

	assert.Zero(t, normaliseResult(r, event(t, "333fm")))
	assert.Zero(t, normaliseResult(r, event(t, "333")))
	assert.Equal(t, int64(1960300037), r.Value1)
}

func TestNormaliseSkipsOutOfRangeCounts(t *testing.T) {
	// DD=00 with 99 missed decodes to 198 solved out of 297.
	v, ok := normaliseValue(event(t, "333mbf"), 120099)
	assert.False(t, ok)
	assert.Equal(t, int64(120099), v)
}

func TestNormaliseSkipsMoreSolvedThanAttempted(t *testing.T) {
	// Old packing that decodes to 10 solved out of 2 attempted.
	v, ok := normaliseValue(event(t, "333mbf"), 1890299999)
	assert.False(t, ok)
	assert.Equal(t, int64(1890299999), v)

	r := &models.Result{Best: 1890299999}
	r.SetValues([]int64{1890299999})
	assert.Zero(t, normaliseResult(r, event(t, "333mbf")))
	assert.Equal(t, int64(1890299999), r.Best)
}
