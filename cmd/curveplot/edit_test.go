package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/parkour/anim"
	"github.com/milk9111/parkour/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestParseEdit(t *testing.T) {
	tests := []struct {
		in      string
		want    edit
		wantErr bool
	}{
		{in: "normalize:x", want: edit{op: "normalize", axis: anim.AxisX}},
		{in: "SCALE:Z:1.5", want: edit{op: "scale", axis: anim.AxisZ, args: []float64{1.5}}},
		{in: "fit:x:0.3:0.7:6", want: edit{op: "fit", axis: anim.AxisX, args: []float64{0.3, 0.7, 6}}},
		{in: "remapends:z:0:2.73", want: edit{op: "remapends", axis: anim.AxisZ, args: []float64{0, 2.73}}},
		{in: "normalize", wantErr: true},
		{in: "twist:x", wantErr: true},
		{in: "scale:w:2", wantErr: true},
		{in: "scale:x", wantErr: true},
		{in: "zero:x:1", wantErr: true},
		{in: "shift:y:abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseEdit(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(edit{})); diff != "" {
				t.Errorf("parseEdit(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestEditsFlag(t *testing.T) {
	var es edits
	require.NoError(t, es.Set("normalize:x"))
	require.NoError(t, es.Set("scale:z:2"))
	assert.Error(t, es.Set("bogus"))
	assert.Len(t, es, 2)
	assert.Equal(t, "normalize:x,scale:z:2", es.String())
}

func TestRetarget(t *testing.T) {
	raw := anim.NewCurve(
		anim.Keyframe{TimeMs: 0, Value: r3.Vec{X: 2, Z: 1}},
		anim.Keyframe{TimeMs: 50, Value: r3.Vec{X: 4, Z: 1}},
		anim.Keyframe{TimeMs: 100, Value: r3.Vec{X: 6, Z: 1}},
	)

	var chain edits
	require.NoError(t, chain.Set("normalize:x"))
	require.NoError(t, chain.Set("shift:z:1"))
	got, err := retarget(raw, chain, anim.Arc{})
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0.5, 1}, got.Values(anim.AxisX))
	assert.Equal(t, []float64{2, 2, 2}, got.Values(anim.AxisZ))
	assert.Equal(t, []float64{2, 4, 6}, raw.Values(anim.AxisX), "raw curve is not edited")

	var flat edits
	require.NoError(t, flat.Set("normalize:z"))
	_, err = retarget(raw, flat, anim.Arc{})
	assert.ErrorIs(t, err, anim.ErrDegenerate)
}

func TestLoadCurveFromEmbeddedConfig(t *testing.T) {
	store := prefabs.Embedded()
	defs, err := store.LoadAnimConfig(prefabs.AnimConfigFile)
	require.NoError(t, err)

	c, err := loadCurve(context.Background(), store, defs, "vault")
	require.NoError(t, err)
	assert.False(t, c.Empty())

	_, err = loadCurve(context.Background(), store, defs, "nowhere")
	assert.ErrorIs(t, err, anim.ErrNotFound)

	p, err := newPlot("vault", c, c)
	require.NoError(t, err)
	assert.Equal(t, "vault", p.Title.Text)
}
