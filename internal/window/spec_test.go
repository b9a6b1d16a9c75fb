package window

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSpec(t *testing.T) {
	spec := Default()
	require.Equal(t, "popup_input", spec.Label)
	require.Equal(t, "", spec.Title)
	require.Equal(t, 360, spec.Width)
	require.Equal(t, 185, spec.Height)
	require.False(t, spec.Resizable)
	require.True(t, spec.Focused)
	require.True(t, spec.Closable)
	require.True(t, spec.Decorations)
	require.Equal(t, TitleBarOverlay, spec.TitleBar)
	require.NoError(t, spec.Validate())
}

func TestSpecValidate(t *testing.T) {
	spec := Spec{Label: " ", Width: 0, Height: -1}
	err := spec.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "label required")
	require.Contains(t, err.Error(), "width must be > 0")
	require.Contains(t, err.Error(), "height must be > 0")
}

func TestSpecCells(t *testing.T) {
	tests := []struct {
		name       string
		spec       Spec
		cw, ch     int
		cols, rows int
	}{
		{name: "default geometry", spec: Default(), cw: 8, ch: 16, cols: 45, rows: 12},
		{name: "fallback cell size", spec: Default(), cw: 0, ch: -1, cols: 45, rows: 12},
		{name: "rounds up", spec: Spec{Width: 9, Height: 17}, cw: 8, ch: 16, cols: 2, rows: 2},
		{name: "minimum one cell", spec: Spec{Width: 0, Height: 0}, cw: 8, ch: 16, cols: 1, rows: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := tt.spec.Cells(tt.cw, tt.ch)
			require.Equal(t, tt.cols, cols)
			require.Equal(t, tt.rows, rows)
		})
	}
}

func TestTitleBarStyleString(t *testing.T) {
	require.Equal(t, "visible", TitleBarVisible.String())
	require.Equal(t, "overlay", TitleBarOverlay.String())
	require.Equal(t, "titlebar(7)", TitleBarStyle(7).String())
}
