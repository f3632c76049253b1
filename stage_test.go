package nodeeditor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/nodeeditor/geom"
)

func TestStageSetSameStageIsNoop(t *testing.T) {
	h := newFakeHost()
	n := &Node{ID: 7}
	var m stageMachine

	require.True(t, m.set(h, n, StageBegin))
	h.reset()

	assert.False(t, m.set(h, n, StageBegin))
	assert.Empty(t, h.calls, "repeated stage must not run exit or entry actions")
	assert.Equal(t, StageBegin, m.current)
}

func TestStageTransitionActions(t *testing.T) {
	tests := []struct {
		from, to Stage
		want     []string
	}{
		{StageInvalid, StageBegin, []string{"BeginVertical(7, 0)"}},
		{StageBegin, StageHeader, []string{"BeginHorizontal(header)"}},
		{StageHeader, StageContent, []string{
			"EndHorizontal",
			"AddRectFilled(10,20 110,80)",
			"AddLine(10,82 110,82)",
			"Spring(0, 8)",
			"BeginHorizontal(content)",
		}},
		{StageBegin, StageContent, []string{"BeginHorizontal(content)"}},
		{StageContent, StageInput, []string{"BeginVertical(input, 0)"}},
		{StageContent, StageOutput, []string{"Spring(1, 0)", "BeginVertical(output, 1)"}},
		{StageInput, StageOutput, []string{
			"Spring(1, 0)", "EndVertical",
			"Spring(1, -1)", "BeginVertical(output, 1)",
		}},
		{StageOutput, StageInput, []string{"Spring(1, 0)", "EndVertical", "BeginVertical(input, 0)"}},
		{StageContent, StageEnd, []string{"EndHorizontal", "EndVertical", "AddRect(8,18 112,82)"}},
		{StageOutput, StageEnd, []string{
			"Spring(1, 0)", "EndVertical",
			"EndHorizontal", "EndVertical", "AddRect(8,18 112,82)",
		}},
		{StageEnd, StageInvalid, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			h := newFakeHost()
			h.SetCursorScreenPos(geom.PointF{X: 10, Y: 20})
			m := stageMachine{current: tt.from}

			require.True(t, m.set(h, &Node{ID: 7}, tt.to))
			assert.Equal(t, tt.want, append([]string{}, h.calls...))
			assert.Equal(t, tt.to, m.current)
		})
	}
}

func TestStageFullSequenceBalancesGroups(t *testing.T) {
	h := newFakeHost()
	n := &Node{ID: 1}
	var m stageMachine
	for _, s := range []Stage{StageBegin, StageHeader, StageContent, StageInput, StageOutput, StageInput, StageEnd, StageInvalid} {
		m.set(h, n, s)
	}
	opened := h.count("BeginHorizontal(header)") + h.count("BeginHorizontal(content)")
	assert.Equal(t, opened, h.count("EndHorizontal"))
	opened = h.count("BeginVertical(1, 0)") + h.count("BeginVertical(input, 0)") + h.count("BeginVertical(output, 1)")
	assert.Equal(t, opened, h.count("EndVertical"))
}

func TestStageInOrder(t *testing.T) {
	assert.True(t, inOrder(StageInvalid, StageBegin))
	assert.True(t, inOrder(StageInput, StageOutput))
	assert.True(t, inOrder(StageOutput, StageEnd))
	assert.False(t, inOrder(StageHeader, StageBegin))
	assert.False(t, inOrder(StageInvalid, StageEnd))
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "Header", StageHeader.String())
	assert.Equal(t, "Stage(42)", Stage(42).String())
}
