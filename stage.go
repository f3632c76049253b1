package nodeeditor

import (
	"slices"
	"strconv"

	"github.com/phanxgames/nodeeditor/geom"
)

// Stage is one phase of a node's per-frame layout sequence:
//
//	Invalid → Begin → Header → Content → {Input | Output}* → End → Invalid
type Stage uint8

const (
	StageInvalid Stage = iota // no node open
	StageBegin                // node group opened
	StageHeader               // inside the header row
	StageContent              // inside the body row, between columns
	StageInput                // inside the left (input) column
	StageOutput               // inside the right (output) column
	StageEnd                  // node groups closed
	stageCount
)

var stageNames = [stageCount]string{
	StageInvalid: "Invalid",
	StageBegin:   "Begin",
	StageHeader:  "Header",
	StageContent: "Content",
	StageInput:   "Input",
	StageOutput:  "Output",
	StageEnd:     "End",
}

func (s Stage) String() string {
	if s < stageCount {
		return stageNames[s]
	}
	return "Stage(" + strconv.Itoa(int(s)) + ")"
}

// stageAction is an exit or entry action. from and to describe the transition
// being performed.
type stageAction func(l Layout, n *Node, from, to Stage)

// exitActions run for the stage being left, entryActions for the stage being
// entered. Every group opened by an entry action is closed by the matching
// exit action or by the End entry action.
var (
	exitActions = [stageCount]stageAction{
		StageHeader: exitHeader,
		StageInput:  exitColumn,
		StageOutput: exitColumn,
	}
	entryActions = [stageCount]stageAction{
		StageBegin:   enterBegin,
		StageHeader:  enterHeader,
		StageContent: enterContent,
		StageInput:   enterInput,
		StageOutput:  enterOutput,
		StageEnd:     enterEnd,
	}
)

// stageSuccessors lists the transitions of the visual template. Others are
// still performed but reported as out of order.
var stageSuccessors = [stageCount][]Stage{
	StageInvalid: {StageBegin},
	StageBegin:   {StageHeader, StageContent},
	StageHeader:  {StageContent},
	StageContent: {StageInput, StageOutput, StageEnd},
	StageInput:   {StageOutput, StageEnd},
	StageOutput:  {StageInput, StageEnd},
	StageEnd:     {StageInvalid},
}

func inOrder(from, to Stage) bool {
	return from < stageCount && slices.Contains(stageSuccessors[from], to)
}

// stageMachine tracks the current node's stage.
type stageMachine struct {
	current Stage
}

// set moves to stage, running the exit action of the current stage and the
// entry action of the new one. Requesting the current stage does nothing and
// returns false.
func (m *stageMachine) set(l Layout, n *Node, stage Stage) bool {
	if stage == m.current {
		return false
	}
	from := m.current
	m.current = stage
	if a := exitActions[from]; a != nil {
		a(l, n, from, stage)
	}
	if a := entryActions[stage]; a != nil {
		a(l, n, from, stage)
	}
	return true
}

func exitHeader(l Layout, _ *Node, _, _ Stage) {
	l.EndHorizontal()
	r := l.ItemRect()
	dl := l.DrawList()
	dl.AddRectFilled(r.Min, r.Max, ColorHeaderHighlight)
	dl.AddLine(
		geom.PointF{X: r.Min.X, Y: r.Max.Y + 2},
		geom.PointF{X: r.Max.X, Y: r.Max.Y + 2},
		ColorWhite)
	l.Spring(0, 8)
}

func exitColumn(l Layout, _ *Node, _, _ Stage) {
	l.Spring(1, 0)
	l.EndVertical()
}

func enterBegin(l Layout, n *Node, _, _ Stage) {
	l.BeginVertical(strconv.Itoa(n.ID), 0)
}

func enterHeader(l Layout, _ *Node, _, _ Stage) {
	l.BeginHorizontal("header")
}

func enterContent(l Layout, _ *Node, _, _ Stage) {
	l.BeginHorizontal("content")
}

func enterInput(l Layout, _ *Node, _, _ Stage) {
	l.BeginVertical("input", 0)
}

func enterOutput(l Layout, _ *Node, from, _ Stage) {
	// Default spacing only between two columns.
	if from == StageInput {
		l.Spring(1, DefaultSpacing)
	} else {
		l.Spring(1, 0)
	}
	l.BeginVertical("output", 1)
}

func enterEnd(l Layout, _ *Node, _, _ Stage) {
	l.EndHorizontal()
	l.EndVertical()
	r := l.ItemRect().Expand(2)
	l.DrawList().AddRect(r.Min, r.Max, ColorWhite)
}
