package anim

import (
	"github.com/milk9111/parkour/common"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is the sampled output of a blend tree. Only the root translation is
// represented here.
type Pose struct {
	Root   r3.Vec
	Clip   string
	TimeMs float64
}

// Node is one node of an evaluation tree. SetParam takes a value in [0, 1]:
// the playback fraction for clip nodes, the blend weight for lerp nodes.
type Node interface {
	SetParam(t float64)
	Evaluate() Pose
}

// ClipNode samples a single clip.
type ClipNode struct {
	clip  *Clip
	param float64
}

func NewClipNode(clip *Clip) *ClipNode {
	return &ClipNode{clip: clip}
}

func (n *ClipNode) SetParam(t float64) { n.param = t }

func (n *ClipNode) Param() float64 { return n.param }

func (n *ClipNode) Evaluate() Pose {
	var pose Pose
	if n.clip != nil {
		n.clip.Sample(n.param*n.clip.EndMs(), &pose)
	}
	return pose
}

// LerpNode blends two children. Weight 0 is fully A, 1 is fully B.
type LerpNode struct {
	A, B   Node
	weight float64
}

func NewLerpNode(a, b Node) *LerpNode {
	return &LerpNode{A: a, B: b}
}

func (n *LerpNode) SetParam(t float64) { n.weight = common.Clamp(t, 0, 1) }

func (n *LerpNode) Weight() float64 { return n.weight }

func (n *LerpNode) Evaluate() Pose {
	var a, b Pose
	if n.A != nil {
		a = n.A.Evaluate()
	}
	if n.B == nil {
		return a
	}
	b = n.B.Evaluate()
	if n.A == nil {
		return b
	}
	pose := b
	pose.Root = common.LerpVec(a.Root, b.Root, n.weight)
	return pose
}

// Tree is the parent indirection the renderer holds on to. The controller
// repoints it between a single state's node and a crossfade node, so the
// renderer's reference stays valid across mode switches.
type Tree struct {
	root Node
}

func (t *Tree) Point(n Node) { t.root = n }

func (t *Tree) Root() Node { return t.root }

func (t *Tree) Evaluate() Pose {
	if t.root == nil {
		return Pose{}
	}
	return t.root.Evaluate()
}
