package composite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultLeafLabel is the literal a plain leaf renders to.
const DefaultLeafLabel = "Leaf"

// NodeID is a stable handle addressing a node inside a Tree arena.
type NodeID int

// NoParent is the parent handle of a node that is not attached anywhere.
const NoParent NodeID = -1

// Kind tags the node variants. The set is closed: rendering does an
// exhaustive switch over it.
type Kind int

const (
	// KindLeaf is a terminal node with no children.
	KindLeaf Kind = iota
	// KindBranch is a container node holding an ordered child list.
	KindBranch
)

// ErrUnknownNode is returned when a handle does not address a node in the tree.
var ErrUnknownNode = errors.New("unknown node id")

// ErrCycle is returned by Attach when linking the child would make a node
// its own descendant.
var ErrCycle = errors.New("attach would create a cycle")

type node struct {
	kind     Kind
	label    string
	parent   NodeID
	children []NodeID
}

// Tree is an arena of nodes. It owns every node it creates; callers hold
// only NodeID handles. The zero value is ready to use.
type Tree struct {
	nodes []node
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddLeaf creates a detached leaf rendering the standard literal.
func (t *Tree) AddLeaf() NodeID {
	return t.AddLabeledLeaf(DefaultLeafLabel)
}

// AddLabeledLeaf creates a detached leaf rendering the given literal.
func (t *Tree) AddLabeledLeaf(label string) NodeID {
	return t.alloc(node{kind: KindLeaf, label: label, parent: NoParent})
}

// AddBranch creates a detached, empty container node.
func (t *Tree) AddBranch() NodeID {
	return t.alloc(node{kind: KindBranch, parent: NoParent})
}

func (t *Tree) alloc(n node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

// Attach appends child to parent's ordered child list and points the child's
// parent back-reference at parent. A node has at most one parent: attaching
// an already-attached child moves it.
//
// Attaching under a leaf is a no-op, not an error; the first return value
// reports whether the tree actually changed. Attaching a node under itself
// or under one of its own descendants is rejected with ErrCycle.
func (t *Tree) Attach(parent, child NodeID) (bool, error) {
	if !t.valid(parent) || !t.valid(child) {
		return false, ErrUnknownNode
	}
	if t.nodes[parent].kind != KindBranch {
		return false, nil
	}
	for n := parent; n != NoParent; n = t.nodes[n].parent {
		if n == child {
			return false, ErrCycle
		}
	}
	if p := t.nodes[child].parent; p != NoParent {
		t.detach(p, child)
	}
	t.nodes[parent].children = append(t.nodes[parent].children, child)
	t.nodes[child].parent = parent
	return true, nil
}

// Detach removes child from parent's child list and clears the child's
// parent back-reference. Removing an absent child, or detaching from a
// leaf, is a no-op; the return value reports whether the tree changed.
func (t *Tree) Detach(parent, child NodeID) bool {
	if !t.valid(parent) || !t.valid(child) {
		return false
	}
	if t.nodes[parent].kind != KindBranch {
		return false
	}
	return t.detach(parent, child)
}

func (t *Tree) detach(parent, child NodeID) bool {
	kids := t.nodes[parent].children
	for i, c := range kids {
		if c == child {
			t.nodes[parent].children = append(kids[:i], kids[i+1:]...)
			t.nodes[child].parent = NoParent
			return true
		}
	}
	return false
}

// Parent returns the parent handle of id. The second return value is false
// for detached nodes and unknown handles.
func (t *Tree) Parent(id NodeID) (NodeID, bool) {
	if !t.valid(id) || t.nodes[id].parent == NoParent {
		return NoParent, false
	}
	return t.nodes[id].parent, true
}

// IsBranch reports whether id addresses a container node.
func (t *Tree) IsBranch(id NodeID) bool {
	return t.valid(id) && t.nodes[id].kind == KindBranch
}

// Children returns a copy of the ordered child list of id. Leaves and
// unknown handles yield nil.
func (t *Tree) Children(id NodeID) []NodeID {
	if !t.valid(id) || len(t.nodes[id].children) == 0 {
		return nil
	}
	out := make([]NodeID, len(t.nodes[id].children))
	copy(out, t.nodes[id].children)
	return out
}

// Render folds the subtree rooted at id into its textual form: a leaf yields
// its literal, a branch yields "Branch(c1+c2+...+cN)" over its children in
// insertion order. An empty branch yields "Branch()".
func (t *Tree) Render(id NodeID) (string, error) {
	if !t.valid(id) {
		return "", ErrUnknownNode
	}
	return t.render(id), nil
}

func (t *Tree) render(id NodeID) string {
	n := &t.nodes[id]
	switch n.kind {
	case KindLeaf:
		return n.label
	case KindBranch:
		parts := make([]string, 0, len(n.children))
		for _, c := range n.children {
			parts = append(parts, t.render(c))
		}
		return "Branch(" + strings.Join(parts, "+") + ")"
	}
	return ""
}

// Demo builds the demonstration tree from the pattern catalogue and writes
// the transcript to w: a lone leaf first, then a two-branch composite.
func Demo(ctx context.Context, w io.Writer) error {
	t := NewTree()

	simple := t.AddLeaf()
	fmt.Fprintln(w, "Client: I've got a simple component:")
	if err := printResult(w, t, simple); err != nil {
		return err
	}

	branch1 := t.AddBranch()
	if _, err := t.Attach(branch1, t.AddLeaf()); err != nil {
		return err
	}
	if _, err := t.Attach(branch1, t.AddLeaf()); err != nil {
		return err
	}

	branch2 := t.AddBranch()
	if _, err := t.Attach(branch2, t.AddLeaf()); err != nil {
		return err
	}

	root := t.AddBranch()
	if _, err := t.Attach(root, branch1); err != nil {
		return err
	}
	if _, err := t.Attach(root, branch2); err != nil {
		return err
	}

	fmt.Fprintln(w, "Client: Now I've got a composite tree:")
	return printResult(w, t, root)
}

func printResult(w io.Writer, t *Tree, id NodeID) error {
	out, err := t.Render(id)
	if err != nil {
		return fmt.Errorf("render node %d: %w", id, err)
	}
	_, err = fmt.Fprintf(w, "RESULT: %s\n\n", out)
	return err
}
