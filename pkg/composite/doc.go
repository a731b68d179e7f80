/*
Package composite demonstrates the Composite structural pattern: composing
objects into tree structures and working with those structures as if they
were individual objects.

Instead of the classic raw-pointer parent/child web, the tree is stored as an
arena. Nodes are addressed by stable NodeID handles and the structure is kept
as handle relations, so there is nothing to dangle and cycle checks are a
simple walk up the parent chain.

# Key Entities

  - Tree: the arena owning every node.
  - NodeID: a stable handle into the arena.
  - Kind: the closed set of node variants (KindLeaf, KindBranch).

Rendering a branch folds its children in insertion order:

	t := composite.NewTree()
	branch := t.AddBranch()
	t.Attach(branch, t.AddLeaf())
	t.Attach(branch, t.AddLeaf())
	out, _ := t.Render(branch) // "Branch(Leaf+Leaf)"
*/
package composite
