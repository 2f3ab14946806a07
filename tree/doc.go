// Package tree implements the decision-tree model: a tagged-variant node
// arena, classification, the normalized decision function, and the
// reachable-leaf enumeration the verifier's search drives against.
//
// A Tree owns its nodes in a flat arena (types.go); NodeID is an
// index into that arena, not a pointer, so a node's "parent" is whatever
// Split referenced it — there is no parent back-pointer to keep in sync,
// and a Tree is trivially copyable by value semantics at the slice level.
// DecisionTreeNode is modeled as a closed three-arm tagged union (Leaf,
// LogLeaf, Split) rather than an interface with virtual dispatch: the arm
// set never grows, so a switch on Kind at each use site is both simpler and
// faster than a vtable indirection.
package tree
