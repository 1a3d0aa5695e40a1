// Package nested provides structure-preserving operations over recursive
// trees of scalars.
//
// A Tree[T] is either a leaf holding a T or a node holding an ordered list
// of sub-trees. Nodes carry a NodeKind (List or Tuple) so that mapping a
// tree keeps the concrete container kind at every level.
//
// ✨ Operations:
//
//   - Flatten       - depth-first, left-to-right leaves.
//   - EnumerateFlat - same shape, each leaf replaced by its flat position.
//   - Unflatten     - inverse of the Flatten/EnumerateFlat pair.
//   - DeepRemove    - first-match removal of scalars at every level.
//   - DeepMap       - apply a function to every leaf, keeping the shape.
//
// The round-trip law holds for every tree t:
//
//	u, _ := nested.Unflatten(nested.Flatten(t), nested.EnumerateFlat(t))
//	nested.Equal(u, t) == true
//
// Trees are immutable values. Constructors copy their children, so a cycle
// cannot be built through this API; decoding from YAML enforces MaxDepth.
// Every function is safe for concurrent use on shared trees.
//
// Complexity: all operations are O(number of nodes and leaves).
package nested
