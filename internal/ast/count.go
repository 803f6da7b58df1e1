package ast

// Count returns the number of runtime nodes under root: statements,
// expressions, patterns and class members that survive type erasure.
// Type-only subtrees, ambient declarations, assertion wrappers, parameter
// properties and empty statements are not counted, although the runtime
// children of wrappers are.
func Count(root Node) int {
	total := 0
	Inspect(root, func(n Node) bool {
		k := n.Kind()
		switch {
		case k.TypeOnly() || IsAmbient(n):
			return false
		case k.Assertion(), k == KindParameterProperty, k == KindEmptyStatement, k == KindProgram:
			return true
		}
		total++
		return true
	})
	return total
}

// TypeOnlyNodes returns the type-only nodes reachable from root in pre-order,
// without descending into them.
func TypeOnlyNodes(root Node) []Node {
	var found []Node
	Inspect(root, func(n Node) bool {
		if n.Kind().TypeOnly() {
			found = append(found, n)
			return false
		}
		return true
	})
	return found
}
