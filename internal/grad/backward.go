package grad

// Backward computes ∂v/∂node for every node reachable from v along
// operand edges, accumulating the result in each node's gradient.
//
// The pass first builds a topological order of the reachable subgraph
// (every node placed after all of its operands, each shared node placed
// exactly once), resets every gradient in that order to zero, seeds
// v's gradient with 1 and then walks the order in reverse, invoking
// each node's operation backward rule and summing the returned
// contributions into the operands' gradients.
//
// Calling Backward again on the same root yields identical gradients.
// A later Backward on any overlapping subgraph resets shared ancestors'
// gradients, so results are valid only until the next pass.
//
// Cycles cannot occur: a node's operands always exist before the node
// is built, so the operand relation is acyclic by construction and the
// traversal performs no cycle detection.
func (v *Value) Backward() {
	order := topoSort(v)

	for _, n := range order {
		n.grad = 0
	}
	v.grad = 1 // seed: d(v)/d(v) = 1

	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		if n.op == OpNone || len(n.operands) == 0 {
			continue
		}
		in := make([]float64, len(n.operands))
		for j, o := range n.operands {
			in[j] = o.val
		}
		contribs := n.op.rule().backward(n.grad, in...)
		for j, o := range n.operands {
			o.grad += contribs[j]
		}
	}
}

// topoSort returns the post-order of a depth-first traversal from root,
// deduplicated by node identity. The traversal keeps an explicit stack
// so that graph depth is not bounded by goroutine stack size.
func topoSort(root *Value) []*Value {
	type frame struct {
		node *Value
		next int // index of the next operand to visit
	}

	visited := map[*Value]struct{}{root: {}}
	order := make([]*Value, 0, 64)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.operands) {
			child := top.node.operands[top.next]
			top.next++
			if _, ok := visited[child]; !ok {
				visited[child] = struct{}{}
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}
	return order
}

// Walk calls fn exactly once for every node reachable from root along
// operand edges, deduplicating by node identity. Operands are visited
// before their consumers. Renderers use Walk to enumerate a graph
// without further access to its internals.
func Walk(root *Value, fn func(*Value)) {
	for _, n := range topoSort(root) {
		fn(n)
	}
}
