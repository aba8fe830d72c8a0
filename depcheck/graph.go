package depcheck

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/refaktor/modinfogen/textutils"
)

// Reachable returns all nodes reachable from roots (including roots),
// in breadth-first order.
func Reachable[K comparable](roots []K, edges func(K) []K) []K {
	reachable := map[K]struct{}{}
	var order []K
	nodes := slices.Clone(roots)
	var newNodes []K
	for len(nodes) > 0 {
		for _, node := range nodes {
			if _, ok := reachable[node]; ok {
				continue
			}
			reachable[node] = struct{}{}
			order = append(order, node)
			newNodes = append(newNodes, edges(node)...)
		}
		nodes, newNodes = newNodes, nodes[:0]
	}
	return order
}

// DOTCode generates graphviz DOT code to visualize a graph.
// nodes represents all nodes included in the graph; edges to nodes not
// in the list are dropped. name is the name of the digraph, prelude DOT
// code inserted in the beginning, and nodeAttrs should return a string
// representing a node's attributes (in []).
func DOTCode[K comparable](nodes []K, edges func(K) []K, name, prelude string, nodeAttrs func(K) string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "digraph %v {\n", name)
	if prelude = strings.TrimSpace(prelude); prelude != "" {
		b.WriteString(textutils.IndentString(prelude, "  ", 1))
		b.WriteByte('\n')
	}
	nodeIDs := map[K]int{}
	for id, key := range nodes {
		fmt.Fprintf(&b, "  %v", id)
		if attrs := nodeAttrs(key); attrs != "" {
			b.WriteByte(' ')
			b.WriteString(attrs)
		}
		b.WriteByte('\n')
		nodeIDs[key] = id
	}
	for id, key := range nodes {
		edgs := slices.DeleteFunc(slices.Clone(edges(key)), func(k K) bool {
			_, ok := nodeIDs[k]
			return !ok
		})
		if len(edgs) == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %v -> {", id)
		for i, edg := range edgs {
			if i != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", nodeIDs[edg])
		}
		b.WriteString("}\n")
	}
	b.WriteString("}\n")
	return b.Bytes()
}

// DOT renders the dependency graph of all registered modules. Modules
// are drawn in registration order, followed by unresolved dependencies
// drawn as dashed red nodes.
//
// The graph is named after symbol, converted to snake case.
func (r *Registry) DOT(symbol string) []byte {
	missing := r.Unresolved()
	nodes := append(r.Names(), missing...)
	name := strcase.ToSnake(symbol)
	if name == "" {
		name = "modules"
	}
	return DOTCode(nodes, r.Deps, name, `node [shape=box]`, func(n string) string {
		if r.Has(n) {
			return "[label=" + strconv.Quote(n) + "]"
		}
		return "[label=" + strconv.Quote(n) + " style=dashed color=red]"
	})
}
