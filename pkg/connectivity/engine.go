// Package connectivity answers node-to-node reachability queries over the
// resolved communication graph. Topic bindings produce directed
// publisher-to-subscriber edges; service bindings produce edges in both
// directions because a response flows back to the caller.
package connectivity

import (
	"github.com/YuqiYue/rosqa-generator/pkg/model"
	"github.com/YuqiYue/rosqa-generator/pkg/resolve"
)

// Engine runs reachability queries against an immutable graph. The
// adjacency relation is rebuilt per query; specifications are small enough
// that the quadratic construction is not worth caching, and rebuilding
// keeps the engine trivially consistent with the graph.
type Engine struct {
	graph *model.Graph
}

// NewEngine creates an engine over a fully parsed graph. The graph must
// not be mutated while the engine is in use; independent queries are safe
// to run concurrently.
func NewEngine(graph *model.Graph) *Engine {
	return &Engine{graph: graph}
}

// Adjacency builds the node-to-node edge relation from effective bindings.
func (e *Engine) Adjacency() map[string]map[string]bool {
	adjacency := make(map[string]map[string]bool, len(e.graph.Nodes))
	nodes := make([]*model.Node, 0, len(e.graph.Nodes))
	for name, node := range e.graph.Nodes {
		adjacency[name] = make(map[string]bool)
		nodes = append(nodes, node)
	}

	// Topic edges: publisher -> subscriber
	for _, src := range nodes {
		published := resolve.Publishes(src)
		if len(published) == 0 {
			continue
		}
		for _, dst := range nodes {
			if src.Name == dst.Name {
				continue
			}
			if published.Intersects(resolve.Subscribes(dst)) {
				adjacency[src.Name][dst.Name] = true
			}
		}
	}

	// Service edges: client <-> server
	for _, client := range nodes {
		used := resolve.Uses(client)
		if len(used) == 0 {
			continue
		}
		for _, server := range nodes {
			if client.Name == server.Name {
				continue
			}
			if used.Intersects(resolve.Provides(server)) {
				adjacency[client.Name][server.Name] = true
				adjacency[server.Name][client.Name] = true
			}
		}
	}

	return adjacency
}

// Reachable reports whether a communication path exists from src to dst.
// A node never reaches itself: Reachable(x, x) is false for every x.
func (e *Engine) Reachable(src, dst string) bool {
	if src == dst {
		return false
	}

	adjacency := e.Adjacency()

	visited := map[string]bool{src: true}
	queue := []string{src}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for next := range adjacency[current] {
			if next == dst {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return false
}
