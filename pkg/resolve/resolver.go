// Package resolve computes effective bindings: the concrete endpoint names
// a node instance actually publishes, subscribes to, provides, or uses
// once content indirection and remaps are applied.
//
// Resolution order is load-bearing: type declaration, then content
// substitution from the instance's parameter assignments, then remaps.
// Remaps are written against real endpoint names, so they must see the
// resolved name, never the placeholder.
package resolve

import (
	"sort"

	"github.com/YuqiYue/rosqa-generator/pkg/model"
)

// NameSet is a set of endpoint names.
type NameSet map[string]struct{}

// Contains reports whether the set holds name.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Intersects reports whether the two sets share any name. An unresolved
// content placeholder compares equal only to itself, and a placeholder on
// both sides still refers to unknown endpoints, so placeholders are never
// counted as a shared name.
func (s NameSet) Intersects(other NameSet) bool {
	for name := range s {
		if _, isContent := model.ContentParam(name); isContent {
			continue
		}
		if other.Contains(name) {
			return true
		}
	}
	return false
}

// Sorted returns the names in alphabetical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Publishes returns the effective topic names node publishes to.
func Publishes(node *model.Node) NameSet {
	return resolveEndpoints(node, node.NodeType.Publishes)
}

// Subscribes returns the effective topic names node subscribes to.
func Subscribes(node *model.Node) NameSet {
	return resolveEndpoints(node, node.NodeType.Subscribes)
}

// Provides returns the effective service names node provides.
func Provides(node *model.Node) NameSet {
	return resolveEndpoints(node, node.NodeType.Provides)
}

// Uses returns the effective service names node uses as a client. Beyond
// the explicitly declared endpoints this includes content-based service
// consumption: a declared consumes-content entry resolves through the
// instance's parameter assignment, or stays a literal content(<param>)
// placeholder when the parameter is unassigned.
func Uses(node *model.Node) NameSet {
	names := resolveEndpoints(node, node.NodeType.Uses)
	for _, cs := range node.NodeType.ConsumesContentServices {
		if assign, ok := node.ParamAssigns[cs.Param]; ok {
			name := model.StripQuotes(assign.Value)
			names[applyRemaps(node, name)] = struct{}{}
		} else {
			names[model.ContentPlaceholder(cs.Param)] = struct{}{}
		}
	}
	return names
}

func resolveEndpoints(node *model.Node, declared []model.Endpoint) NameSet {
	names := make(NameSet, len(declared))
	for _, ep := range declared {
		name := resolveContent(node, ep.Name)
		names[applyRemaps(node, name)] = struct{}{}
	}
	return names
}

// resolveContent substitutes a content(<param>) name with the instance's
// assignment for that parameter. Unassigned parameters keep the literal
// placeholder, which never matches a real endpoint.
func resolveContent(node *model.Node, name string) string {
	param, ok := model.ContentParam(name)
	if !ok {
		return name
	}
	assign, ok := node.ParamAssigns[param]
	if !ok {
		return name
	}
	return model.StripQuotes(assign.Value)
}

// applyRemaps rewrites a resolved name through the instance's remap rules.
// The first rule whose from-name matches wins.
func applyRemaps(node *model.Node, name string) string {
	for _, r := range node.Remaps {
		if r.From == name {
			return r.To
		}
	}
	return name
}
