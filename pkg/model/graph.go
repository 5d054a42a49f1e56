package model

// Graph holds a fully parsed specification. The parser is its only writer;
// once parsing completes the graph is read-only for every downstream
// component.
type Graph struct {
	Nodes     map[string]*Node
	NodeTypes map[string]*NodeType

	// Communication entities discovered while parsing node types.
	Topics   map[string]*Topic
	Services map[string]*Service

	QoSPolicies    map[string]*QoSPolicy
	TypeAliases    map[string]*TypeAlias
	MessageAliases map[string]*MessageAlias
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes:          make(map[string]*Node),
		NodeTypes:      make(map[string]*NodeType),
		Topics:         make(map[string]*Topic),
		Services:       make(map[string]*Service),
		QoSPolicies:    make(map[string]*QoSPolicy),
		TypeAliases:    make(map[string]*TypeAlias),
		MessageAliases: make(map[string]*MessageAlias),
	}
}

// RegisterTopic records a topic the first time its name is seen. The type
// stored by the first declaration is never overwritten.
func (g *Graph) RegisterTopic(name, typ string) {
	if _, ok := g.Topics[name]; ok {
		return
	}
	g.Topics[name] = &Topic{Name: name, Type: typ}
}

// RegisterService records a service the first time its name is seen, with
// the same first-writer-wins rule as RegisterTopic.
func (g *Graph) RegisterService(name, typ string) {
	if _, ok := g.Services[name]; ok {
		return
	}
	g.Services[name] = &Service{Name: name, Type: typ}
}

// EntityKind classifies a name against the graph's entity maps.
type EntityKind int

const (
	KindTopic EntityKind = iota + 1
	KindService
	KindNode
)

// Kind reports what kind of entity a name refers to. Topics shadow
// services, services shadow nodes; unknown names default to node.
func (g *Graph) Kind(name string) EntityKind {
	if _, ok := g.Topics[name]; ok {
		return KindTopic
	}
	if _, ok := g.Services[name]; ok {
		return KindService
	}
	return KindNode
}
