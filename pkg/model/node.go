package model

// NodeType is a reusable template describing a class of component and its
// declared communication and configuration surface.
type NodeType struct {
	Name string

	// Communication declared at the type level. Endpoint sets deduplicate
	// on (name, type) equality; declaration order is not significant.
	Publishes  []Endpoint
	Subscribes []Endpoint
	Provides   []Endpoint
	Uses       []Endpoint

	// Service endpoints whose names arrive via parameter assignment.
	ConsumesContentServices []ContentService

	Parameters map[string]*ParameterDef
	Contexts   map[string]*ContextDef

	// Attachments: @qos{...} tags and everything else keyed by name.
	QoSAttachments   []string
	OtherAttachments map[string]string

	TFEdges []TFEdge

	// Raw text of a trailing where { ... } block, empty when absent.
	WhereClause string
}

// NewNodeType creates a node type with empty collections.
func NewNodeType(name string) *NodeType {
	return &NodeType{
		Name:             name,
		Parameters:       make(map[string]*ParameterDef),
		Contexts:         make(map[string]*ContextDef),
		OtherAttachments: make(map[string]string),
	}
}

// AddPublish records a published endpoint, deduplicating on equality.
func (nt *NodeType) AddPublish(ep Endpoint) {
	nt.Publishes = addEndpoint(nt.Publishes, ep)
}

// AddSubscribe records a subscribed endpoint, deduplicating on equality.
func (nt *NodeType) AddSubscribe(ep Endpoint) {
	nt.Subscribes = addEndpoint(nt.Subscribes, ep)
}

// AddProvide records a provided service endpoint, deduplicating on equality.
func (nt *NodeType) AddProvide(ep Endpoint) {
	nt.Provides = addEndpoint(nt.Provides, ep)
}

// AddUse records a used service endpoint, deduplicating on equality.
func (nt *NodeType) AddUse(ep Endpoint) {
	nt.Uses = addEndpoint(nt.Uses, ep)
}

// AddContentService records a content-indirect service consumption,
// deduplicating on (param, type) equality.
func (nt *NodeType) AddContentService(cs ContentService) {
	for _, have := range nt.ConsumesContentServices {
		if have == cs {
			return
		}
	}
	nt.ConsumesContentServices = append(nt.ConsumesContentServices, cs)
}

// AddQoSAttachment records a @qos{...} tag, deduplicating on name.
func (nt *NodeType) AddQoSAttachment(name string) {
	for _, have := range nt.QoSAttachments {
		if have == name {
			return
		}
	}
	nt.QoSAttachments = append(nt.QoSAttachments, name)
}

func addEndpoint(set []Endpoint, ep Endpoint) []Endpoint {
	for _, have := range set {
		if have == ep {
			return set
		}
	}
	return append(set, ep)
}

// Node is one instantiation of a node type inside the system. It does not
// copy its type's communication sets; effective bindings are always derived
// from the NodeType reference plus the instance's assignments and remaps.
type Node struct {
	Name     string
	NodeType *NodeType

	ParamAssigns   map[string]*ParameterAssign
	ContextAssigns map[string]*ContextAssign

	// Remaps keep declaration order; the first matching rule wins.
	Remaps []Remap
}

// NewNode creates a node instance bound to an already-parsed node type.
func NewNode(name string, nodeType *NodeType) *Node {
	return &Node{
		Name:           name,
		NodeType:       nodeType,
		ParamAssigns:   make(map[string]*ParameterAssign),
		ContextAssigns: make(map[string]*ContextAssign),
	}
}
