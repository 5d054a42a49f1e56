package model

// Topic represents a publish/subscribe channel.
// Type is filled from the first declaration seen and never overwritten.
type Topic struct {
	Name string
	Type string // empty when no declaration carried a type
}

// Service represents a request/response endpoint.
type Service struct {
	Name string
	Type string
}

// ParameterDef is a parameter declared on a node type.
type ParameterDef struct {
	Name       string
	Type       string
	Optional   bool
	Default    string // raw literal, empty when absent
	HasDefault bool
	Constraint string // free-form predicate text, stored verbatim
}

// ContextDef is a context declared on a node type.
type ContextDef struct {
	Name string
	Type string
}

// ParameterAssign binds a value to a parameter inside a node instance.
// The value is the raw literal from the specification, commonly quoted.
type ParameterAssign struct {
	Name  string
	Value string
}

// ContextAssign binds a value to a context inside a node instance.
type ContextAssign struct {
	Name  string
	Value string
}

// Remap is an instance-level renaming rule: a resolved endpoint name
// exactly equal to From is rewritten to To.
type Remap struct {
	From string
	To   string
}

// TFRelation is the direction of a coordinate-frame transform edge.
type TFRelation string

const (
	TFBroadcast TFRelation = "broadcast"
	TFListens   TFRelation = "listens"
)

// TFEdge is a coordinate-frame transform relation declared on a node type.
type TFEdge struct {
	Relation TFRelation
	From     string
	To       string
}

// Endpoint is a (name, type) pair declared on a node type for one
// communication direction. Name may be a content(<param>) placeholder.
type Endpoint struct {
	Name string
	Type string
}

// ContentService is a service endpoint whose name is supplied at instance
// time through a parameter assignment. Only the type is known here.
type ContentService struct {
	Param string
	Type  string
}

// QoSPolicy is a named quality-of-service policy instance.
type QoSPolicy struct {
	Name     string
	Kind     string
	Settings map[string]string
}

// NewQoSPolicy creates a policy with an empty settings map.
func NewQoSPolicy(name, kind string) *QoSPolicy {
	return &QoSPolicy{
		Name:     name,
		Kind:     kind,
		Settings: make(map[string]string),
	}
}

// TypeAlias is a named alias for a type expression.
type TypeAlias struct {
	Name       string
	Definition string
}

// MessageField is one field of a message alias.
type MessageField struct {
	Name string
	Type string
}

// MessageAlias is a named message overlay on a base message type.
type MessageAlias struct {
	Name     string
	BaseType string
	Fields   []MessageField
}
