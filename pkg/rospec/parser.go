package rospec

import (
	"regexp"
	"strings"

	"github.com/YuqiYue/rosqa-generator/pkg/logging"
	"github.com/YuqiYue/rosqa-generator/pkg/model"
)

// Top-level construct headers. Bodies are extracted with blockAt rather
// than a non-greedy match, so nested brace pairs inside a body cannot cut
// a block short.
var (
	nodeTypePattern      = regexp.MustCompile(`\bnode\s+type\s+(\w+)\s*\{`)
	systemPattern        = regexp.MustCompile(`\bsystem\s*\{`)
	policyPattern        = regexp.MustCompile(`\bpolicy\s+instance\s+(\w+)\s*:\s*([^\s{]+)\s*\{`)
	typeAliasPattern     = regexp.MustCompile(`\btype\s+alias\s+(\w+)\s*:\s*([^;]+);`)
	messageAliasPattern  = regexp.MustCompile(`\bmessage\s+alias\s+(\w+)\s*:\s*([^\s{]+)\s*\{`)
	nodeInstancePattern  = regexp.MustCompile(`\bnode\s+instance\s+(\w+)\s*:\s*(\w+)\s*\{`)
	trailingWherePattern = regexp.MustCompile(`^\s*where\s*\{`)
)

// Parser turns raw specification text into a graph. It never fails on an
// unrecognized or malformed statement; a statement only contributes to the
// graph when it matches one of the known patterns.
type Parser struct {
	logger logging.Logger
}

// NewParser creates a parser that reports skipped statements through the
// given logger.
func NewParser(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Parser{logger: logger.With(logging.Component("parser"))}
}

// Parse parses specification text with diagnostics discarded.
func Parse(text string) (*model.Graph, error) {
	return NewParser(nil).Parse(text)
}

// Parse builds a graph from specification text. It returns ErrNoStructure
// only when the text contains neither a node-type block nor a system
// block; an absent system block alone produces an empty instance set.
func (p *Parser) Parse(text string) (*model.Graph, error) {
	text = stripComments(text)
	graph := model.NewGraph()

	sawNodeType := p.parseNodeTypes(text, graph)
	p.parsePolicies(text, graph)
	p.parseTypeAliases(text, graph)
	p.parseMessageAliases(text, graph)

	// Node types must be fully parsed before instances resolve against them
	sawSystem := p.parseSystem(text, graph)

	if !sawNodeType && !sawSystem {
		return nil, ErrNoStructure
	}

	return graph, nil
}

func (p *Parser) parseNodeTypes(text string, graph *model.Graph) bool {
	found := false
	for _, loc := range nodeTypePattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		body, end, ok := blockAt(text, loc[1]-1)
		if !ok {
			continue
		}
		found = true

		nt := model.NewNodeType(name)
		p.parseNodeTypeBody(body, nt, graph)

		// A where { ... } directly after the body is the type's
		// where-clause, captured verbatim.
		if m := trailingWherePattern.FindStringIndex(text[end:]); m != nil {
			clause, _, ok := blockAt(text, end+m[1]-1)
			if ok {
				nt.WhereClause = strings.TrimSpace(clause)
			}
		}

		// Later declarations of the same type name replace earlier ones
		graph.NodeTypes[name] = nt
	}
	return found
}

func (p *Parser) parsePolicies(text string, graph *model.Graph) {
	for _, loc := range policyPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		kind := text[loc[4]:loc[5]]
		body, _, ok := blockAt(text, loc[1]-1)
		if !ok {
			continue
		}

		policy := model.NewQoSPolicy(name, kind)
		for _, stmt := range statements(body) {
			if m := settingPattern.FindStringSubmatch(stmt); m != nil {
				policy.Settings[m[1]] = strings.TrimSpace(m[2])
			} else {
				p.skip("policy setting", stmt)
			}
		}
		graph.QoSPolicies[name] = policy
	}
}

func (p *Parser) parseTypeAliases(text string, graph *model.Graph) {
	for _, m := range typeAliasPattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		graph.TypeAliases[name] = &model.TypeAlias{
			Name:       name,
			Definition: strings.TrimSpace(m[2]),
		}
	}
}

func (p *Parser) parseMessageAliases(text string, graph *model.Graph) {
	for _, loc := range messageAliasPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[loc[2]:loc[3]]
		baseType := text[loc[4]:loc[5]]
		body, _, ok := blockAt(text, loc[1]-1)
		if !ok {
			continue
		}

		alias := &model.MessageAlias{Name: name, BaseType: baseType}
		for _, stmt := range statements(body) {
			if m := fieldPattern.FindStringSubmatch(stmt); m != nil {
				alias.Fields = append(alias.Fields, model.MessageField{
					Name: m[1],
					Type: strings.TrimSpace(m[2]),
				})
			} else {
				p.skip("message field", stmt)
			}
		}
		graph.MessageAliases[name] = alias
	}
}

func (p *Parser) parseSystem(text string, graph *model.Graph) bool {
	loc := systemPattern.FindStringIndex(text)
	if loc == nil {
		return false
	}

	body, _, ok := blockAt(text, loc[1]-1)
	if !ok {
		return false
	}

	for _, iloc := range nodeInstancePattern.FindAllStringSubmatchIndex(body, -1) {
		instName := body[iloc[2]:iloc[3]]
		typeName := body[iloc[4]:iloc[5]]

		instBody, _, ok := blockAt(body, iloc[1]-1)
		if !ok {
			continue
		}

		nodeType, known := graph.NodeTypes[typeName]
		if !known {
			// Instances of unparsed types are dropped entirely rather
			// than built with a nil type.
			p.logger.Warn("dropping instance of unknown node type",
				logging.NodeName(instName), logging.NodeTypeName(typeName))
			continue
		}

		node := model.NewNode(instName, nodeType)
		p.parseNodeInstanceBody(instBody, node)
		graph.Nodes[instName] = node
	}

	return true
}

// skip records a statement that matched no pattern. The contract is
// best-effort: unknown constructs never abort the parse.
func (p *Parser) skip(context, stmt string) {
	p.logger.Debug("skipping unrecognized statement",
		logging.String("context", context), logging.Statement(stmt))
}
