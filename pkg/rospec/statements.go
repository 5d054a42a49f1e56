package rospec

import (
	"regexp"
	"strings"

	"github.com/YuqiYue/rosqa-generator/pkg/model"
)

// Statement-level patterns. The grammar is flat enough that one pattern
// per statement shape is sufficient; anything that matches none of them
// is skipped.
var (
	publishPattern   = regexp.MustCompile(`^publishes\s+to\s+([^\s:;{}]+)\s*:\s*([^;]*);$`)
	subscribePattern = regexp.MustCompile(`^subscribes\s+to\s+([^\s:;{}]+)\s*:\s*([^;]*);$`)
	providePattern   = regexp.MustCompile(`^provides\s+service\s+([^\s:;{}]+)\s*:\s*([^;]*);$`)
	usePattern       = regexp.MustCompile(`^uses\s+service\s+([^\s:;{}]+)\s*:\s*([^;]*);$`)
	consumePattern   = regexp.MustCompile(`^consumes\s+service\s+content\(\s*(\w+)\s*\)\s*:\s*([^;]*);$`)

	paramDefPattern = regexp.MustCompile(
		`^(optional\s+)?param\s+(\w+)\s*:\s*([^=;{]+?)(?:\s*=\s*([^;{]+?))?(?:\s*where\s*\{(.*?)\})?\s*;$`)
	contextDefPattern = regexp.MustCompile(`^context\s+(\w+)\s*:\s*([^;=]+);$`)

	attachmentPattern = regexp.MustCompile(`^@(\w+)\s*\{([^}]*)\}\s*;?$`)
	tfEdgePattern     = regexp.MustCompile(`^(broadcast|listens)\s+([^\s;]+)\s+to\s+([^\s;]+)\s*;$`)

	paramAssignPattern   = regexp.MustCompile(`^param\s+(\w+)\s*=\s*(.+?)\s*;$`)
	contextAssignPattern = regexp.MustCompile(`^context\s+(\w+)\s*=\s*(.+?)\s*;$`)
	remapPattern         = regexp.MustCompile(`^remap\s+([^\s;]+)\s+to\s+([^\s;]+)\s*;$`)

	settingPattern = regexp.MustCompile(`^setting\s+(\w+)\s*=\s*(.+?)\s*;$`)
	fieldPattern   = regexp.MustCompile(`^field\s+(\w+)\s*:\s*([^;]+);$`)
)

func (p *Parser) parseNodeTypeBody(body string, nt *model.NodeType, graph *model.Graph) {
	for _, stmt := range statements(body) {
		switch {
		case p.parseEndpoint(stmt, nt, graph):
		case p.parseConfig(stmt, nt):
		case p.parseAttachmentOrTF(stmt, nt):
		default:
			p.skip("node type "+nt.Name, stmt)
		}
	}
}

// parseEndpoint handles the four explicit communication statements plus
// content-based service consumption.
func (p *Parser) parseEndpoint(stmt string, nt *model.NodeType, graph *model.Graph) bool {
	if m := consumePattern.FindStringSubmatch(stmt); m != nil {
		// Name unknown until instance time, so no service is registered
		nt.AddContentService(model.ContentService{
			Param: m[1],
			Type:  strings.TrimSpace(m[2]),
		})
		return true
	}

	if m := publishPattern.FindStringSubmatch(stmt); m != nil {
		ep := model.Endpoint{Name: m[1], Type: strings.TrimSpace(m[2])}
		nt.AddPublish(ep)
		registerTopic(graph, ep)
		return true
	}
	if m := subscribePattern.FindStringSubmatch(stmt); m != nil {
		ep := model.Endpoint{Name: m[1], Type: strings.TrimSpace(m[2])}
		nt.AddSubscribe(ep)
		registerTopic(graph, ep)
		return true
	}
	if m := providePattern.FindStringSubmatch(stmt); m != nil {
		ep := model.Endpoint{Name: m[1], Type: strings.TrimSpace(m[2])}
		nt.AddProvide(ep)
		registerService(graph, ep)
		return true
	}
	if m := usePattern.FindStringSubmatch(stmt); m != nil {
		ep := model.Endpoint{Name: m[1], Type: strings.TrimSpace(m[2])}
		nt.AddUse(ep)
		registerService(graph, ep)
		return true
	}
	return false
}

func (p *Parser) parseConfig(stmt string, nt *model.NodeType) bool {
	if m := paramDefPattern.FindStringSubmatch(stmt); m != nil {
		def := &model.ParameterDef{
			Name:       m[2],
			Type:       strings.TrimSpace(m[3]),
			Optional:   m[1] != "",
			Constraint: strings.TrimSpace(m[5]),
		}
		if m[4] != "" {
			def.Default = strings.TrimSpace(m[4])
			def.HasDefault = true
		}
		nt.Parameters[def.Name] = def
		return true
	}
	if m := contextDefPattern.FindStringSubmatch(stmt); m != nil {
		nt.Contexts[m[1]] = &model.ContextDef{
			Name: m[1],
			Type: strings.TrimSpace(m[2]),
		}
		return true
	}
	return false
}

func (p *Parser) parseAttachmentOrTF(stmt string, nt *model.NodeType) bool {
	if m := attachmentPattern.FindStringSubmatch(stmt); m != nil {
		key, value := m[1], strings.TrimSpace(m[2])
		if key == "qos" {
			nt.AddQoSAttachment(value)
		} else {
			// Last writer wins per key
			nt.OtherAttachments[key] = value
		}
		return true
	}
	if m := tfEdgePattern.FindStringSubmatch(stmt); m != nil {
		nt.TFEdges = append(nt.TFEdges, model.TFEdge{
			Relation: model.TFRelation(m[1]),
			From:     m[2],
			To:       m[3],
		})
		return true
	}
	return false
}

func (p *Parser) parseNodeInstanceBody(body string, node *model.Node) {
	for _, stmt := range statements(body) {
		if m := paramAssignPattern.FindStringSubmatch(stmt); m != nil {
			node.ParamAssigns[m[1]] = &model.ParameterAssign{Name: m[1], Value: m[2]}
			continue
		}
		if m := contextAssignPattern.FindStringSubmatch(stmt); m != nil {
			node.ContextAssigns[m[1]] = &model.ContextAssign{Name: m[1], Value: m[2]}
			continue
		}
		if m := remapPattern.FindStringSubmatch(stmt); m != nil {
			node.Remaps = append(node.Remaps, model.Remap{From: m[1], To: m[2]})
			continue
		}
		p.skip("node instance "+node.Name, stmt)
	}
}

// registerTopic records a topic for an explicit publish/subscribe unless
// the name is a content placeholder, which is not an endpoint name.
func registerTopic(graph *model.Graph, ep model.Endpoint) {
	if _, isContent := model.ContentParam(ep.Name); isContent {
		return
	}
	graph.RegisterTopic(ep.Name, ep.Type)
}

func registerService(graph *model.Graph, ep model.Endpoint) {
	if _, isContent := model.ContentParam(ep.Name); isContent {
		return
	}
	graph.RegisterService(ep.Name, ep.Type)
}
