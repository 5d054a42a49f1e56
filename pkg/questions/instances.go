package questions

import (
	"fmt"

	"github.com/YuqiYue/rosqa-generator/pkg/model"
	"github.com/YuqiYue/rosqa-generator/pkg/resolve"
)

// nodeInstanceQuestions covers every node instance: its type, assignments,
// remaps, effective bindings, and resolved content-service consumption.
func (g *Generator) nodeInstanceQuestions() []Question {
	var qs []Question

	for _, nodeName := range sortedKeys(g.graph.Nodes) {
		n := g.graph.Nodes[nodeName]

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryNodeInstance,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the node type of node instance %s?", n.Name),
			Answer:   orUnknown(n.NodeType.Name),
		})

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryParameterAssign,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which parameters are assigned in node instance %s?", n.Name),
			Answer:   commaList(sortedKeys(n.ParamAssigns)),
		})
		for _, name := range sortedKeys(n.ParamAssigns) {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryParameterAssign,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What value is assigned to parameter %s in node instance %s?", name, n.Name),
				Answer:   orUnknown(model.StripQuotes(n.ParamAssigns[name].Value)),
			})
		}

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContextAssign,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which contexts are assigned in node instance %s?", n.Name),
			Answer:   commaList(sortedKeys(n.ContextAssigns)),
		})
		for _, name := range sortedKeys(n.ContextAssigns) {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryContextAssign,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What value is assigned to context %s in node instance %s?", name, n.Name),
				Answer:   orUnknown(model.StripQuotes(n.ContextAssigns[name].Value)),
			})
		}

		remaps := make([]string, 0, len(n.Remaps))
		for _, r := range n.Remaps {
			remaps = append(remaps, fmt.Sprintf("%s->%s", r.From, r.To))
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryRemap,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which remaps are declared in node instance %s?", n.Name),
			Answer:   commaList(remaps),
		})
		for _, r := range n.Remaps {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryRemap,
				Type:     AnswerBool,
				Question: fmt.Sprintf("Does node instance %s remap %s to %s?", n.Name, r.From, r.To),
				Answer:   answerYes,
			})
		}

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPublish,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("To which topics can node %s publish (after resolving content(...) and remaps)?", n.Name),
			Answer:   commaList(resolve.Publishes(n).Sorted()),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategorySubscribe,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("To which topics is node %s subscribed (after resolving content(...) and remaps)?", n.Name),
			Answer:   commaList(resolve.Subscribes(n).Sorted()),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryService,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which services does node %s provide (after resolving content(...) and remaps)?", n.Name),
			Answer:   commaList(resolve.Provides(n).Sorted()),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryClient,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which services does node %s use as a client (after resolving content(...) and remaps)?", n.Name),
			Answer:   commaList(resolve.Uses(n).Sorted()),
		})

		qs = append(qs, g.contentServiceQuestions(n)...)
	}

	return qs
}

// contentServiceQuestions asks about content-based service consumption at
// the instance level, where the indirection either resolves through a
// parameter assignment or stays open.
func (g *Generator) contentServiceQuestions(n *model.Node) []Question {
	var qs []Question

	for _, cs := range n.NodeType.ConsumesContentServices {
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContentService,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Does node %s consume a service whose name is provided by parameter %s?", n.Name, cs.Param),
			Answer:   answerYes,
		})

		assign, assigned := n.ParamAssigns[cs.Param]
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContentService,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is parameter %s assigned in node instance %s for resolving the consumed service name?", cs.Param, n.Name),
			Answer:   yesNo(assigned),
		})
		if !assigned {
			continue
		}

		resolved := model.StripQuotes(assign.Value)
		for _, r := range n.Remaps {
			if r.From == resolved {
				resolved = r.To
				break
			}
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContentService,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the resolved consumed service name for node %s (via parameter %s)?", n.Name, cs.Param),
			Answer:   orUnknown(resolved),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContentService,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the declared type of the consumed service resolved via parameter %s in node %s?", cs.Param, n.Name),
			Answer:   orUnknown(cs.Type),
		})
	}

	return qs
}
