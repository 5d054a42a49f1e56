package questions

import "fmt"

// nodeTypeQuestions covers the declared surface of every node type:
// parameters, contexts, attachments, raw communication sets, content
// consumption, TF relations, and the where-clause.
func (g *Generator) nodeTypeQuestions() []Question {
	var qs []Question

	for _, typeName := range sortedKeys(g.graph.NodeTypes) {
		nt := g.graph.NodeTypes[typeName]

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryNodeType,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is there a ROSpec node type called %s?", nt.Name),
			Answer:   answerYes,
		})

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryParameter,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which parameters are defined in node type %s?", nt.Name),
			Answer:   commaList(sortedKeys(nt.Parameters)),
		})

		for _, paramName := range sortedKeys(nt.Parameters) {
			p := nt.Parameters[paramName]
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryParameter,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the type of parameter %s in node type %s?", p.Name, nt.Name),
				Answer:   orUnknown(p.Type),
			})
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryParameter,
				Type:     AnswerBool,
				Question: fmt.Sprintf("Is parameter %s optional in node type %s?", p.Name, nt.Name),
				Answer:   yesNo(p.Optional),
			})
			defaultAnswer := answerNone
			if p.HasDefault {
				defaultAnswer = orNone(p.Default)
			}
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryParameter,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the default value of parameter %s in node type %s?", p.Name, nt.Name),
				Answer:   defaultAnswer,
			})
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryWhere,
				Type:     AnswerBool,
				Question: fmt.Sprintf("Does parameter %s in node type %s have a constraint?", p.Name, nt.Name),
				Answer:   yesNo(p.Constraint != ""),
			})
			if p.Constraint != "" {
				qs = append(qs, Question{
					Level:    LevelRelation,
					Category: CategoryWhere,
					Type:     AnswerOpen,
					Question: fmt.Sprintf("What is the constraint of parameter %s in node type %s?", p.Name, nt.Name),
					Answer:   orNone(p.Constraint),
				})
			}
		}

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryContext,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which contexts are defined in node type %s?", nt.Name),
			Answer:   commaList(sortedKeys(nt.Contexts)),
		})
		for _, ctxName := range sortedKeys(nt.Contexts) {
			c := nt.Contexts[ctxName]
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryContext,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the type of context %s in node type %s?", c.Name, nt.Name),
				Answer:   orUnknown(c.Type),
			})
		}

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryAttachment,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which QoS policy tags are attached in node type %s?", nt.Name),
			Answer:   commaList(nt.QoSAttachments),
		})
		otherAttachments := make([]string, 0, len(nt.OtherAttachments))
		for _, key := range sortedKeys(nt.OtherAttachments) {
			otherAttachments = append(otherAttachments, fmt.Sprintf("%s=%s", key, nt.OtherAttachments[key]))
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryAttachment,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which non-QoS attachments are declared in node type %s?", nt.Name),
			Answer:   commaList(otherAttachments),
		})
		for _, key := range sortedKeys(nt.OtherAttachments) {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryAttachment,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the value of attachment @%s in node type %s?", key, nt.Name),
				Answer:   orNone(nt.OtherAttachments[key]),
			})
		}

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPublish,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which topics can node type %s publish to (as declared)?", nt.Name),
			Answer:   commaList(endpointNames(nt.Publishes)),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategorySubscribe,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which topics can node type %s subscribe to (as declared)?", nt.Name),
			Answer:   commaList(endpointNames(nt.Subscribes)),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryService,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which services can node type %s provide (as declared)?", nt.Name),
			Answer:   commaList(endpointNames(nt.Provides)),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryClient,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which services can node type %s use (as declared)?", nt.Name),
			Answer:   commaList(endpointNames(nt.Uses)),
		})

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryWhere,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Does node type %s declare a where-clause?", nt.Name),
			Answer:   yesNo(nt.WhereClause != ""),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryWhere,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the where-clause of node type %s?", nt.Name),
			Answer:   orNone(nt.WhereClause),
		})

		for _, cs := range nt.ConsumesContentServices {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryContentService,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("Which parameter provides the consumed service name via content(...) in node type %s?", nt.Name),
				Answer:   orUnknown(cs.Param),
			})
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryContentService,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the declared type of the consumed content-based service in node type %s?", nt.Name),
				Answer:   orUnknown(cs.Type),
			})
		}

		tfRelations := make([]string, 0, len(nt.TFEdges))
		for _, e := range nt.TFEdges {
			tfRelations = append(tfRelations, fmt.Sprintf("%s %s->%s", e.Relation, e.From, e.To))
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryTF,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What TF relations are declared in node type %s?", nt.Name),
			Answer:   commaList(tfRelations),
		})
	}

	return qs
}
