package questions

import "fmt"

// policyQuestions covers QoS policy instances and their settings.
func (g *Generator) policyQuestions() []Question {
	var qs []Question

	for _, name := range sortedKeys(g.graph.QoSPolicies) {
		p := g.graph.QoSPolicies[name]

		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPolicy,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is there a policy instance called %s?", p.Name),
			Answer:   answerYes,
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPolicy,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the kind of policy instance %s?", p.Name),
			Answer:   orUnknown(p.Kind),
		})

		settings := make([]string, 0, len(p.Settings))
		for _, key := range sortedKeys(p.Settings) {
			settings = append(settings, fmt.Sprintf("%s=%s", key, p.Settings[key]))
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPolicy,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What settings are defined in policy instance %s?", p.Name),
			Answer:   commaList(settings),
		})
		for _, key := range sortedKeys(p.Settings) {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryPolicy,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the value of setting %s in policy instance %s?", key, p.Name),
				Answer:   orUnknown(p.Settings[key]),
			})
		}
	}

	return qs
}

// aliasQuestions covers type aliases and message aliases with their fields.
func (g *Generator) aliasQuestions() []Question {
	var qs []Question

	for _, name := range sortedKeys(g.graph.TypeAliases) {
		a := g.graph.TypeAliases[name]
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryTypeAlias,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is there a type alias called %s?", a.Name),
			Answer:   answerYes,
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryTypeAlias,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the definition of type alias %s?", a.Name),
			Answer:   orUnknown(a.Definition),
		})
	}

	for _, name := range sortedKeys(g.graph.MessageAliases) {
		m := g.graph.MessageAliases[name]
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryMessageAlias,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is there a message alias called %s?", m.Name),
			Answer:   answerYes,
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryMessageAlias,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the base message type of message alias %s?", m.Name),
			Answer:   orUnknown(m.BaseType),
		})

		fieldNames := make([]string, 0, len(m.Fields))
		for _, f := range m.Fields {
			fieldNames = append(fieldNames, f.Name)
		}
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryMessageField,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which fields are defined in message alias %s?", m.Name),
			Answer:   commaList(fieldNames),
		})
		for _, f := range m.Fields {
			qs = append(qs, Question{
				Level:    LevelRelation,
				Category: CategoryMessageField,
				Type:     AnswerOpen,
				Question: fmt.Sprintf("What is the type of field %s in message alias %s?", f.Name, m.Name),
				Answer:   orUnknown(f.Type),
			})
		}
	}

	return qs
}
