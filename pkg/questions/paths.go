package questions

import "fmt"

// pathQuestions covers level 2: for every ordered pair of distinct node
// instances, whether a communication path exists through shared topic or
// service bindings.
func (g *Generator) pathQuestions() []Question {
	var qs []Question

	names := sortedKeys(g.graph.Nodes)
	for _, src := range names {
		for _, dst := range names {
			if src == dst {
				continue
			}
			qs = append(qs, Question{
				Level:    LevelPath,
				Category: CategoryMessage,
				Type:     AnswerBool,
				Question: fmt.Sprintf("Is there a communication path from node %s to node %s via a topic or service?", src, dst),
				Answer:   yesNo(g.engine.Reachable(src, dst)),
			})
		}
	}

	return qs
}
