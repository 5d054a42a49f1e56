package questions

import (
	"fmt"
	"sort"
)

const fakeSuffixLetters = "abcdefghijklmnopqrstuvwxyz"

// entityQuestions covers level 0: existence and kind for every node,
// topic, and service name, plus sampled fabricated names that answer No.
func (g *Generator) entityQuestions() []Question {
	var qs []Question

	names := make([]string, 0, len(g.graph.Nodes)+len(g.graph.Topics)+len(g.graph.Services))
	names = append(names, sortedKeys(g.graph.Nodes)...)
	names = append(names, sortedKeys(g.graph.Topics)...)
	names = append(names, sortedKeys(g.graph.Services)...)

	if g.opts.IncludeNegatives {
		for _, fake := range g.fakeEntities(names, g.opts.NegativeCount) {
			qs = append(qs, Question{
				Level:    LevelEntity,
				Category: CategoryEntity,
				Type:     AnswerBool,
				Question: fmt.Sprintf("Is there a ROS2 entity called %s?", fake),
				Answer:   answerNo,
			})
		}
	}

	for _, name := range names {
		qs = append(qs, Question{
			Level:    LevelEntity,
			Category: CategoryEntity,
			Type:     AnswerBool,
			Question: fmt.Sprintf("Is there a ROS2 entity called %s?", name),
			Answer:   answerYes,
		})
		qs = append(qs, Question{
			Level:    LevelEntity,
			Category: CategoryEntity,
			Type:     AnswerMCQ,
			Question: fmt.Sprintf(
				"What kind of ROS2 entity is %s? Possible answers: 1- ROS topic, 2- ROS service, 3- ROS node.",
				name),
			Answer: fmt.Sprintf("%d", g.graph.Kind(name)),
		})
	}

	return qs
}

// fakeEntities fabricates names that resemble real ones but exist nowhere
// in the graph. Sampling is bounded so a pathological name set cannot
// loop forever.
func (g *Generator) fakeEntities(realNames []string, count int) []string {
	if len(realNames) == 0 || count <= 0 {
		return nil
	}

	real := make(map[string]bool, len(realNames))
	for _, name := range realNames {
		real[name] = true
	}

	fake := make(map[string]bool)
	for attempts := 0; len(fake) < count && attempts < count*30; attempts++ {
		base := realNames[g.rng.Intn(len(realNames))]
		suffix := []byte{
			fakeSuffixLetters[g.rng.Intn(len(fakeSuffixLetters))],
			fakeSuffixLetters[g.rng.Intn(len(fakeSuffixLetters))],
		}
		candidate := fmt.Sprintf("%s_x%s", base, suffix)
		if !real[candidate] && !fake[candidate] {
			fake[candidate] = true
		}
	}

	names := make([]string, 0, len(fake))
	for name := range fake {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
