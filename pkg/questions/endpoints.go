package questions

import (
	"fmt"
	"strings"

	"github.com/YuqiYue/rosqa-generator/pkg/resolve"
)

// topicQuestions covers every registered topic: its message type and the
// nodes effectively publishing and subscribing after resolution.
func (g *Generator) topicQuestions() []Question {
	var qs []Question

	publishers := make(map[string][]string)
	subscribers := make(map[string][]string)
	for _, nodeName := range sortedKeys(g.graph.Nodes) {
		n := g.graph.Nodes[nodeName]
		for topic := range resolve.Publishes(n) {
			publishers[topic] = append(publishers[topic], n.Name)
		}
		for topic := range resolve.Subscribes(n) {
			subscribers[topic] = append(subscribers[topic], n.Name)
		}
	}

	for _, name := range sortedKeys(g.graph.Topics) {
		t := g.graph.Topics[name]
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryTopicType,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the type of topic %s?", t.Name),
			Answer:   orUnknown(t.Type),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryPublish,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which nodes publish to topic %s (after resolving content(...) and remaps)?", t.Name),
			Answer:   commaList(publishers[t.Name]),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategorySubscribe,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which nodes subscribe to topic %s (after resolving content(...) and remaps)?", t.Name),
			Answer:   commaList(subscribers[t.Name]),
		})
	}

	return qs
}

// serviceQuestions covers every registered service: its type, providers,
// and clients. Unresolved content placeholders never count as clients of a
// real service.
func (g *Generator) serviceQuestions() []Question {
	var qs []Question

	providers := make(map[string][]string)
	clients := make(map[string][]string)
	for _, nodeName := range sortedKeys(g.graph.Nodes) {
		n := g.graph.Nodes[nodeName]
		for service := range resolve.Provides(n) {
			providers[service] = append(providers[service], n.Name)
		}
		for service := range resolve.Uses(n) {
			if strings.HasPrefix(service, "content(") {
				continue
			}
			clients[service] = append(clients[service], n.Name)
		}
	}

	for _, name := range sortedKeys(g.graph.Services) {
		s := g.graph.Services[name]
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryServiceType,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("What is the type of service %s?", s.Name),
			Answer:   orUnknown(s.Type),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryService,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which nodes provide service %s (after resolving content(...) and remaps)?", s.Name),
			Answer:   commaList(providers[s.Name]),
		})
		qs = append(qs, Question{
			Level:    LevelRelation,
			Category: CategoryClient,
			Type:     AnswerOpen,
			Question: fmt.Sprintf("Which nodes use service %s as a client (after resolving content(...) and remaps)?", s.Name),
			Answer:   commaList(clients[s.Name]),
		})
	}

	return qs
}
