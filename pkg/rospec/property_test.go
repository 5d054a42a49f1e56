package rospec

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// specFromTopics builds a two-type specification publishing and
// subscribing the given topics.
func specFromTopics(topics []string) string {
	var b strings.Builder
	b.WriteString("node type Producer {\n")
	for _, topic := range topics {
		fmt.Fprintf(&b, "    publishes to /%s : msgs/Generated;\n", topic)
	}
	b.WriteString("}\n")
	b.WriteString("node type Consumer {\n")
	for _, topic := range topics {
		fmt.Fprintf(&b, "    subscribes to /%s : msgs/Generated;\n", topic)
	}
	b.WriteString("}\n")
	b.WriteString("system {\n    node instance p : Producer {}\n    node instance c : Consumer {}\n}\n")
	return b.String()
}

// TestParseProperties verifies invariants that must hold for any
// well-formed specification text.
func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	identifier := gen.RegexMatch(`[a-z][a-z0-9_]{0,15}`)

	properties.Property("parsing is idempotent", prop.ForAll(
		func(topics []string) bool {
			spec := specFromTopics(topics)
			first, err1 := Parse(spec)
			second, err2 := Parse(spec)
			if err1 != nil || err2 != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.SliceOfN(3, identifier),
	))

	properties.Property("topic type is first-writer-wins", prop.ForAll(
		func(topic, firstType, secondType string) bool {
			spec := fmt.Sprintf(`
node type A { publishes to /%s : %s; }
node type B { subscribes to /%s : %s; }
`, topic, firstType, topic, secondType)
			graph, err := Parse(spec)
			if err != nil {
				return false
			}
			registered, ok := graph.Topics["/"+topic]
			return ok && registered.Type == firstType
		},
		identifier,
		gen.RegexMatch(`[a-z][a-z0-9_]{0,10}/[A-Z][a-zA-Z0-9]{0,10}`),
		gen.RegexMatch(`[a-z][a-z0-9_]{0,10}/[A-Z][a-zA-Z0-9]{0,10}`),
	))

	properties.Property("every declared endpoint is registered exactly once", prop.ForAll(
		func(topics []string) bool {
			spec := specFromTopics(topics)
			graph, err := Parse(spec)
			if err != nil {
				return false
			}
			unique := make(map[string]bool)
			for _, topic := range topics {
				unique["/"+topic] = true
			}
			return len(graph.Topics) == len(unique)
		},
		gen.SliceOfN(4, identifier),
	))

	properties.TestingRun(t)
}
