package questions

import (
	"sort"
	"strings"
)

// Level classifies a question by how much of the graph it takes to answer:
// entity existence, a single relation, or multi-hop path reachability.
type Level int

const (
	LevelEntity   Level = 0
	LevelRelation Level = 1
	LevelPath     Level = 2
)

// String returns the level name used in dataset records.
func (l Level) String() string {
	switch l {
	case LevelEntity:
		return "ENTITY"
	case LevelRelation:
		return "RELATION"
	case LevelPath:
		return "PATH"
	default:
		return "UNKNOWN"
	}
}

// Category identifies the fact family a question belongs to.
type Category string

const (
	CategoryEntity          Category = "ENTITY"
	CategoryPublish         Category = "PUBLISH"
	CategorySubscribe       Category = "SUBSCRIBE"
	CategoryService         Category = "SERVICE"
	CategoryClient          Category = "CLIENT"
	CategoryMessage         Category = "MESSAGE"
	CategoryServiceType     Category = "SERVICE_TYPE"
	CategoryTopicType       Category = "TOPIC_TYPE"
	CategoryParameter       Category = "PARAMETER"
	CategoryParameterAssign Category = "PARAMETER_ASSIGN"
	CategoryContentService  Category = "CONTENT_SERVICE"
	CategoryNodeType        Category = "NODE_TYPE"
	CategoryNodeInstance    Category = "NODE_INSTANCE"
	CategoryContext         Category = "CONTEXT"
	CategoryContextAssign   Category = "CONTEXT_ASSIGN"
	CategoryRemap           Category = "REMAP"
	CategoryTF              Category = "TF"
	CategoryPolicy          Category = "POLICY"
	CategoryTypeAlias       Category = "TYPE_ALIAS"
	CategoryMessageAlias    Category = "MESSAGE_ALIAS"
	CategoryMessageField    Category = "MESSAGE_FIELD"
	CategoryAttachment      Category = "ATTACHMENT"
	CategoryWhere           Category = "WHERE"
)

// AnswerType is the expected answer format.
type AnswerType string

const (
	AnswerBool AnswerType = "BOOL"
	AnswerMCQ  AnswerType = "MCQ"
	AnswerOpen AnswerType = "OPEN"
)

// Question is one generated question/answer fact.
type Question struct {
	Level    Level
	Category Category
	Type     AnswerType
	Question string
	Answer   string
}

// Literal answers for boolean and degenerate open facts.
const (
	answerYes = "Yes"
	answerNo  = "No"

	// answerNone marks a legitimately empty set or absent optional field.
	answerNone = "None"

	// answerUnknown marks a field that should exist but was not parsed.
	answerUnknown = "Unknown"
)

func yesNo(v bool) string {
	if v {
		return answerYes
	}
	return answerNo
}

// commaList renders an open-set answer: deduplicated, alphabetically
// sorted, comma-joined, or the None literal when nothing is left.
func commaList(items []string) string {
	seen := make(map[string]bool, len(items))
	unique := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		unique = append(unique, item)
	}
	if len(unique) == 0 {
		return answerNone
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}

// orNone is for optional fields that may legitimately be absent.
func orNone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return answerNone
	}
	return s
}

// orUnknown is for fields that likely should be known but may be missing.
func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return answerUnknown
	}
	return s
}

// sortedKeys returns map keys in alphabetical order so that generation
// order never depends on map iteration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
