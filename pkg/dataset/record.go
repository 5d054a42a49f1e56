// Package dataset turns generated questions into serialized evaluation
// records.
package dataset

import (
	"github.com/google/uuid"

	"github.com/YuqiYue/rosqa-generator/pkg/questions"
)

// Record is one question/answer fact in its output shape.
type Record struct {
	ID       string `json:"id"`
	Level    int    `json:"level"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FromQuestions converts questions to records, stamping each with a
// fresh UUID.
func FromQuestions(qs []questions.Question) []Record {
	records := make([]Record, len(qs))
	for i, q := range qs {
		records[i] = Record{
			ID:       uuid.New().String(),
			Level:    int(q.Level),
			Category: string(q.Category),
			Type:     string(q.Type),
			Question: q.Question,
			Answer:   q.Answer,
		}
	}
	return records
}
