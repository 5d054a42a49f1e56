package dataset

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/YuqiYue/rosqa-generator/pkg/questions"
)

func sampleQuestions() []questions.Question {
	return []questions.Question{
		{
			Level:    questions.LevelEntity,
			Category: questions.CategoryEntity,
			Type:     questions.AnswerBool,
			Question: "Is there a ROS2 entity called /scan?",
			Answer:   "Yes",
		},
		{
			Level:    questions.LevelPath,
			Category: questions.CategoryMessage,
			Type:     questions.AnswerBool,
			Question: "Is there a communication path from node p to node c via a topic or service?",
			Answer:   "No",
		},
	}
}

func TestFromQuestions(t *testing.T) {
	records := FromQuestions(sampleQuestions())

	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].ID == "" || records[0].ID == records[1].ID {
		t.Errorf("records must carry distinct IDs: %q %q", records[0].ID, records[1].ID)
	}
	if records[0].Level != 0 || records[1].Level != 2 {
		t.Errorf("levels = %d, %d", records[0].Level, records[1].Level)
	}
	if records[0].Category != "ENTITY" || records[0].Type != "BOOL" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	records := FromQuestions(sampleQuestions())

	if err := WriteJSON(&buf, records); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []Record
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Question != records[0].Question {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	records := FromQuestions(sampleQuestions())

	for _, compress := range []bool{false, true} {
		name := "plain"
		if compress {
			name = "compressed"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "questions.json")
			if err := WriteFile(path, records, compress); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			loaded, err := ReadFile(path, compress)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if len(loaded) != len(records) {
				t.Fatalf("got %d records, want %d", len(loaded), len(records))
			}
			for i := range records {
				if loaded[i] != records[i] {
					t.Errorf("record %d = %+v, want %+v", i, loaded[i], records[i])
				}
			}
		})
	}
}
