package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
)

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// WriteFile writes records to path. With compress set, the JSON payload is
// snappy block-encoded; large dataset runs shrink considerably while a
// single record set stays cheap to decode.
func WriteFile(path string, records []Record, compress bool) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if compress {
		data = snappy.Encode(nil, data)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write dataset file: %w", err)
	}
	return nil
}

// ReadFile reads records written by WriteFile.
func ReadFile(path string, compressed bool) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}
	if compressed {
		data, err = snappy.Decode(nil, data)
		if err != nil {
			return nil, fmt.Errorf("decompress dataset file: %w", err)
		}
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}
	return records, nil
}
