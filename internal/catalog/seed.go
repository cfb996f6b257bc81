package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadSeedFile loads books from a JSON file. Three shapes are accepted: a bare
// array of books, {"books": [...]}, and a full GraphQL response
// {"data": {"books": [...]}}.
func ReadSeedFile(path string) ([]Book, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	books, err := parseSeed(raw)
	if err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return books, nil
}

func parseSeed(raw []byte) ([]Book, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	if trimmed[0] == '[' {
		var books []Book
		if err := json.Unmarshal(trimmed, &books); err != nil {
			return nil, err
		}
		return books, nil
	}

	var doc struct {
		Books []Book `json:"books"`
		Data  *struct {
			Books []Book `json:"books"`
		} `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	books := doc.Books
	if doc.Data != nil {
		books = doc.Data.Books
	}
	if books == nil {
		return nil, fmt.Errorf("no books array found")
	}
	return books, nil
}
