package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DataFileExtension is what the skill packaging imports the cached data as
const DataFileExtension = ".ts"

// SaveJSONDataFile caches data as a named constant holding pretty printed JSON, eg.
//
//	export const lines = [
//	  ...
//	]
//
// encoding/json always writes U+2028 and U+2029 as \u2028 and \u2029 which keeps
// the file loadable by parsers that reject them raw inside string literals.
func SaveJSONDataFile(dir string, name string, data any) (string, error) {
	var buffer bytes.Buffer

	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}

	content := fmt.Sprintf("export const %s = %s", name, bytes.TrimRight(buffer.Bytes(), "\n"))

	path := filepath.Join(dir, name+DataFileExtension)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// ReadJSONDataFile loads a file written by SaveJSONDataFile into v
func ReadJSONDataFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, data, found := bytes.Cut(content, []byte("="))
	if !found {
		return fmt.Errorf("%s is not a data file: no assignment", path)
	}

	if err := json.Unmarshal(bytes.TrimSpace(data), v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}
