package file

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"todo-cli/internal/storage"
)

// codec encodes the record list in one structured-text format.
type codec interface {
	Name() string
	Marshal(records []storage.Record) ([]byte, error)
	Unmarshal(data []byte) ([]storage.Record, error)
}

// codecFor picks the encoding from the file extension; JSON unless the
// file ends in .yaml or .yml.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(records []storage.Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte) ([]storage.Record, error) {
	var records []storage.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(records []storage.Record) ([]byte, error) {
	return yaml.Marshal(records)
}

func (yamlCodec) Unmarshal(data []byte) ([]storage.Record, error) {
	var records []storage.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}
