package schemas

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	yaml "gopkg.in/yaml.v3"
)

// Document is a schema as read from its file. Raw is the JSON text; for a YAML file it is the
// JSON equivalent of the YAML content.
type Document struct {
	Name  string
	Raw   []byte
	Value ldvalue.Value
}

func isYAMLName(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

func parseDocument(name string, data []byte) (Document, error) {
	raw := data
	if isYAMLName(name) {
		converted, err := yamlToJSON(data)
		if err != nil {
			return Document{}, &ParseError{Name: name, Err: err}
		}
		raw = converted
	}
	var value ldvalue.Value
	if err := json.Unmarshal(raw, &value); err != nil {
		return Document{}, &ParseError{Name: name, Err: err}
	}
	return Document{Name: name, Raw: raw, Value: value}, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var rawStructure interface{}
	if err := yaml.Unmarshal(data, &rawStructure); err != nil {
		return nil, err
	}
	normalized, err := normalizeParsedYAMLForJSON(rawStructure)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// normalizeParsedYAMLForJSON turns the generic maps produced by the YAML parser into the
// map[string]interface{} form that encoding/json accepts.
func normalizeParsedYAMLForJSON(data interface{}) (interface{}, error) {
	switch data := data.(type) {
	case []interface{}:
		arrayOut := make([]interface{}, 0, len(data))
		for _, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			arrayOut = append(arrayOut, v1)
		}
		return arrayOut, nil
	case map[string]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[k] = v1
		}
		return mapOut, nil
	case map[interface{}]interface{}:
		mapOut := make(map[string]interface{}, len(data))
		for k, v := range data {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("YAML data contained a map key of type %T; only string keys are allowed", k)
			}
			v1, err := normalizeParsedYAMLForJSON(v)
			if err != nil {
				return nil, err
			}
			mapOut[key] = v1
		}
		return mapOut, nil
	default:
		return data, nil
	}
}
