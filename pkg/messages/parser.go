package messages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser turns file content into locale -> nested message maps.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension, or nil for unknown types.
func ParserForFile(filename string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToLower(ext) {
	case "yaml", "yml":
		return YAMLParser{}
	case "json":
		return JSONParser{}
	default:
		return nil
	}
}

// YAMLParser reads catalogs such as:
//
//	en:
//	  validations:
//	    invalid: "%{attribute} is invalid"
type YAMLParser struct{}

// Parse decodes a YAML catalog keyed by locale.
func (YAMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return splitLocales(data)
}

// SupportsFileExtension reports true for .yaml and .yml.
func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads the JSON form of the YAML layout.
type JSONParser struct{}

// Parse decodes a JSON catalog keyed by locale.
func (JSONParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	var data map[string]any
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return splitLocales(data)
}

// SupportsFileExtension reports true for .json.
func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

func splitLocales(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for locale, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: locale %q: expected map, got %T", ErrInvalidStructure, locale, val)
		}
		result[locale] = m
	}
	return result, nil
}
