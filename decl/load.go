package decl

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/oaserrors"
)

// rawDeclaration is the on-disk form of a declaration record.
type rawDeclaration struct {
	Scope  Scope     `yaml:"scope"`
	Seq    *int      `yaml:"seq"`
	Source string    `yaml:"source"`
	Kind   Kind      `yaml:"kind"`
	Value  yaml.Node `yaml:"value"`
}

// LoadFile reads a declaration file from disk. See LoadBytes for the format.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "reading declarations", Cause: err}
	}
	return LoadBytes(filepath.Base(path), data)
}

// LoadBytes decodes a YAML (or JSON) declaration file:
//
//	declarations:
//	  - scope: {package: airlines, type: UserResource, method: getUser}
//	    seq: 10
//	    source: user_resource.go:42
//	    kind: apiResponse
//	    value: {responseCode: "200", description: OK}
//
// A missing seq defaults to the record's position in the file and a missing
// source defaults to "name:line". Every malformed record is reported; the
// returned error is an oaserrors.Errors batch.
func LoadBytes(name string, data []byte) (Set, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: name, Cause: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{Path: name, Line: doc.Line, Message: "expected a mapping with a declarations key"}
	}

	var items *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "declarations" {
			items = doc.Content[i+1]
			break
		}
	}
	if items == nil {
		return nil, &oaserrors.ParseError{Path: name, Line: doc.Line, Message: "missing declarations key"}
	}
	if items.Kind != yaml.SequenceNode {
		return nil, &oaserrors.ParseError{Path: name, Line: items.Line, Message: "declarations must be a list"}
	}

	set := make(Set, 0, len(items.Content))
	var errs oaserrors.Errors
	for i, item := range items.Content {
		d, err := decodeRecord(name, i, item)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set = append(set, d)
	}
	if err := errs.ErrOrNil(); err != nil {
		return set, err
	}
	return set, nil
}

func decodeRecord(name string, index int, item *yaml.Node) (Declaration, error) {
	var raw rawDeclaration
	if err := item.Decode(&raw); err != nil {
		return Declaration{}, &oaserrors.ParseError{Path: name, Line: item.Line, Column: item.Column, Cause: err}
	}
	if raw.Kind == "" {
		return Declaration{}, &oaserrors.ParseError{Path: name, Line: item.Line, Message: "missing kind"}
	}
	ann, err := New(raw.Kind)
	if err != nil {
		return Declaration{}, &oaserrors.ParseError{Path: name, Line: item.Line, Message: err.Error()}
	}
	if err := decodeNode(raw.Kind, &raw.Value, ann); err != nil {
		if pe, ok := err.(*oaserrors.ParseError); ok {
			pe.Path = name
		}
		return Declaration{}, err
	}

	d := Declaration{Scope: raw.Scope, Seq: index, Source: raw.Source, Annotation: ann}
	if raw.Seq != nil {
		d.Seq = *raw.Seq
	}
	if d.Source == "" {
		d.Source = fmt.Sprintf("%s:%d", name, item.Line)
	}
	return d, nil
}
