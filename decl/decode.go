package decl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasresolve/oaserrors"
)

var factories = map[Kind]func() Annotation{
	KindOpenAPIDefinition:        func() Annotation { return &OpenAPIDefinition{} },
	KindTag:                      func() Annotation { return &Tag{} },
	KindTags:                     func() Annotation { return &Tags{} },
	KindServer:                   func() Annotation { return &Server{} },
	KindServers:                  func() Annotation { return &Servers{} },
	KindExternalDocumentation:    func() Annotation { return &ExternalDocumentation{} },
	KindSchema:                   func() Annotation { return &Schema{} },
	KindParameter:                func() Annotation { return &Parameter{} },
	KindParameters:               func() Annotation { return &Parameters{} },
	KindRequestBody:              func() Annotation { return &RequestBody{} },
	KindAPIResponse:              func() Annotation { return &APIResponse{} },
	KindAPIResponses:             func() Annotation { return &APIResponses{} },
	KindOperation:                func() Annotation { return &Operation{} },
	KindCallback:                 func() Annotation { return &Callback{} },
	KindCallbacks:                func() Annotation { return &Callbacks{} },
	KindSecurityScheme:           func() Annotation { return &SecurityScheme{} },
	KindSecuritySchemes:          func() Annotation { return &SecuritySchemes{} },
	KindSecurityRequirement:      func() Annotation { return &SecurityRequirement{} },
	KindSecurityRequirements:     func() Annotation { return &SecurityRequirements{} },
	KindSecurityRequirementsSet:  func() Annotation { return &SecurityRequirementsSet{} },
	KindSecurityRequirementsSets: func() Annotation { return &SecurityRequirementsSets{} },
	KindExtension:                func() Annotation { return &Extension{} },
	KindExtensions:               func() Annotation { return &Extensions{} },
	KindEndpoint:                 func() Annotation { return &Endpoint{} },
}

// New returns a zero annotation of the given kind.
func New(kind Kind) (Annotation, error) {
	f, ok := factories[kind]
	if !ok {
		return nil, &oaserrors.ParseError{Message: fmt.Sprintf("unknown annotation kind %q", kind)}
	}
	return f(), nil
}

// Kinds returns every declarable kind in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Decode decodes a YAML or JSON annotation value of the given kind.
// Empty input yields an annotation with every field unset. Unknown keys and
// content after the value are errors.
func Decode(kind Kind, data []byte) (Annotation, error) {
	ann, err := New(kind)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node yaml.Node
	if err := dec.Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return ann, nil
		}
		return nil, &oaserrors.ParseError{Message: fmt.Sprintf("decoding %s", kind), Cause: err}
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("unexpected content after the value at line %d", extra.Line)
		}
		return nil, &oaserrors.ParseError{Message: fmt.Sprintf("decoding %s", kind), Cause: err}
	}
	if err := decodeNode(kind, &node, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

func decodeNode(kind Kind, node *yaml.Node, ann Annotation) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if err := node.Load(ann, yaml.WithKnownFields()); err != nil {
		return &oaserrors.ParseError{
			Line:    node.Line,
			Column:  node.Column,
			Message: fmt.Sprintf("decoding %s", kind),
			Cause:   err,
		}
	}
	return nil
}
