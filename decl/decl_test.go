package decl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasresolve/oaserrors"
)

func TestScopeLevel(t *testing.T) {
	tests := []struct {
		scope  Scope
		level  Level
		parent Scope
		str    string
	}{
		{Scope{Package: "p"}, LevelPackage, Scope{Package: "p"}, "p"},
		{Scope{Package: "p", Type: "T"}, LevelType, Scope{Package: "p"}, "p.T"},
		{Scope{Package: "p", Type: "T", Method: "m"}, LevelMethod, Scope{Package: "p", Type: "T"}, "p.T.m"},
		{Scope{Package: "p", Type: "T", Method: "m", Arg: "a"}, LevelArg, Scope{Package: "p", Type: "T", Method: "m"}, "p.T.m(a)"},
		{Scope{}, LevelPackage, Scope{}, "<root>"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.level, tt.scope.Level())
			assert.Equal(t, tt.parent, tt.scope.Parent())
			assert.Equal(t, tt.str, tt.scope.String())
		})
	}

	arg := Scope{Package: "p", Type: "T", Method: "m", Arg: "a"}
	assert.Equal(t, Scope{Package: "p", Type: "T", Method: "m"}, arg.MethodScope())
	assert.Equal(t, Scope{Package: "p", Type: "T"}, arg.TypeScope())
	assert.True(t, arg.TypeScope().Contains(arg))
	assert.True(t, arg.PackageScope().Contains(arg))
	assert.False(t, Scope{Package: "p", Type: "U"}.Contains(arg))
	assert.Equal(t, "method", LevelMethod.String())
}

func TestSetSorted(t *testing.T) {
	set := Set{
		{Seq: 3, Source: "c", Annotation: &Tag{}},
		{Seq: 1, Source: "b", Annotation: &Tag{}},
		{Seq: 1, Source: "a", Annotation: &Tag{}},
		{Seq: 2, Source: "z", Annotation: &Server{}},
	}
	sorted := set.Sorted()
	require.Len(t, sorted, 4)
	assert.Equal(t, []string{"a", "b", "z", "c"}, []string{sorted[0].Source, sorted[1].Source, sorted[2].Source, sorted[3].Source})
	assert.Equal(t, 3, set[0].Seq, "Sorted must not reorder the receiver")
}

func TestSetSortedTiedKeys(t *testing.T) {
	a := Declaration{Annotation: &Tag{Name: Ptr("a")}}
	b := Declaration{Annotation: &Tag{Name: Ptr("b")}}
	empty := Declaration{Annotation: &Tag{}}

	for _, set := range []Set{{a, b, empty}, {b, empty, a}, {empty, b, a}} {
		sorted := set.Sorted()
		require.Len(t, sorted, 3)
		assert.Equal(t, Set{a, b, empty}, sorted)
	}
}

func TestNormalize(t *testing.T) {
	original := &Parameter{
		Name:        Ptr("id"),
		In:          Ptr("DEFAULT"),
		Description: Ptr(""),
		Style:       Ptr("default"),
		Explode:     Ptr("TRUE"),
		Schema:      &Schema{Type: Ptr("DEFAULT"), Format: Ptr("  "), Enumeration: []string{"a", "", "b"}},
		Examples:    []ExampleObject{},
		Extensions:  []Extension{{Name: Ptr("x-a"), Value: Ptr("1")}},
	}
	d := Declaration{Source: "users.go:12", Annotation: original}

	n := Normalize(d)
	p := n.Annotation.(*Parameter)

	assert.Equal(t, "id", *p.Name)
	assert.Nil(t, p.In, "DEFAULT enum is unset")
	assert.Nil(t, p.Description, "empty string is unset")
	assert.Nil(t, p.Style, "DEFAULT is matched case-insensitively")
	assert.Equal(t, "TRUE", *p.Explode)
	assert.Nil(t, p.Schema.Type)
	assert.Nil(t, p.Schema.Format)
	assert.Equal(t, []string{"a", "b"}, p.Schema.Enumeration)
	assert.NotNil(t, p.Examples, "explicitly empty lists stay explicitly empty")
	assert.Empty(t, p.Examples)
	assert.Equal(t, "users.go:12", p.Extensions[0].Source)

	// the input is untouched
	assert.Equal(t, "DEFAULT", *original.In)
	assert.Equal(t, "", original.Extensions[0].Source)
}

func TestNormalizeNonEnumDefault(t *testing.T) {
	// "DEFAULT" is only a sentinel for enumerations
	n := Normalize(Declaration{Annotation: &Tag{Name: Ptr("DEFAULT")}})
	assert.Equal(t, "DEFAULT", *n.Annotation.(*Tag).Name)
}

func TestClone(t *testing.T) {
	orig := &APIResponses{Value: []APIResponse{{ResponseCode: Ptr("200"), Links: []Link{{Name: Ptr("self")}}}}}
	cp := Clone(orig).(*APIResponses)
	*cp.Value[0].ResponseCode = "404"
	cp.Value[0].Links[0].Name = nil
	assert.Equal(t, "200", *orig.Value[0].ResponseCode)
	assert.Equal(t, "self", *orig.Value[0].Links[0].Name)
	assert.Nil(t, Clone(nil))
}

func TestDecode(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		ann, err := Decode(KindAPIResponse, []byte(`{responseCode: "200", description: OK, content: [{mediaType: application/json}]}`))
		require.NoError(t, err)
		r := ann.(*APIResponse)
		assert.Equal(t, "200", *r.ResponseCode)
		assert.Equal(t, "OK", *r.Description)
		require.Len(t, r.Content, 1)
		assert.Equal(t, "application/json", *r.Content[0].MediaType)
		assert.Nil(t, r.Headers)
	})

	t.Run("explicit empty plural", func(t *testing.T) {
		ann, err := Decode(KindAPIResponses, []byte(`value: []`))
		require.NoError(t, err)
		r := ann.(*APIResponses)
		assert.NotNil(t, r.Value)
		assert.Empty(t, r.Value)
	})

	t.Run("empty input", func(t *testing.T) {
		ann, err := Decode(KindTag, nil)
		require.NoError(t, err)
		assert.True(t, ann.(*Tag).IsEmpty())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Decode("bogus", []byte(`{}`))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := Decode(KindSchema, []byte(`{properties: 5}`))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
	})

	t.Run("block value", func(t *testing.T) {
		ann, err := Decode(KindSchema, []byte("type: object\nrequiredProperties: [username]"))
		require.NoError(t, err)
		s := ann.(*Schema)
		assert.Equal(t, "object", *s.Type)
		assert.Equal(t, []string{"username"}, s.RequiredProperties)
	})

	t.Run("content after flow value", func(t *testing.T) {
		ann, err := Decode(KindSchema, []byte("{type: object}\nrequiredProperties: [username]"))
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Nil(t, ann)
	})

	t.Run("second document", func(t *testing.T) {
		_, err := Decode(KindTag, []byte("name: a\n---\nname: b\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected content after the value")
	})

	t.Run("unknown key", func(t *testing.T) {
		ann, err := Decode(KindTag, []byte(`{name: pets, descripton: typo}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.Contains(t, err.Error(), "descripton")
		assert.Nil(t, ann)
	})
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Contains(t, kinds, KindEndpoint)
	assert.Contains(t, kinds, KindSecurityRequirementsSets)
	for _, k := range kinds {
		a, err := New(k)
		require.NoError(t, err)
		assert.Equal(t, k, a.Kind())
	}
}

const sampleFile = `declarations:
  - scope: {package: airlines, type: UserResource}
    kind: apiResponse
    value: {responseCode: "200", description: OK}
  - scope: {package: airlines, type: UserResource, method: updateUser}
    seq: 40
    source: user_resource.go:88
    kind: apiResponse
    value: {responseCode: "200", description: Updated}
  - scope: {package: airlines, type: UserResource, method: updateUser}
    kind: tags
    value: {}
`

func TestLoadBytes(t *testing.T) {
	set, err := LoadBytes("decls.yaml", []byte(sampleFile))
	require.NoError(t, err)
	require.Len(t, set, 3)

	assert.Equal(t, 0, set[0].Seq)
	assert.Equal(t, "decls.yaml:2", set[0].Source)
	assert.Equal(t, LevelType, set[0].Scope.Level())

	assert.Equal(t, 40, set[1].Seq)
	assert.Equal(t, "user_resource.go:88", set[1].Source)
	assert.Equal(t, "Updated", *set[1].Annotation.(*APIResponse).Description)

	assert.Equal(t, KindTags, set[2].Kind())
	assert.True(t, set[2].Annotation.(*Tags).IsExplicitEmpty())
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a mapping", "- a\n- b\n"},
		{"missing key", "other: 1\n"},
		{"not a list", "declarations: 3\n"},
		{"missing kind", "declarations:\n  - scope: {package: p}\n"},
		{"unknown kind", "declarations:\n  - kind: nope\n"},
		{"bad yaml", "declarations: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes("f.yaml", []byte(tt.data))
			require.Error(t, err)
			var pe *oaserrors.ParseError
			assert.True(t, errors.As(err, &pe), "expected a ParseError, got %T", err)
		})
	}

	set, err := LoadBytes("f.yaml", nil)
	assert.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "airlines.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFile), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, set, 3)
	assert.Equal(t, "airlines.yaml:2", set[0].Source)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}
