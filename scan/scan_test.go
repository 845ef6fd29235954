package scan

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/oaserrors"
	"github.com/erraggy/oasresolve/resolver"
)

const airlineSource = `//oas:openAPIDefinition {info: {title: Airlines, version: "1.0"}, servers: [{url: "https://api.example.com"}]}
//oas:tag {name: user, description: Operations about user}
package airlines

import "context"

//oas:schema
//oas:+ type: object
//oas:+ requiredProperties: [username]
type User struct {
	Username string
}

// UserResource serves users.
//
//oas:endpoint {path: /user, produces: [application/json]}
//oas:tags {refs: [user]}
//oas:apiResponse {responseCode: "404", description: User not found}
type UserResource struct{}

//oas:endpoint {method: get, path: "/{username}"}
//oas:operation {operationId: getUserByName}
//oas:parameter(username) {in: path}
//oas:schema(username) {type: string}
//oas:apiResponse
//oas:+   responseCode: "200"
//oas:+   description: The user
//oas:+   content:
//oas:+     - schema: {implementation: User}
func (r *UserResource) GetUserByName(ctx context.Context, username string) (*User, error) {
	return nil, nil
}

//oas:endpoint {method: get, path: /logout}
//oas:tags
func (r UserResource) Logout(_ context.Context) error {
	return nil
}

// Health is not part of a resource type.
//
//oas:endpoint {method: get, path: /health}
func Health() {}
`

func parse(t *testing.T, name, src string, opts ...Option) (decl.Set, error) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	require.NoError(t, err)
	return ParseFile(fset, f, opts...)
}

func find(set decl.Set, scope decl.Scope, kind decl.Kind) []decl.Declaration {
	return set.Filter(func(d decl.Declaration) bool {
		return d.Scope == scope && d.Kind() == kind
	})
}

func TestParseFileScopes(t *testing.T) {
	set, err := parse(t, "user.go", airlineSource)
	require.NoError(t, err)

	pkg := decl.Scope{Package: "airlines"}
	user := decl.Scope{Package: "airlines", Type: "User"}
	res := decl.Scope{Package: "airlines", Type: "UserResource"}
	get := decl.Scope{Package: "airlines", Type: "UserResource", Method: "GetUserByName"}
	logout := decl.Scope{Package: "airlines", Type: "UserResource", Method: "Logout"}
	health := decl.Scope{Package: "airlines", Method: "Health"}

	assert.Len(t, find(set, pkg, decl.KindOpenAPIDefinition), 1)
	assert.Len(t, find(set, pkg, decl.KindTag), 1)
	assert.Len(t, find(set, user, decl.KindSchema), 1)
	assert.Len(t, find(set, res, decl.KindEndpoint), 1)
	assert.Len(t, find(set, res, decl.KindTags), 1)
	assert.Len(t, find(set, res, decl.KindAPIResponse), 1)
	assert.Len(t, find(set, get, decl.KindEndpoint), 1)
	assert.Len(t, find(set, get, decl.KindAPIResponse), 1)
	assert.Len(t, find(set, decl.Scope{Package: "airlines", Type: "UserResource", Method: "GetUserByName", Arg: "username"}, decl.KindParameter), 1)
	assert.Len(t, find(set, logout, decl.KindTags), 1)
	assert.Len(t, find(set, health, decl.KindEndpoint), 1)
	assert.Len(t, set, 14)
}

func TestParseFileSeqAndSource(t *testing.T) {
	set, err := parse(t, "user.go", airlineSource)
	require.NoError(t, err)
	require.NotEmpty(t, set)

	for i, d := range set {
		assert.Equal(t, i+1, d.Seq)
	}
	assert.Equal(t, "user.go:1", set[0].Source)
	assert.Equal(t, "user.go:2", set[1].Source)

	schema := find(set, decl.Scope{Package: "airlines", Type: "User"}, decl.KindSchema)
	require.Len(t, schema, 1)
	assert.Equal(t, "user.go:7", schema[0].Source)
}

func TestParseFileDecodesValues(t *testing.T) {
	set, err := parse(t, "user.go", airlineSource)
	require.NoError(t, err)

	schema := find(set, decl.Scope{Package: "airlines", Type: "User"}, decl.KindSchema)
	require.Len(t, schema, 1)
	s := schema[0].Annotation.(*decl.Schema)
	assert.Equal(t, "object", *s.Type)
	assert.Equal(t, []string{"username"}, s.RequiredProperties)

	get := decl.Scope{Package: "airlines", Type: "UserResource", Method: "GetUserByName"}
	resp := find(set, get, decl.KindAPIResponse)
	require.Len(t, resp, 1)
	r := resp[0].Annotation.(*decl.APIResponse)
	assert.Equal(t, "200", *r.ResponseCode)
	assert.Equal(t, "The user", *r.Description)
	require.Len(t, r.Content, 1)
	assert.Equal(t, "User", *r.Content[0].Schema.Implementation)

	ep := find(set, get, decl.KindEndpoint)[0].Annotation.(*decl.Endpoint)
	assert.Equal(t, "get", *ep.Method)
	assert.Equal(t, "/{username}", *ep.Path)
}

func TestEmptyDirectiveIsExplicitEmpty(t *testing.T) {
	set, err := parse(t, "user.go", airlineSource)
	require.NoError(t, err)

	logout := decl.Scope{Package: "airlines", Type: "UserResource", Method: "Logout"}
	tags := find(set, logout, decl.KindTags)
	require.Len(t, tags, 1)
	assert.True(t, tags[0].Annotation.(*decl.Tags).IsExplicitEmpty())

	typeTags := find(set, decl.Scope{Package: "airlines", Type: "UserResource"}, decl.KindTags)
	require.Len(t, typeTags, 1)
	assert.Equal(t, []string{"user"}, typeTags[0].Annotation.(*decl.Tags).Refs)
}

func TestParseFileWithRoot(t *testing.T) {
	root := t.TempDir()
	name := filepath.Join(root, "api", "user.go")
	set, err := parse(t, name, airlineSource, WithRoot(root))
	require.NoError(t, err)
	require.NotEmpty(t, set)
	assert.Equal(t, "api/user.go:1", set[0].Source)
}

func TestMalformedDirectives(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		message string
	}{
		{
			name:    "unknown kind",
			src:     "package p\n\n//oas:widget {a: 1}\ntype T struct{}\n",
			line:    3,
			message: `unknown annotation kind "widget"`,
		},
		{
			name:    "unterminated argument",
			src:     "package p\n\n//oas:parameter(q {in: query}\nfunc F(q string) {}\n",
			line:    3,
			message: "unterminated argument",
		},
		{
			name:    "argument on a type",
			src:     "package p\n\n//oas:schema(q) {type: string}\ntype T struct{}\n",
			line:    3,
			message: "arguments are only allowed on functions",
		},
		{
			name:    "unknown parameter",
			src:     "package p\n\n//oas:parameter(id) {in: query}\nfunc F(q string) {}\n",
			line:    3,
			message: `F has no parameter "id"`,
		},
		{
			name:    "blank parameter",
			src:     "package p\n\n//oas:parameter(_) {in: query}\nfunc F(_ string) {}\n",
			line:    3,
			message: `F has no parameter "_"`,
		},
		{
			name:    "continuation without directive",
			src:     "package p\n\n//oas:+ name: x\ntype T struct{}\n",
			line:    3,
			message: "continuation line without a directive",
		},
		{
			name:    "bad yaml",
			src:     "package p\n\n// T is a type.\n//oas:tag {name: [unterminated\ntype T struct{}\n",
			line:    4,
			message: "decoding tag",
		},
		{
			name:    "content after flow value",
			src:     "package p\n\n//oas:schema {type: object}\n//oas:+ requiredProperties: [id]\ntype T struct{}\n",
			line:    3,
			message: "decoding schema",
		},
		{
			name:    "misspelled key",
			src:     "package p\n\n//oas:tag {name: t, descripton: typo}\ntype T struct{}\n",
			line:    3,
			message: "decoding tag",
		},
		{
			name:    "wrong value type",
			src:     "package p\n\n//oas:endpoint\n//oas:+ produces: {a: b}\ntype T struct{}\n",
			line:    4,
			message: "decoding endpoint",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := parse(t, "p.go", tt.src)
			require.Error(t, err)
			assert.Empty(t, set)
			assert.True(t, errors.Is(err, oaserrors.ErrParse))

			var pe *oaserrors.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "p.go", pe.Path)
			assert.Equal(t, tt.line, pe.Line)
			assert.Contains(t, pe.Error(), tt.message)
		})
	}
}

func TestMalformedDirectiveKeepsOthers(t *testing.T) {
	src := `package p

//oas:widget
//oas:endpoint {path: /t}
type T struct{}

//oas:endpoint {method: get}
func (T) Get() {}
`
	set, err := parse(t, "p.go", src)
	require.Error(t, err)

	var batch oaserrors.Errors
	require.ErrorAs(t, err, &batch)
	assert.Len(t, batch, 1)
	require.Len(t, set, 2)
	assert.Equal(t, decl.KindEndpoint, set[0].Kind())
	assert.Equal(t, 1, set[0].Seq)
	assert.Equal(t, 2, set[1].Seq)
}

func TestNonDirectiveCommentsIgnored(t *testing.T) {
	src := `package p

// T is documented.
// oas:endpoint with a space is prose.
//go:generate echo
type T struct{}
`
	set, err := parse(t, "p.go", src)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestGroupedTypeDocs(t *testing.T) {
	src := `package p

//oas:schema {type: string}
type Single string

type (
	//oas:schema {type: integer}
	A int
	B int
)
`
	set, err := parse(t, "p.go", src)
	require.NoError(t, err)
	require.Len(t, set, 2)
	assert.Equal(t, "Single", set[0].Scope.Type)
	assert.Equal(t, "A", set[1].Scope.Type)
}

func TestReceiverType(t *testing.T) {
	src := `package p

//oas:endpoint {method: get, path: /a}
func (l *List[T]) A() {}

//oas:endpoint {method: get, path: /b}
func (m Map[K, V]) B() {}

//oas:endpoint {method: get, path: /c}
func (c (Client)) C() {}
`
	set, err := parse(t, "p.go", src)
	require.NoError(t, err)
	require.Len(t, set, 3)
	assert.Equal(t, "List", set[0].Scope.Type)
	assert.Equal(t, "Map", set[1].Scope.Type)
	assert.Equal(t, "Client", set[2].Scope.Type)
}

func TestScanThenResolve(t *testing.T) {
	set, err := parse(t, "user.go", airlineSource)
	require.NoError(t, err)

	res, err := resolver.Resolve(set)
	require.NoError(t, err)
	doc := res.Document
	require.NotNil(t, doc)

	assert.Equal(t, "Airlines", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)
	require.Len(t, doc.Tags, 1)
	assert.Equal(t, "user", doc.Tags[0].Name)
	require.NotNil(t, doc.Components)
	assert.Contains(t, doc.Components.Schemas, "User")

	get := doc.Paths.Operation("GET", "/user/{username}")
	require.NotNil(t, get)
	assert.Equal(t, "getUserByName", get.OperationID)
	assert.Equal(t, []string{"user"}, get.Tags)
	p := get.Parameter("username", "path")
	require.NotNil(t, p)
	assert.True(t, p.Required)
	require.Contains(t, get.Responses, "200")
	require.Contains(t, get.Responses["200"].Content, "application/json")
	assert.Equal(t, "#/components/schemas/User", get.Responses["200"].Content["application/json"].Schema.Ref)
	assert.Contains(t, get.Responses, "404")

	logout := doc.Paths.Operation("GET", "/user/logout")
	require.NotNil(t, logout)
	assert.Nil(t, logout.Tags)

	health := doc.Paths.Operation("GET", "/health")
	require.NotNil(t, health)
	assert.Empty(t, res.Unresolved)
}

func TestOptions(t *testing.T) {
	_, err := newConfig([]Option{WithRoot("."), WithTests(true), WithLogger(nil)})
	require.NoError(t, err)
}

func TestPackages(t *testing.T) {
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/airlines\n\ngo 1.21\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.go"), []byte(airlineSource), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "admin"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "admin", "admin.go"), []byte(`package admin

//oas:endpoint {path: /admin}
type Admin struct{}

//oas:endpoint {method: delete, path: /cache}
func (Admin) Flush() {}
`), 0o600))

	res, err := Packages(context.Background(), dir, []string{"./..."})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Packages)
	assert.Equal(t, 2, res.Files)
	assert.Len(t, res.Declarations, 16)

	// packages load in import path order: example.com/airlines sorts
	// before example.com/airlines/admin
	assert.Equal(t, "airlines", res.Declarations[0].Scope.Package)
	assert.Equal(t, "user.go:1", res.Declarations[0].Source)
	last := res.Declarations[len(res.Declarations)-1]
	assert.Equal(t, "admin", last.Scope.Package)
	assert.Equal(t, "admin/admin.go:6", last.Source)
	for i, d := range res.Declarations {
		assert.Equal(t, i+1, d.Seq)
	}

	out, err := resolver.Resolve(res.Declarations)
	require.NoError(t, err)
	assert.NotNil(t, out.Document.Paths.Operation("DELETE", "/admin/cache"))
	assert.NotNil(t, out.Document.Paths.Operation("GET", "/user/{username}"))
}
