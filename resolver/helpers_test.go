package resolver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasresolve/decl"
	"github.com/erraggy/oasresolve/model"
)

var (
	pkgScope  = decl.Scope{Package: "airlines"}
	userScope = decl.Scope{Package: "airlines", Type: "UserResource"}
)

func methodScope(name string) decl.Scope {
	return decl.Scope{Package: "airlines", Type: "UserResource", Method: name}
}

func argScope(method, arg string) decl.Scope {
	return decl.Scope{Package: "airlines", Type: "UserResource", Method: method, Arg: arg}
}

func typeScope(name string) decl.Scope {
	return decl.Scope{Package: "airlines", Type: name}
}

// setBuilder assigns increasing Seq values and distinct sources in the
// order declarations are added.
type setBuilder struct {
	set decl.Set
}

func (b *setBuilder) add(s decl.Scope, a decl.Annotation) *setBuilder {
	n := len(b.set) + 1
	b.set = append(b.set, decl.Declaration{
		Scope:      s,
		Seq:        n * 10,
		Source:     fmt.Sprintf("%s.go:%d", s.Type, n),
		Annotation: a,
	})
	return b
}

func endpoint(method, path string) *decl.Endpoint {
	return &decl.Endpoint{Method: decl.Ptr(method), Path: decl.Ptr(path)}
}

func ext(name, value string) decl.Extension {
	return decl.Extension{Name: decl.Ptr(name), Value: decl.Ptr(value)}
}

func mustResolve(t *testing.T, set decl.Set, opts ...Option) *Result {
	t.Helper()
	res, err := Resolve(set, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotNil(t, res.Document)
	return res
}

func mustOperation(t *testing.T, doc *model.Document, method, path string) *model.Operation {
	t.Helper()
	op := doc.Paths.Operation(method, path)
	require.NotNil(t, op, "no operation %s %s", method, path)
	return op
}

// airlineSet declares a small user API: a type with a path prefix, shared
// responses and tags, and four methods with parameters, bodies and security.
func airlineSet() decl.Set {
	b := &setBuilder{}
	b.add(pkgScope, &decl.OpenAPIDefinition{
		Info: &decl.Info{Title: decl.Ptr("Airlines"), Version: decl.Ptr("1.0.0")},
		Servers: []decl.Server{
			{URL: decl.Ptr("https://api.example.com"), Description: decl.Ptr("production")},
		},
		Tags: []decl.Tag{{Name: decl.Ptr("user"), Description: decl.Ptr("Operations about user")}},
	})
	b.add(pkgScope, &decl.SecurityScheme{
		SecuritySchemeName: decl.Ptr("bearer"),
		Type:               decl.Ptr("http"),
		Scheme:             decl.Ptr("bearer"),
	})
	b.add(pkgScope, &decl.SecurityRequirement{Name: decl.Ptr("bearer")})
	b.add(typeScope("User"), &decl.Schema{
		Type:        decl.Ptr("object"),
		Description: decl.Ptr("A registered user"),
		Properties: []decl.Schema{
			{Name: decl.Ptr("username"), Type: decl.Ptr("string"), Required: decl.Ptr(true)},
			{Name: decl.Ptr("email"), Type: decl.Ptr("string"), Format: decl.Ptr("email")},
		},
	})

	b.add(userScope, &decl.Endpoint{Path: decl.Ptr("/user"), Produces: []string{"application/json"}, Consumes: []string{"application/json"}})
	b.add(userScope, &decl.Tag{Ref: decl.Ptr("user")})
	b.add(userScope, &decl.APIResponses{Value: []decl.APIResponse{
		{ResponseCode: decl.Ptr("200"), Description: decl.Ptr("OK")},
		{ResponseCode: decl.Ptr("404"), Description: decl.Ptr("User not found")},
	}})

	get := methodScope("getUserByName")
	b.add(get, endpoint("GET", "/{username}"))
	b.add(get, &decl.Operation{OperationID: decl.Ptr("getUserByName"), Summary: decl.Ptr("Get user by user name")})
	b.add(argScope("getUserByName", "username"), &decl.Parameter{In: decl.Ptr("path"), Description: decl.Ptr("The name that needs to be fetched")})
	b.add(argScope("getUserByName", "username"), &decl.Schema{Type: decl.Ptr("string")})
	b.add(get, &decl.APIResponse{
		ResponseCode: decl.Ptr("200"),
		Description:  decl.Ptr("The user"),
		Content:      []decl.Content{{Schema: &decl.Schema{Implementation: decl.Ptr("User")}}},
	})

	update := methodScope("updateUser")
	b.add(update, endpoint("put", "/{username}"))
	b.add(update, &decl.Operation{OperationID: decl.Ptr("updateUser"), Summary: decl.Ptr("Updated user")})
	b.add(argScope("updateUser", "username"), &decl.Parameter{In: decl.Ptr("path")})
	b.add(argScope("updateUser", "user"), &decl.Schema{Implementation: decl.Ptr("User")})
	b.add(update, &decl.APIResponse{ResponseCode: decl.Ptr("200"), Description: decl.Ptr("Updated")})
	b.add(update, &decl.Extension{Name: decl.Ptr("x-audit"), Value: decl.Ptr("true")})

	create := methodScope("createUser")
	b.add(create, endpoint("post", ""))
	b.add(create, &decl.Operation{OperationID: decl.Ptr("createUser"), Summary: decl.Ptr("Create user")})
	b.add(argScope("createUser", "user"), &decl.RequestBody{Description: decl.Ptr("Created user object"), Required: decl.Ptr(true)})
	b.add(argScope("createUser", "user"), &decl.Schema{Implementation: decl.Ptr("User")})
	b.add(create, &decl.APIResponses{Value: []decl.APIResponse{{Description: decl.Ptr("successful operation")}}})

	logout := methodScope("logoutUser")
	b.add(logout, endpoint("get", "/logout"))
	b.add(logout, &decl.Operation{OperationID: decl.Ptr("logoutUser")})
	b.add(logout, &decl.SecurityRequirements{Value: []decl.SecurityRequirement{}})
	b.add(logout, &decl.Tags{})
	return b.set
}
