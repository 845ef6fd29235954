// Package decl defines declaration records, the input of the resolver.
//
// A declaration record binds one annotation instance to the scope that
// declared it (package, type, method or method argument), together with a
// stable ordering key (Seq) and a human-readable source location. Records
// may come from any discovery mechanism: a YAML file ([LoadFile]),
// directive comments in Go source (package scan), or plain Go code.
//
// # Presence tracking
//
// Annotation fields are pointers so an unset field (nil) never overrides a
// set one during merging. Slices distinguish nil (absent: inherit from the
// enclosing scope) from non-nil empty (explicitly empty: contribute nothing
// and stop inheritance). Annotation sources that cannot express nullability
// use default sentinels instead: the empty string and the enum value
// "DEFAULT". [Normalize] turns those into unset before resolution.
//
// # Example
//
//	set := decl.Set{
//	    {
//	        Scope:      decl.Scope{Package: "airlines", Type: "UserResource"},
//	        Seq:        1,
//	        Annotation: &decl.APIResponse{ResponseCode: decl.Ptr("200"), Description: decl.Ptr("OK")},
//	    },
//	}
package decl
