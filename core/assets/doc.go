// Package assets locates templates, documents and static files through a
// configurable search path.
//
// # Search Path
//
// The search path lives in the GUIDEGEN_PATH environment variable, using the
// platform list separator. On startup the application root is appended to the
// path if it is not already present; entries placed there by the operator are
// never removed or reordered, so deployments can shadow bundled assets with
// their own copies.
//
// # Lookup
//
// Resolve and ResolveDir walk the path in order and return the first match:
//
//	if path, ok := assets.Resolve("templates/guide.html"); ok {
//		tmpl, err := template.ParseFiles(path)
//		...
//	}
//
// Callers are expected to fall back to embedded copies when lookup fails.
package assets
