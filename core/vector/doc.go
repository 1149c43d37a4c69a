// Package vector stores document chunk embeddings and answers similarity
// queries over them.
//
// # Backends
//
// Two Store implementations exist. The embedded store keeps points in the
// application database and ranks candidates in memory; it needs no extra
// infrastructure and is the default. The qdrant store talks to a Qdrant
// instance over its REST API for deployments that already run a cluster.
//
// Both backends share the collection abstraction: EnsureCollection is called
// once with the embedding dimensionality before the first write, and points
// carry a payload of source document name plus chunk text.
//
// # Usage
//
//	store := vector.NewEmbeddedStore(db, cfg.Vector.Collection)
//	hits, err := store.Search(ctx, queryVec, 8, &vector.Filter{SourceContains: "printer"})
package vector
