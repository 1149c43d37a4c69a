// Package ingest loads documents into the vector index the guide generator
// retrieves from.
//
// Plain text and Word documents are read from a docs directory, split into
// chunks, embedded and upserted with their source file name as payload.
// Unreadable or empty documents are skipped with a reason, one bad file
// never aborts a run. The package also answers read-only questions about
// the index: chunk counts per source and a reconcile report of drift
// between the docs directory and what is actually indexed.
//
// Two chunkers are available. The pack chunker repacks lines into blocks of
// roughly equal size and is the default; the paragraph chunker splits on
// blank lines and carries a tail of the previous chunk into the next, which
// suits prose manuals with long paragraphs.
package ingest
