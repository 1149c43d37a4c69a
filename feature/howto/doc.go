// Package howto implements guide generation, the core feature of the
// service. A question is answered with a structured how-to guide: context
// chunks are retrieved from the vector index, a language model writes the
// guide as JSON against a fixed schema, and each step is decorated with an
// illustration.
//
// Generation never fails a request. Without a vector store guides are
// written from general knowledge, and when the model is unreachable or
// returns something unparseable a fallback scaffold guide is served instead.
// Requests that already carry steps skip generation entirely and only pass
// through the illustration pipeline.
//
// Guides are served as JSON or rendered to a standalone HTML page. The page
// template ships embedded in the binary and can be overridden by placing
// templates/guide.html on the asset search path.
package howto
