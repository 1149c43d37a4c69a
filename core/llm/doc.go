// Package llm wraps an OpenAI-compatible API behind the small Client
// interface the rest of the application depends on.
//
// # Surfaces
//
// Respond talks to the Responses API and Chat to Chat Completions; callers
// try Respond first and fall back to Chat so self-hosted endpoints that only
// implement the older surface keep working. Embed produces the vectors used
// for both indexing and retrieval, and GenerateImage backs the openai
// illustration provider.
//
// # Degradation
//
// A missing API key is a configured state, not an error at startup. Every
// call returns ErrNoAPIKey and callers degrade (scaffold guides, skipped
// retrieval) instead of failing the request.
package llm
