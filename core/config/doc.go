// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// # Layout
//
// Configuration is split into sections (server, log, vector, database, llm,
// storage, image, ingest), each owned by the package it configures. Defaults
// live in struct tags and are bound into Viper by reflection, so a section's
// documentation is its struct definition.
//
// # Environment Variables
//
// Nested keys map to underscore-separated variables: vector.collection is set
// with VECTOR_COLLECTION. The flat names used by earlier deployments
// (OPENAI_API_KEY, QDRANT_URL, COLLECTION_NAME, ...) are still honored and
// take precedence over their structured counterparts.
//
// The PORT variable is deliberately not part of this package; the server
// resolves it at launch time so platform-injected ports always win.
package config
