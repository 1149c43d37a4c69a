// Package probe runs the advisory startup diagnostics.
//
// # Advisory Semantics
//
// Probes answer "why is this deployment misbehaving" questions before the
// first request arrives: runtime version, working directory, asset search
// path, route wiring, template health, vector index reachability and LLM
// configuration. Every probe failure is logged and recorded in the report,
// and none of them stop the server from launching; a deployment with a
// missing index or an unset API key serves degraded guides rather than
// crash-looping.
//
// The same report is exposed at runtime through the diag feature, so what
// the logs said at startup can be re-checked over HTTP.
//
// # Writing Probes
//
// A probe is a name plus a function returning a one-line detail or an error.
// Panics inside a probe are converted into probe failures, a broken check
// must not take the process down with it.
package probe
