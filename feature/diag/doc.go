// Package diag exposes the startup probes over HTTP. The same checks that
// run once at boot can be re-run at any time with GET /diag, which makes
// "is the index reachable, is the key configured, did the template load"
// answerable without shelling into the container.
package diag
