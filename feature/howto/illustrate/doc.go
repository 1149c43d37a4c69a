// Package illustrate generates and caches per-step guide illustrations.
//
// Every illustration is addressed by a content key derived from the step
// text, the house style and the provider, so identical steps across guides
// share one image and a style change invalidates the whole cache at once.
// Images land on local disk under the static file root; an optional object
// storage mirror lets fresh replicas rehydrate images generated elsewhere.
//
// Generation goes through a Provider, either the configured language model
// endpoint or the Stability image API. Concurrent requests for the same key
// are collapsed into a single provider call.
package illustrate
