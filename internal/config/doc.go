// Package config holds the few knobs the branch exploration engine
// exposes to an embedding test harness: a package-level default,
// overridable by an environment variable, read once at process start.
// There is no on-disk configuration surface, unlike the rest of this
// codebase's config package: the engine's state does not outlive one
// test invocation, so there is nothing to persist or reload.
package config
