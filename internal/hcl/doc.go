// Package hcl implements the config.Loader interface for manifests
// written in HCL. It discovers .hcl files, decodes them against the
// schema package, and translates the result into the format-agnostic
// config model, rendering the post-simulation command along the way.
package hcl
