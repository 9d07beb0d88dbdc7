// Package config defines the format-agnostic model of a simulation
// manifest, along with the Loader interface for producing it from a
// declarative source.
//
// The `config.Manifest` is the single source of truth for the `plan`
// package. Concrete implementations of the Loader interface, such as
// for HCL, are provided in separate packages.
package config
