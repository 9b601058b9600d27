// Package config holds the settings for one httpie invocation.
//
// Configuration comes only from command-line flags; nothing is read from
// files or the environment. DefaultConfig supplies the baseline and
// Merge layers flag values on top of it. Only --verbose is exposed as a
// flag, so theme, timeout and redirect settings always hold their
// defaults; they live here so the client and renderer are built from one
// place.
package config
