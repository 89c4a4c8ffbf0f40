// Package config loads and validates the warbler server configuration.
//
// Configuration values come from three sources, merged in priority order:
//
//  1. environment variables (caarlos0/env struct tags),
//  2. command-line flags,
//  3. an optional JSON file named by either of the above.
//
// Built-in defaults fill any field still unset after the merge. Merging is
// performed with dario.cat/mergo, so a value from a higher-priority source
// always wins.
package config
