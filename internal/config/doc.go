// Package config assembles invocation configuration from flags,
// environment, and an optional YAML file.
//
// Precedence, lowest to highest: built-in defaults, ~/.config/aipctl.yaml,
// AWS_REGION/AWS_PROFILE environment, command-line flags. The resolved
// Config is passed explicitly into the provisioner; nothing downstream
// reads process globals.
package config
