// Package bedrock constructs AWS clients for the Bedrock control plane.
//
// It resolves ambient credentials and region into explicit client
// values at construction so nothing downstream reads process globals.
// Supports shared-config profile selection and optional cross-account
// role assumption via STS.
package bedrock
