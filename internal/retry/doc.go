// Package retry provides exponential backoff retry logic for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable max
// attempts, initial delay, and maximum delay. It is used for Bedrock
// control-plane calls that fail with throttling. Errors wrapped with
// [Fatal] are never retried.
package retry
