// Package provisioner implements the inference-profile provisioning workflow.
//
// A Provisioner translates one CLI invocation into at most one remote
// mutation against the Bedrock control plane: creating a tagged
// application inference profile (admin path) or looking up existing
// profiles by tag set (client path). It holds no durable local state;
// everything durable lives provider-side.
//
// Creation is check-then-create: an existing profile with the same
// name is reported as a conflict before any mutation is issued, and
// the create call itself carries a client request token so a retried
// create cannot double-provision.
package provisioner
