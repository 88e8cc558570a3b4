// Package tags parses and validates cost-allocation tag sets.
//
// Tags arrive on the command line as a single JSON object literal of
// string keys to string values. Validation happens entirely locally;
// no provider call is made until a tag set has been accepted.
package tags
