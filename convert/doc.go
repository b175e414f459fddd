// Package convert is the bidirectional conversion engine between canonical
// contact documents and the flat, kind-tagged attribute rows of the external
// address-book provider.
//
// Read path: Plan selects the columns and kind tags to fetch for a requested
// field set, and Fold consumes the resulting row stream (grouped by contact)
// back into one nested contact.Document per contact.
//
// Write path: BuildOps decomposes one contact.Document into an ordered batch
// of insert operations whose child rows reference the contact-creation insert
// positionally, ready for a provider.Executor to apply atomically.
//
// Both directions share per-kind label/code tables with a custom escape
// hatch; see DecodeType and EncodeType.
//
// Conversion is best-effort translation, not validation: malformed or missing
// data degrades to "field absent" rather than failing a document. The engine
// is synchronous and touches only immutable package-level tables, so any
// number of conversions may run concurrently.
package convert
