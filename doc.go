// Package rolodex is a lightweight index for the subpackages in this module.
//
// This root package is documentation-only. Import specific subpackages to use
// concrete helpers.
//
// Available subpackages:
//   - github.com/spachava753/rolodex/contact
//     Canonical W3C-style contact document model with a JSON face.
//   - github.com/spachava753/rolodex/provider
//     Flat attribute-store wire contract: kinds, columns, type codes, and
//     the insert-operation batch model.
//   - github.com/spachava753/rolodex/convert
//     The bidirectional conversion engine between contact documents and
//     attribute-store rows.
//   - github.com/spachava753/rolodex/sqlitestore
//     SQLite-backed attribute store and transactional batch executor.
//   - github.com/spachava753/rolodex/mailbox
//     Contact harvesting from an IMAP mailbox and vCard sharing over SMTP.
//
// Discovery workflow for agents:
//   - Run: go doc github.com/spachava753/rolodex
//   - Then drill in with:
//     go doc github.com/spachava753/rolodex/convert
//     go doc github.com/spachava753/rolodex/sqlitestore
//     go doc github.com/spachava753/rolodex/mailbox
package rolodex
