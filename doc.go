// Package vipani provides the bookkeeping core for a single-tenant
// consignment-trading shop. It is designed to be local-first and auditable:
// the entire state of the business is one JSON document (the Book) that
// lives on disk and is replaced wholesale on every operation.
//
// The core functionalities include:
//   - Intake: recording incoming inventory manifests ("tokens") from sellers,
//     one line item per batch of identical goods.
//   - Selling: splitting a token line item into a sold portion and, for
//     partial sales, a remaining available portion, with the purchase margin
//     baked in at sale time.
//   - Financial aggregation: deriving per-party receivables and payables,
//     daily ledgers, and a consolidated balance sheet from the flat list of
//     sold items.
//   - License gating: a time-boxed license that suspends non-admin access
//     when expired.
//   - Directory and account management: trading parties, the item catalog,
//     and user accounts with salted-hash credentials.
//   - Persistence: encoding and decoding the book to a stable, human-readable
//     JSON form that doubles as the backup format.
//
// Every operation is a pure function over the book: it validates its inputs
// and either returns a new book or an error leaving the previous book
// untouched. Persistence is the caller's concern.
//
// This package serves as the foundational logic for the `vmg` command-line
// tool.
package vipani
