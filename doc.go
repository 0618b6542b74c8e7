// Package gigasheet is a lightweight, idiomatic Go client for Gigasheet.com.
//
// The library mirrors the feature-set of Gigasheet's Python client while
// feeling natural in Go:
//
//   - Upload local files, io.Readers, or world-readable URLs into sheets.
//   - Poll asynchronous jobs (uploads, appends, exports) until they finish.
//   - Query and filter rows, count them, and deduplicate by column.
//   - Map column names to column IDs and manage sheet metadata.
//   - Create exports and obtain presigned download URLs.
//   - Share sheets with collaborators, with read or write access.
//
// # Authentication
//
// At runtime the client resolves credentials in this order:
//
//  1. Environment variables
//     GIGASHEET_API_KEY, GIGASHEET_API_URL (optional)
//  2. A profile explicitly requested via `GIGASHEET_PROFILE`
//  3. A profile marked `active = true` in `~/.gigasheet.toml`
//
// See `config.go` for the resolution logic.
//
// # Asynchronous jobs
//
// Uploads, appends, and exports are asynchronous on the Gigasheet side.
// The returned handle identifies the job; poll it with
// Client.WaitForFile until it reaches a terminal state. Note that append
// jobs create transient sheets which the backend deletes on completion,
// so pass WaitOptions.DeletionIsSuccess when waiting on them.
//
// For runnable examples, see the examples directory of this repository.
package gigasheet
