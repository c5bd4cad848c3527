// Package touchstone reads and writes Touchstone files (*.sNp), the
// de facto standard text interchange format for frequency-dependent
// network parameter data, in both the Version-1.0 and Version-2.0
// dialects.
//
// 🚀 What is covered?
//
//   - Decoder — a streaming, pull-based parser: the header is consumed
//     eagerly, records are yielded one (frequency, matrix) pair at a
//     time via Read, or materialized into a Document via ReadAll
//   - Encoder — the inverse: a header written once (explicitly or on
//     the first Write), records pushed one at a time or a whole
//     Document at once, and the Version-2.0 [End] terminator emitted on
//     Close
//   - Document — a network.Collection plus everything else a file
//     carries: reference resistance/reactance, per-port references,
//     noise parameter data and free-text information
//
// Grammar notes:
//
//   - `!` starts a comment running to end of line; blank and
//     comment-only lines may appear anywhere between tokens.
//   - The first significant character selects the dialect: `#` is a
//     Version-1.0 option line, `[` must open `[Version] 2.0`.
//   - Version-1.0 infers the port count from the first data record and
//     detects continuation lines by token-count parity with one line of
//     lookahead; Version-2.0 sizes records from the header keywords and
//     supports Upper/Lower triangular matrix storage.
//
// Errors carry the 1-based physical line number and the grammar
// section via *ParseError; the underlying sentinel is reachable with
// errors.Is. The first error aborts the read — nothing is skipped or
// guessed.
//
// ⚙️ Usage:
//
//	dec, err := touchstone.NewDecoder(f)
//	...
//	doc, err := dec.ReadAll(ctx)
//
//	// ... manipulate doc.Networks ...
//
//	err = touchstone.WriteDocument(out, doc)
package touchstone
