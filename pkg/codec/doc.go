// Package codec provides fixed-width record serialization and
// deserialization for registryd.
//
// The codec package implements the quarterly corporate-extract record
// format: one entity per line, every line exactly the layout's declared
// total width (1440 characters in the default geometry), each field
// occupying a fixed byte range and padded with spaces to fill unused width.
//
// # Record Format
//
// A record is a fixed head region followed by a repeating officer tail:
//
//	[head fields at declared offsets][officer stride × N][space filler]
//
// Head fields cover the document number, entity name, status code, entity
// type, principal and mailing addresses, filing date, registered agent and
// property manager blocks. The officer tail starts at the first byte after
// the head region and holds up to the layout's maximum count of fixed-size
// strides. A stride whose title field is entirely blank terminates the
// list; officers are never sparse.
//
// # Decoding
//
// Decode requires the input line to be exactly the declared total width and
// reports a FormatError with KindLengthMismatch otherwise. Field values are
// trimmed of trailing padding only, so embedded spaces survive. An
// unrecognized status code decodes to StatusUnknown rather than failing,
// since registries introduce new codes over time.
//
// # Encoding
//
// Encode is total: oversized values are hard-truncated to their column
// width and short values are space-padded, so the output line is always
// exactly the declared total width regardless of input. For entities whose
// values fit their columns and whose officer count is within the maximum,
// Decode(Encode(e)) reproduces e up to trailing-space trimming.
//
// # Thread Safety
//
// RecordCodec is stateless; Decode and Encode are independent per record
// and safe for concurrent use across a batch.
package codec
