// Package io reads and writes urban communities.
//
// # Line Format
//
// The configuration format has three sections, always in this order:
//
//	ville(A).
//	ville(B).
//	ville(C).
//	route(A,B).
//	route(B,C).
//	recharge(B).
//
// Names are one or more letters, digits or underscores. A line that does not
// match the current section moves the parser on to the next section, where it
// is examined again; a line that matches no remaining section is an error.
// Blank lines and lines starting with % or # are ignored.
//
// Use [Load] to read a file and [Parse] to read from any io.Reader. Errors are
// INVALID_CONFIG values wrapping a [*ParseError], which names the file, line,
// and section, and in turn wraps the community error that caused it
// (UNKNOWN_CITY, SELF_LOOP, ALREADY_HAS_POINT, ...). On error no community is
// returned.
//
// [Write] emits the same format: cities in community order, each road once
// with its endpoints ordered by name, then the charging points. The output is
// deterministic, so a loaded file saved back is byte-for-byte identical once
// it is in canonical form.
//
// # JSON Format
//
//	{
//	  "cities": [
//	    {"name": "A", "charging_point": false},
//	    {"name": "B", "charging_point": true}
//	  ],
//	  "roads": [
//	    {"from": "A", "to": "B"}
//	  ]
//	}
//
// [ReadJSON] and [ImportJSON] build the community through the same operations
// as the line loader, so the same validation applies. [WriteJSON] and
// [ExportJSON] write it back.
//
// [LoadFile] and [SaveFile] pick the format from the file extension.
package io
