// Package ingest turns edge-list sources into []network.Edge.
//
// A Source is one of three variants:
//
//	RawEdgeList     already-parsed [person, group] pairs
//	SourcePath      one CSV file, one "person,group" record per line
//	SourcePathList  several CSV files, concatenated in order
//
// Files are decoded as UTF-8; a leading byte-order mark is dropped. Fields
// are trimmed and blank lines are skipped. Any record that does not have
// exactly two non-empty fields is rejected with ErrMalformedRecord.
package ingest
