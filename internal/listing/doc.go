// Package listing parses the text produced by the Windows tree command.
//
// A listing is a plain text file in which every entry sits on its own line,
// drawn with box-drawing connectors:
//
//	D:.
//	├─docs
//	│  └─guide
//	│          intro.md
//	└─src
//	        main.go
//
// Parse rebuilds the slash-joined relative path of every entry from the
// indentation of the connectors and sorts the entries into a directory set
// and a file set.
//
// Key properties:
//   - Banner and prompt lines are ignored (see Rules)
//   - An entry whose final segment contains a "." is a file, anything else a
//     directory. Dotted directory names such as ".git" are therefore counted
//     as files.
//   - Repeated paths are counted once
package listing
