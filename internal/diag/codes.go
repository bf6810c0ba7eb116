package diag

import (
	"fmt"
)

// Code identifies a diagnostic class. Ranges are reserved per phase so IDs
// stay stable as the toolchain grows.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// Lexical (1000–1999). The scanner itself raises only LexUnknownChar;
	// everything else it absorbs by design.
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// I/O (4000–4999).
	IOLoadFileError Code = 4001

	// Project (5000–5999).
	PrjManifestError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:      "unknown diagnostic",
	LexInfo:          "lexical note",
	LexUnknownChar:   "unrecognized character",
	IOLoadFileError:  "failed to load source file",
	PrjManifestError: "invalid project manifest",
}

// ID returns the stable, range-prefixed identifier for the code.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description for the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
