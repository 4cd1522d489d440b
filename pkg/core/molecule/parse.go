package molecule

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// ParseError is the failure half of structure parsing. It carries enough
// detail for the caller to fix the input; it never carries a partial
// molecule.
type ParseError struct {
	Format Format
	Pos    int
	Detail string
}

func (e *ParseError) Error() string {
	if e.Format == FormatAuto {
		return fmt.Sprintf("parse: %s", e.Detail)
	}
	return fmt.Sprintf("parse %s (at %d): %s", e.Format, e.Pos, e.Detail)
}

// Parse turns a textual molecular notation into a Molecule. With
// FormatAuto the format is detected from the content. Gzipped payloads
// (magic 1f 8b) are transparently decompressed first.
func Parse(content []byte, format Format) (*Molecule, error) {
	if len(content) >= 2 && content[0] == 0x1f && content[1] == 0x8b {
		zr, err := gzip.NewReader(bytes.NewReader(content))
		if err != nil {
			return nil, &ParseError{Format: format, Detail: "bad gzip payload: " + err.Error()}
		}
		defer zr.Close()
		content, err = io.ReadAll(zr)
		if err != nil {
			return nil, &ParseError{Format: format, Detail: "bad gzip payload: " + err.Error()}
		}
	}

	text := string(content)
	if format == FormatAuto {
		format = DetectFormat(text)
	}

	switch format {
	case FormatSMILES:
		return ParseSMILES(text)
	case FormatPDB:
		return ParsePDB(text)
	case FormatXYZ:
		return ParseXYZ(text)
	default:
		return nil, &ParseError{Detail: fmt.Sprintf("unknown format %q", format)}
	}
}

// DetectFormat guesses the notation format. PDB records and XYZ headers
// are unmistakable; everything else is treated as SMILES, whose parser
// produces the diagnostic for genuinely malformed input.
func DetectFormat(text string) Format {
	trimmed := strings.TrimSpace(text)
	for _, rec := range []string{"HEADER", "COMPND", "ATOM  ", "HETATM", "REMARK", "TITLE ", "MODEL "} {
		if strings.HasPrefix(trimmed, rec) {
			return FormatPDB
		}
	}
	if first, _, found := strings.Cut(trimmed, "\n"); found {
		if _, err := strconv.Atoi(strings.TrimSpace(first)); err == nil {
			return FormatXYZ
		}
		return FormatPDB
	}
	return FormatSMILES
}
