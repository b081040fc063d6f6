package textutil

import (
	"io"

	"golang.org/x/text/encoding/unicode"
)

// ReadAllText reads r to the end and converts known Unicode BOM-encoded
// content into a UTF-8 string. man output is plain UTF-8 in practice, but
// documents piped in by hand occasionally carry a BOM.
func ReadAllText(r io.Reader) (string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return normalizeText(content), nil
}

func normalizeText(content []byte) string {
	if len(content) == 0 {
		return ""
	}

	switch {
	case len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF:
		return string(content[3:])
	case len(content) >= 2 && content[0] == 0xFF && content[1] == 0xFE:
		return decodeUTF16(content, unicode.LittleEndian)
	case len(content) >= 2 && content[0] == 0xFE && content[1] == 0xFF:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(content)
	if err != nil {
		// Fall back to the raw bytes; the pager still shows something.
		return string(content)
	}
	return string(decoded)
}
