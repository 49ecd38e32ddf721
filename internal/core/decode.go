package core

// decode.go implements the encoding fallback for uploaded files.
//
// Gradebook and provider exports arrive in a handful of encodings
// depending on which tool (and which OS) produced them. Rather than
// guessing, decoding tries a fixed ordered list and uses the first
// encoding that succeeds:
//
//  1. UTF-8
//  2. UTF-8 with byte-order mark
//  3. ISO-8859-1
//  4. Windows-1252 (CP1252)

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeAttempt is one entry in the ordered fallback list. fn returns
// the decoded text and whether the encoding applied cleanly.
type decodeAttempt struct {
	name string
	fn   func(data []byte) (string, bool)
}

func decodeAttempts() []decodeAttempt {
	return []decodeAttempt{
		{"utf-8", decodeUTF8},
		{"utf-8-bom", decodeUTF8BOM},
		{"iso-8859-1", decodeCharmapFunc(charmap.ISO8859_1)},
		{"windows-1252", decodeCharmapFunc(charmap.Windows1252)},
	}
}

// Decode converts raw upload bytes to text using the encoding fallback
// list. It returns the decoded text and the name of the encoding that
// succeeded; ok is false when every attempt failed.
func Decode(data []byte) (text string, encoding string, ok bool) {
	for _, attempt := range decodeAttempts() {
		if decoded, applied := attempt.fn(data); applied {
			return decoded, attempt.name, true
		}
	}
	return "", "", false
}

func decodeUTF8(data []byte) (string, bool) {
	if bytes.HasPrefix(data, utf8BOM) {
		return "", false // let the BOM attempt claim it
	}
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeUTF8BOM(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, utf8BOM) {
		return "", false
	}
	rest := data[len(utf8BOM):]
	if !utf8.Valid(rest) {
		return "", false
	}
	return string(rest), true
}

// decodeCharmapFunc adapts a charmap decoder into a decodeAttempt fn.
// The decode fails if any byte maps to the replacement character, so a
// charset that does not define every input byte passes the file on to
// the next attempt instead of silently corrupting it.
func decodeCharmapFunc(cm *charmap.Charmap) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) {
			return "", false
		}
		return string(decoded), true
	}
}
