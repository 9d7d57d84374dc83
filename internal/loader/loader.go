// Package loader reads trash-scheme source files for the `load`
// builtin and for script-mode execution, detecting a leading BOM the
// same way the teacher's interpreter package does for its own script
// files.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ScriptExtension is the mandatory file extension for script-mode
// invocation (§6 "Script mode").
const ScriptExtension = ".trash"

// CheckExtension returns an error if path does not end in
// ScriptExtension — a mismatch is fatal per §6.
func CheckExtension(path string) error {
	if filepath.Ext(path) != ScriptExtension {
		return fmt.Errorf("%s: script files must have a %s extension", path, ScriptExtension)
	}
	return nil
}

// ReadSource reads path and decodes it to a UTF-8 string, detecting a
// UTF-8, UTF-16LE, or UTF-16BE byte-order mark. A file without a BOM
// is used as-is when it is valid UTF-8; otherwise each byte is taken
// as one rune (U+0000–U+00FF).
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:]), nil
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	utf8Data, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16: %w", err)
	}
	if len(utf8Data) >= 3 && utf8Data[0] == 0xEF && utf8Data[1] == 0xBB && utf8Data[2] == 0xBF {
		utf8Data = utf8Data[3:]
	}
	result := bytes.TrimPrefix(utf8Data, []byte("﻿"))
	return string(result), nil
}
