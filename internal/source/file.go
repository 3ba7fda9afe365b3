package source

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/dshills/stitch/internal/splice"
)

const (
	binarySniffSampleSize        = 4096
	nonPrintableThresholdPercent = 30
)

// Errors for rejected input. ErrBinary is returned by callers that
// refuse binary-looking files; loading itself only flags them.
var (
	ErrTooLarge = errors.New("source exceeds 4 GiB limit")
	ErrBinary   = errors.New("source looks binary")
)

// Encoding identifies the on-disk encoding of a loaded file.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8 bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// File is a loaded input, normalized to UTF-8.
type File struct {
	Path     string
	Content  string
	Encoding Encoding

	// Binary reports that the content looks binary. The caller decides
	// whether to proceed anyway.
	Binary bool
}

// Load reads and normalizes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	f, err := FromBytes(path, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// FromBytes normalizes already-read content. The name is recorded as the
// file's path and used only for reporting.
func FromBytes(name string, data []byte) (*File, error) {
	if uint64(len(data)) > uint64(splice.MaxTextLen) {
		return nil, ErrTooLarge
	}

	enc := detectEncoding(data)
	content, err := normalize(data, enc)
	if err != nil {
		return nil, err
	}
	if uint64(len(content)) > uint64(splice.MaxTextLen) {
		return nil, ErrTooLarge
	}

	// A BOM marks the content as text; only sniff BOM-less input.
	binary := enc == EncodingUTF8 && !isText([]byte(content))

	return &File{Path: name, Content: content, Encoding: enc, Binary: binary}, nil
}

// Encode converts result text back to the file's original encoding,
// restoring the BOM where one was present.
func (f *File) Encode(text string) ([]byte, error) {
	switch f.Encoding {
	case EncodingUTF8BOM:
		out := make([]byte, 0, len(text)+3)
		out = append(out, 0xEF, 0xBB, 0xBF)
		return append(out, text...), nil
	case EncodingUTF16LE:
		return encodeUTF16(text, unicode.LittleEndian)
	case EncodingUTF16BE:
		return encodeUTF16(text, unicode.BigEndian)
	default:
		return []byte(text), nil
	}
}

func detectEncoding(data []byte) Encoding {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(data) >= 2 {
		switch {
		case data[0] == 0xFF && data[1] == 0xFE:
			return EncodingUTF16LE
		case data[0] == 0xFE && data[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

func normalize(data []byte, enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8BOM:
		return string(data[3:]), nil
	case EncodingUTF16LE:
		return decodeUTF16(data, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(data, unicode.BigEndian)
	default:
		return string(data), nil
	}
}

func decodeUTF16(data []byte, endian unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode utf-16: %w", err)
	}
	return string(out), nil
}

func encodeUTF16(text string, endian unicode.Endianness) ([]byte, error) {
	encoder := unicode.UTF16(endian, unicode.UseBOM).NewEncoder()
	out, err := encoder.Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode utf-16: %w", err)
	}
	return out, nil
}

// isText reports whether content looks like text rather than binary.
// A NUL byte in the head of the file is the strongest binary signal;
// beyond that, valid UTF-8 passes and mostly-printable content passes.
func isText(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > binarySniffSampleSize {
		sample = sample[:binarySniffSampleSize]
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}
