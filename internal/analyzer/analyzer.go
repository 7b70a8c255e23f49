// Package analyzer decides which engine views a file, by extension first
// and content sniffing second, and normalizes BOM-marked Unicode content to
// UTF-8 for the line engines.
package analyzer

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
)

// Kind names the engine a file should open with.
type Kind int

const (
	KindText Kind = iota
	KindJSONL
	KindLog
	KindHex
)

func (k Kind) String() string {
	switch k {
	case KindJSONL:
		return "jsonl"
	case KindLog:
		return "log"
	case KindHex:
		return "hex"
	default:
		return "text"
	}
}

// Encoding is the detected byte encoding of a text file.
type Encoding int

const (
	EncodingPlain Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

// Result is the outcome of detection. Content must be passed through
// Normalize before line indexing when Encoding is not plain.
type Result struct {
	Kind     Kind
	Encoding Encoding
}

const (
	sniffSampleSize              = 4096
	sniffSampleLines             = 50
	nonPrintableThresholdPercent = 30
)

var jsonlExtensions = map[string]struct{}{
	".jsonl":  {},
	".ndjson": {},
}

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".apk": {}, ".avi": {}, ".bin": {}, ".bmp": {}, ".bz2": {},
	".class": {}, ".dat": {}, ".dll": {}, ".doc": {}, ".docx": {}, ".dylib": {},
	".exe": {}, ".flac": {}, ".gif": {}, ".gz": {}, ".ico": {}, ".iso": {},
	".jar": {}, ".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {}, ".mp3": {},
	".mp4": {}, ".ogg": {}, ".otf": {}, ".pdf": {}, ".png": {}, ".ppt": {},
	".pptx": {}, ".psd": {}, ".so": {}, ".tar": {}, ".tgz": {}, ".ttf": {},
	".wav": {}, ".wasm": {}, ".woff": {}, ".woff2": {}, ".xls": {}, ".xlsx": {},
	".xz": {}, ".zip": {},
}

var logLinePattern = regexp.MustCompile(
	`(?i)(^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2})|(\b(ERROR|WARN|WARNING|INFO|DEBUG|TRACE)\b)`)

// Detect picks the engine for path based on its extension and the first
// few kilobytes of content.
func Detect(path string, content []byte) Result {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := jsonlExtensions[ext]; ok {
		return Result{Kind: KindJSONL, Encoding: detectEncoding(content)}
	}
	if ext == ".log" {
		return Result{Kind: KindLog, Encoding: detectEncoding(content)}
	}
	if _, ok := binaryExtensions[ext]; ok {
		return Result{Kind: KindHex}
	}

	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	enc := detectEncoding(sample)
	if enc != EncodingPlain {
		return Result{Kind: KindText, Encoding: enc}
	}
	if looksBinary(sample) {
		return Result{Kind: KindHex}
	}
	return Result{Kind: sniffTextKind(sample)}
}

// looksBinary applies the NUL / non-printable heuristics to a plain sample.
func looksBinary(sample []byte) bool {
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return true
	}
	if utf8.Valid(sample) {
		return false
	}
	printable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		}
	}
	if printable == 0 {
		return true
	}
	return (len(sample)-printable)*100/len(sample) >= nonPrintableThresholdPercent
}

// sniffTextKind distinguishes JSONL and log content without an extension
// hint. The last sample line is dropped when the sample was cut mid-line.
func sniffTextKind(sample []byte) Kind {
	lines := strings.Split(string(sample), "\n")
	if len(sample) == sniffSampleSize && len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > sniffSampleLines {
		lines = lines[:sniffSampleLines]
	}

	total, jsonObjects, logLike := 0, 0, 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++
		if strings.HasPrefix(trimmed, "{") && gjson.Valid(trimmed) {
			jsonObjects++
		}
		if logLinePattern.MatchString(trimmed) {
			logLike++
		}
	}
	if total == 0 {
		return KindText
	}
	if jsonObjects*100/total >= 80 {
		return KindJSONL
	}
	if logLike*100/total >= 60 {
		return KindLog
	}
	return KindText
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

func detectEncoding(content []byte) Encoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return EncodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingPlain
}

// Normalize decodes BOM-marked content to UTF-8. For any non-plain
// encoding the result is freshly allocated and never aliases content, so
// callers may release the backing mapping afterwards.
func Normalize(content []byte, enc Encoding) []byte {
	switch enc {
	case EncodingUTF8BOM:
		return bytes.Clone(content[3:])
	case EncodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return content
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) []byte {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	decoded, err := decoder.Bytes(content)
	if err != nil {
		return bytes.Clone(content)
	}
	return decoded
}
