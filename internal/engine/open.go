package engine

import (
	"log/slog"

	"github.com/kk-code-lab/vat/internal/analyzer"
	"github.com/kk-code-lab/vat/internal/source"
)

// Open maps the file at path and constructs the engine the analyzer picks
// for it. BOM-marked content is transcoded to UTF-8 up front; everything
// else stays zero-copy on the mapping.
func Open(path string, tabWidth int) (Engine, error) {
	src, err := source.Open(path)
	if err != nil {
		return nil, err
	}

	res := analyzer.Detect(path, src.Bytes())
	if res.Encoding != analyzer.EncodingPlain {
		decoded := analyzer.Normalize(src.Bytes(), res.Encoding)
		if err := src.Close(); err != nil {
			return nil, err
		}
		src = source.FromBytes(decoded)
	}
	slog.Debug("engine selected", "path", path, "engine", res.Kind.String(), "bytes", src.Len())

	switch res.Kind {
	case analyzer.KindJSONL:
		return NewJSONLEngine(src), nil
	case analyzer.KindLog:
		return NewLogEngine(src), nil
	case analyzer.KindHex:
		return NewHexEngine(src), nil
	default:
		return NewTextEngine(src, tabWidth), nil
	}
}
