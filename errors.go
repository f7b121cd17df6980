package imapparser

import (
	"fmt"
)

// ScanKind classifies a ScanError so callers can distinguish benign
// retry-after-feed states from fatal framing errors without parsing
// the message text.
type ScanKind int

const (
	ScanUnknown ScanKind = iota
	ScanIncompleteLine
	ScanIncompleteLiteral
	ScanConsumeOverflow
	ScanLiteralOverflow
)

func (k ScanKind) String() string {
	switch k {
	case ScanIncompleteLine:
		return "incomplete-line"
	case ScanIncompleteLiteral:
		return "incomplete-literal"
	case ScanConsumeOverflow:
		return "consume-overflow"
	case ScanLiteralOverflow:
		return "literal-overflow"
	default:
		return "unknown"
	}
}

// Benign reports whether the error is a benign "feed more and retry"
// state (ScanIncompleteLine, ScanIncompleteLiteral) or a fatal framing
// error (ScanConsumeOverflow, ScanLiteralOverflow).
func (k ScanKind) Benign() bool {
	return k == ScanIncompleteLine || k == ScanIncompleteLiteral
}

// ScanError reports a failure in the Scanner's line-framing logic.
type ScanError struct {
	Kind ScanKind
	msg  string
}

func (e ScanError) Error() string { return "imapparser: " + e.msg }

func scanErrorf(kind ScanKind, format string, v ...interface{}) error {
	return ScanError{Kind: kind, msg: fmt.Sprintf(format, v...)}
}

// ParseError reports a failure in the response grammar parser.
//
// Offset is the byte position within the parsed buffer where the error
// was detected, and Window is a short slice of the buffer surrounding
// that offset, useful for diagnostics without re-threading the whole
// line through a logger.
type ParseError struct {
	msg    string
	Offset int
	Window []byte
}

func (e ParseError) Error() string {
	if len(e.Window) == 0 {
		return fmt.Sprintf("imapparser: %s (at %d)", e.msg, e.Offset)
	}
	return fmt.Sprintf("imapparser: %s (at %d, near %q)", e.msg, e.Offset, e.Window)
}

func (p *parser) errorf(format string, v ...interface{}) error {
	return p.annotate(fmt.Errorf(format, v...))
}

// annotate wraps err in a ParseError carrying the parser's current cursor
// position and a short window of surrounding bytes, unless err is already
// a ParseError (propagation never re-annotates; the innermost failure's
// context is the useful one).
func (p *parser) annotate(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(ParseError); ok {
		return pe
	}
	const radius = 16
	lo := p.pos - radius
	if lo < 0 {
		lo = 0
	}
	hi := p.pos + radius
	if hi > len(p.buf) {
		hi = len(p.buf)
	}
	return ParseError{msg: err.Error(), Offset: p.pos, Window: p.buf[lo:hi]}
}

// TaggedError pairs a tagged response's tag with the error encountered
// while parsing the rest of the response after the tag (status keyword,
// resp-text, CRLF), mirroring how a caller typically wants to
// report a failure: "which outstanding command's response broke, and how."
type TaggedError struct {
	Tag string
	Err error
}

func (te TaggedError) Error() string {
	errStr := "<nil>"
	if te.Err != nil {
		errStr = te.Err.Error()
	}
	return fmt.Sprintf("imapparser: %s: %s", te.Tag, errStr)
}
