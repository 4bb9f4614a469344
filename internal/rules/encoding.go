package rules

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const replacementUTF8 = "�"

// encodingRule flags files whose byte content is not valid under the
// configured expected encoding. Malformed content is a hard correctness
// signal and always carries the maximum severity.
type encodingRule struct {
	name string
	// enc is nil for UTF-8, which takes a direct validation path.
	enc encoding.Encoding
	// replacement is U+FFFD under enc, when the encoding can represent it.
	// Decoders substitute U+FFFD for malformed sequences instead of failing,
	// so validation compares replacement counts before and after decoding.
	replacement []byte
}

func newEncodingRule(name string) (*encodingRule, error) {
	normalized := strings.ToLower(name)
	if normalized == "utf-8" || normalized == "utf8" {
		return &encodingRule{name: "utf-8"}, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}

	r := &encodingRule{name: normalized, enc: enc}
	if encoded, err := enc.NewEncoder().Bytes([]byte(replacementUTF8)); err == nil {
		r.replacement = encoded
	}
	return r, nil
}

func (r *encodingRule) ID() string {
	return "encoding"
}

func (r *encodingRule) Applicable(Target) bool {
	return true
}

func (r *encodingRule) Evaluate(target Target) []Finding {
	if r.enc == nil {
		return r.evaluateUTF8(target)
	}

	decoded, err := r.enc.NewDecoder().Bytes(target.Content)
	if err != nil {
		return []Finding{{
			RuleID:   r.ID(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("content is not valid %s: %v", r.name, err),
		}}
	}

	// A replacement rune in the output that the input does not account for
	// marks a malformed sequence the decoder papered over.
	allowed := 0
	if len(r.replacement) > 0 {
		allowed = bytes.Count(target.Content, r.replacement)
	}
	if bytes.Count(decoded, []byte(replacementUTF8)) > allowed {
		return []Finding{{
			RuleID:   r.ID(),
			Severity: SeverityError,
			Message:  fmt.Sprintf("content is not valid %s: malformed byte sequence", r.name),
		}}
	}
	return nil
}

func (r *encodingRule) evaluateUTF8(target Target) []Finding {
	if utf8.Valid(target.Content) {
		return nil
	}

	// Locate the first malformed sequence for the report.
	offset := 0
	for content := target.Content; len(content) > 0; {
		ch, size := utf8.DecodeRune(content)
		if ch == utf8.RuneError && size == 1 {
			break
		}
		content = content[size:]
		offset += size
	}

	return []Finding{{
		RuleID:     r.ID(),
		Severity:   SeverityError,
		Message:    fmt.Sprintf("content is not valid utf-8, first malformed byte at offset %d", offset),
		ByteOffset: offset,
	}}
}
