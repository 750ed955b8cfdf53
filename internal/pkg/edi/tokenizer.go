package edi

import (
	"clearclaim-service/internal/pkg/exceptions"
	"strings"
)

// Delimiters holds the four X12 control characters. They are fixed per
// trading partner, not sniffed from the file.
type Delimiters struct {
	Segment    byte
	Element    byte
	Subelement byte
	Repetition byte
}

var DefaultDelimiters = Delimiters{
	Segment:    '~',
	Element:    '*',
	Subelement: ':',
	Repetition: '^',
}

// Segment is one X12 segment split into its elements. The first element is
// the segment tag (CLP, NM1, ...).
type Segment struct {
	Elements []string
}

func (s Segment) Tag() string {
	if len(s.Elements) == 0 {
		return ""
	}
	return s.Elements[0]
}

// Element returns the element at index i, or an empty string when the
// segment has fewer elements. Positional handlers rely on this so that
// missing trailing elements read as blanks instead of panicking.
func (s Segment) Element(i int) string {
	if i < 0 || i >= len(s.Elements) {
		return ""
	}
	return s.Elements[i]
}

func (s Segment) Join(delims Delimiters) string {
	return strings.Join(s.Elements, string(delims.Element))
}

// Subelements splits the element at index i on the subelement separator.
func (s Segment) Subelements(i int, delims Delimiters) []string {
	return strings.Split(s.Element(i), string(delims.Subelement))
}

// Tokenize splits raw X12 text into ordered segments. Empty segments
// produced by trailing or duplicated terminators are dropped; element order
// inside a segment is preserved, including empty interior elements. An input
// that is empty after trimming is a structural error, not an empty success.
func Tokenize(raw string, delims Delimiters) ([]Segment, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, exceptions.ErrEDIEmptyInput(nil)
	}

	var segments []Segment
	for _, chunk := range strings.Split(trimmed, string(delims.Segment)) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		segments = append(segments, Segment{Elements: strings.Split(chunk, string(delims.Element))})
	}
	if len(segments) == 0 {
		return nil, exceptions.ErrEDIEmptyInput(nil)
	}
	return segments, nil
}

// JoinSegments renders segments back to X12 text with a single terminator
// after every segment.
func JoinSegments(segments []Segment, delims Delimiters) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(seg.Join(delims))
		sb.WriteByte(delims.Segment)
	}
	return sb.String()
}
