package fastj

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"unicode"
)

// Parse builds a Record from a title (without the leading '>') and a
// sequence string.
//
// The title is split on its first run of white space into id and
// description. A title whose first token starts with '{' has no id and is
// read as metadata, with the white space run after that token dropped. An
// empty description or a JSON null leaves Metadata nil. Any JSON value is
// accepted as metadata; only text that is not valid JSON is an error.
func Parse(title, sequence string) (Record, error) {
	id, description := splitTitle(title)
	if strings.HasPrefix(id, "{") {
		id, description = "", id+description
	}
	description = strings.TrimSpace(description)

	var metadata any
	if description != "" {
		md, err := decodeMetadata(description)
		if err != nil {
			return Record{}, err
		}
		metadata = md
	}
	return Record{ID: id, Metadata: metadata, Sequence: sequence}, nil
}

// ParsePair is Parse for a tokenized pair.
func ParsePair(p RawPair) (Record, error) {
	return Parse(p.Title, p.Sequence)
}

func splitTitle(title string) (head, rest string) {
	i := strings.IndexFunc(title, unicode.IsSpace)
	if i < 0 {
		return title, ""
	}
	return title[:i], strings.TrimLeftFunc(title[i:], unicode.IsSpace)
}

func decodeMetadata(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &MetadataDecodeError{Text: text, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &MetadataDecodeError{Text: text, Err: errors.New("trailing data after JSON value")}
	}
	return v, nil
}

// HasMetadata reports whether md counts as present when formatting. Nil,
// false, zero numbers, and empty strings, objects, and arrays do not.
func HasMetadata(md any) bool {
	switch v := md.(type) {
	case nil:
		return false
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	}
	rv := reflect.ValueOf(md)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.String:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}

// CanonicalMetadata encodes md as compact JSON with sorted keys.
// Non-ASCII text is written as UTF-8 and HTML characters are not escaped.
func CanonicalMetadata(md any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(md); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Format renders r in canonical FASTJ without a trailing newline.
//
// The id and sequence are trimmed; an id that still holds a space or tab is
// rejected with *InvalidIDError. Metadata for which HasMetadata is false
// counts as absent. A record with nothing left to write fails with
// ErrEmptyRecord.
func Format(r Record) (string, error) {
	id := strings.TrimSpace(r.ID)
	if strings.ContainsAny(id, " \t") {
		return "", &InvalidIDError{ID: r.ID}
	}
	sequence := strings.TrimSpace(r.Sequence)

	var metadata string
	if HasMetadata(r.Metadata) {
		m, err := CanonicalMetadata(r.Metadata)
		if err != nil {
			return "", err
		}
		metadata = m
	}

	hasID, hasMetadata, hasSequence := id != "", metadata != "", sequence != ""
	switch {
	case hasID && hasMetadata && hasSequence:
		return ">" + id + " " + metadata + "\n" + sequence, nil
	case hasID && hasMetadata:
		return ">" + id + " " + metadata, nil
	case hasID && hasSequence:
		return ">" + id + "\n" + sequence, nil
	case hasID:
		return ">" + id, nil
	case hasMetadata && hasSequence:
		return "> " + metadata + "\n" + sequence, nil
	case hasMetadata:
		return "> " + metadata, nil
	case hasSequence:
		return ">\n" + sequence, nil
	default:
		return "", ErrEmptyRecord
	}
}
