package fastj

import (
	"errors"
	"fmt"
)

// ErrEmptyRecord is returned by Format when id, metadata and sequence are all empty.
var ErrEmptyRecord = errors.New("fastj: record has no id, metadata, or sequence")

// MalformedInputError reports a record that does not begin with '>'.
type MalformedInputError struct {
	Line string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("fastj: records should start with '>', got %q", e.Line)
}

// MetadataDecodeError reports a title description that is not valid JSON.
type MetadataDecodeError struct {
	Text string
	Err  error
}

func (e *MetadataDecodeError) Error() string {
	return fmt.Sprintf("fastj: decode metadata %q: %v", e.Text, e.Err)
}

func (e *MetadataDecodeError) Unwrap() error { return e.Err }

// InvalidIDError reports an id that still contains a space or tab after trimming.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("fastj: id %q contains whitespace", e.ID)
}
