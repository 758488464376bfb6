package fastj

// Record is one FASTJ entry.
//
// Metadata holds the decoded JSON value: usually a map[string]any, but any
// JSON value is kept, with numbers as json.Number. A nil Metadata means the
// title carried none. Sequence never holds white space when produced by the
// Reader.
type Record struct {
	ID       string
	Metadata any
	Sequence string
}

// RawPair is a tokenized record before its title is parsed.
type RawPair struct {
	Title    string // text after '>', right-trimmed
	Sequence string // sequence lines joined, spaces and CRs removed
}
