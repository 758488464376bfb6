package convert

import (
	"github.com/google/uuid"

	"fastj/pkg/fastj"
)

// AssignID gives r a random UUID id when its id is blank.
func AssignID(r fastj.Record) fastj.Record {
	if isBlank(r.ID) {
		r.ID = uuid.NewString()
	}
	return r
}

func isBlank(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}
