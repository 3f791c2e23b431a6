package pkg

import (
	"errors"
	"fmt"
)

const maxParticipantIDLength = 128

// ValidateParticipantID accepts non empty ids made of letters, digits and
// the separators '.', '_', ':' and '-'.
func ValidateParticipantID(id string) error {
	if id == "" {
		return errors.New("participant id is empty")
	}
	if len(id) > maxParticipantIDLength {
		return fmt.Errorf("participant id longer than %d characters", maxParticipantIDLength)
	}

	for i, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return fmt.Errorf("participant id has invalid character %q at %d", c, i)
		}
	}
	return nil
}
