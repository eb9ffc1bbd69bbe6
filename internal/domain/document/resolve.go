package document

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDocType = errors.New("invalid document type")

var validTypes = map[DocType]bool{
	TypeApplicationForm:     true,
	TypeDiplomaAndSubjects:  true,
	TypeIdentityProof:       true,
	TypeCV:                  true,
	TypeIntentToWorkProof:   true,
	TypeProofWorkExperience: true,
	TypeOtherQualifications: true,
	TypeTrainingCurriculum:  true,
}

// ResolveType maps raw client input onto a checklist DocType. "PASSPORT" is
// a legacy alias for IDENTITY_PROOF. The error keeps the original,
// non-normalized input for the client message.
func ResolveType(input string) (DocType, error) {
	key := strings.ToUpper(strings.TrimSpace(input))
	if key == "PASSPORT" {
		key = string(TypeIdentityProof)
	}

	dt := DocType(key)
	if !validTypes[dt] {
		return "", fmt.Errorf("%w: %s", ErrInvalidDocType, input)
	}
	return dt, nil
}
