package badger

import (
	"fmt"

	"github.com/talentsift/talentsift/core"
)

// Key prefixes for different data types. The trailing colon keeps prefix
// iteration over primary records from picking up index keys.
const (
	assessmentKeyPrefix  = "asmt:"
	assessmentNamePrefix = "asmtn:"
)

// makeAssessmentKey generates a key for an assessment by ID.
func makeAssessmentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s%d", assessmentKeyPrefix, id))
}

// makeAssessmentNameKey generates a key for the name index.
// Names sort lexicographically, which gives ListAssessments its order.
func makeAssessmentNameKey(name string) []byte {
	return []byte(assessmentNamePrefix + name)
}
