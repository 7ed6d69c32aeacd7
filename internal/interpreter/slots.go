package interpreter

import (
	"strings"

	"leavebot/internal/domain/ledger"
)

// ExtractLeaveType finds a leave-type keyword in the utterance.
// "casual" is checked before "sick", so text naming both resolves to
// casual.
func (i *Interpreter) ExtractLeaveType(text string) (ledger.LeaveType, bool) {
	lower := strings.ToLower(text)
	for _, typ := range ledger.Types {
		if strings.Contains(lower, string(typ)) {
			return typ, true
		}
	}
	return "", false
}
