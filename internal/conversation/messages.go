package conversation

import (
	"fmt"
	"strings"
	"time"

	"leavebot/internal/domain/ledger"
)

const dateFormat = "2006-01-02"

// reasonUnspecified fills the reason slot when an apply carries dates
// and a type in a single utterance, so no reason was collected.
const reasonUnspecified = "Not specified"

const (
	promptCancelDate  = "Which leave would you like to cancel? Please give me its start date."
	promptCancelRetry = "I couldn't find a date in that. Which start date should I cancel?"
	promptApplyDates  = "What dates would you like to apply leave for?"
	promptDatesRetry  = "I couldn't find any dates in that. What dates would you like to apply for?"
	promptReason      = "What is the reason for your leave?"
	promptType        = "Is this casual or sick leave?"
	promptTypeRetry   = "Please choose a valid leave type: casual or sick."

	replyThanks   = "You're welcome!"
	replyGreeting = "Hello! How can I help you with your leaves today?"
	replyFarewell = "Goodbye! Have a great day."

	replyHelp = "I can check your leave balance, list upcoming leaves, apply for a new leave, or cancel one. " +
		"Try something like \"apply leave from 2025-08-01 to 2025-08-03\" or \"check\"."
)

func msgBalance(balance ledger.Balance) string {
	return fmt.Sprintf("You have %d casual and %d sick leaves remaining.",
		balance[ledger.TypeCasual], balance[ledger.TypeSick])
}

func msgUpcoming(records []*ledger.Record) string {
	if len(records) == 0 {
		return "No upcoming leaves."
	}
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, "Your upcoming leaves:")
	for _, rec := range records {
		lines = append(lines, fmt.Sprintf("- %s to %s for %s",
			rec.From.Format(dateFormat), rec.To.Format(dateFormat), rec.Reason))
	}
	return strings.Join(lines, "\n")
}

func msgApplied(rec *ledger.Record) string {
	return fmt.Sprintf("Leave applied from %s to %s for %s.",
		rec.From.Format(dateFormat), rec.To.Format(dateFormat), rec.Reason)
}

func msgDuplicate(typ ledger.LeaveType, from time.Time) string {
	return fmt.Sprintf("You have already applied for %s leave on %s.", typ, from.Format(dateFormat))
}

func msgInsufficient(typ ledger.LeaveType) string {
	return fmt.Sprintf("You don't have enough %s leaves.", typ)
}

func msgInvalidRange(from, to time.Time) string {
	return fmt.Sprintf("The end date %s is before the start date %s. Please try again with the dates in order.",
		to.Format(dateFormat), from.Format(dateFormat))
}

func msgCancelled(from time.Time) string {
	return fmt.Sprintf("Leave on %s canceled successfully.", from.Format(dateFormat))
}

func msgNotFound(from time.Time) string {
	return fmt.Sprintf("No leave found on %s.", from.Format(dateFormat))
}
