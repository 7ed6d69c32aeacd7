package interpreter

import (
	"regexp"
	"strings"
)

type Intent string

const (
	IntentApplyLeave   Intent = "apply_leave"
	IntentCheckBalance Intent = "check_balance"
	IntentViewUpcoming Intent = "view_upcoming"
	IntentCancelLeave  Intent = "cancel_leave"
	IntentUnknown      Intent = "unknown"
)

// SmallTalk categorizes conversational pleasantries that are answered
// only when no intent matched and no flow is pending.
type SmallTalk int

const (
	SmallTalkNone SmallTalk = iota
	SmallTalkThanks
	SmallTalkGreeting
	SmallTalkFarewell
)

// dateishTokenRe detects month names and bare day numbers, the signal
// that an apply phrase carries dates.
var dateishTokenRe = regexp.MustCompile(`(?i)\b(?:` + monthAlt + `)\b|\b\d{1,2}(?:st|nd|rd|th)?\b|\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b`)

// DetectIntent classifies an utterance. Checks run in strict priority
// order and the first match wins:
//
//  1. date-like token together with an apply keyword -> apply_leave
//     (this deliberately outranks cancel and balance keywords when a
//     date co-occurs with "apply"/"leave"; do not reorder)
//  2. exactly "check" -> check_balance
//  3. exactly "upcoming" -> view_upcoming
//  4. balance keywords -> check_balance
//  5. upcoming keywords -> view_upcoming
//  6. cancel keywords -> cancel_leave
//  7. apply keywords without a date -> apply_leave
//  8. unknown
func (i *Interpreter) DetectIntent(text string) Intent {
	rules := i.Rules()
	lower := strings.ToLower(strings.TrimSpace(text))

	if dateishTokenRe.MatchString(lower) && containsAny(lower, rules.ApplyKeywords) {
		return IntentApplyLeave
	}
	if lower == "check" {
		return IntentCheckBalance
	}
	if lower == "upcoming" {
		return IntentViewUpcoming
	}
	if containsAny(lower, rules.BalanceKeywords) {
		return IntentCheckBalance
	}
	if containsAny(lower, rules.UpcomingKeywords) {
		return IntentViewUpcoming
	}
	if containsAny(lower, rules.CancelKeywords) {
		return IntentCancelLeave
	}
	if containsAny(lower, rules.ApplyKeywords) {
		return IntentApplyLeave
	}
	return IntentUnknown
}

// DetectSmallTalk recognizes thanks, greetings and farewells. Single
// words match on token boundaries so "hi" does not fire inside "this";
// multi-word phrases and the "thank" stem match as substrings.
func (i *Interpreter) DetectSmallTalk(text string) SmallTalk {
	rules := i.Rules()
	lower := strings.ToLower(text)

	if containsAny(lower, rules.ThanksKeywords) {
		return SmallTalkThanks
	}
	if matchesAnyWord(lower, rules.GreetingKeywords) {
		return SmallTalkGreeting
	}
	if matchesAnyWord(lower, rules.FarewellKeywords) {
		return SmallTalkFarewell
	}
	return SmallTalkNone
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func matchesAnyWord(lower string, keywords []string) bool {
	var words []string
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		words = append(words, kw)
	}
	if len(words) == 0 {
		return false
	}
	for _, token := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		for _, word := range words {
			if token == word {
				return true
			}
		}
	}
	return false
}
