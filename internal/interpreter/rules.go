package interpreter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rules holds the keyword sets the interpreter matches against. The
// priority order between intents is fixed in code; only the vocabulary
// is configurable.
type Rules struct {
	ApplyKeywords    []string `yaml:"applyKeywords"`
	BalanceKeywords  []string `yaml:"balanceKeywords"`
	UpcomingKeywords []string `yaml:"upcomingKeywords"`
	CancelKeywords   []string `yaml:"cancelKeywords"`
	ThanksKeywords   []string `yaml:"thanksKeywords"`
	GreetingKeywords []string `yaml:"greetingKeywords"`
	FarewellKeywords []string `yaml:"farewellKeywords"`
}

func DefaultRules() Rules {
	return Rules{
		ApplyKeywords:    []string{"apply", "leave"},
		BalanceKeywords:  []string{"balance", "how many leaves", "leaves left", "remaining leaves", "check", "status"},
		UpcomingKeywords: []string{"upcoming", "future", "next", "my leaves"},
		CancelKeywords:   []string{"cancel", "delete", "remove"},
		ThanksKeywords:   []string{"thank"},
		GreetingKeywords: []string{"hello", "hi", "hey"},
		FarewellKeywords: []string{"bye", "goodbye", "see you"},
	}
}

// LoadRules reads a YAML rules file and overlays it on the defaults.
// Lists absent from the file keep their default vocabulary. A missing
// file is not an error; the defaults are returned.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if path == "" {
		return rules, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return rules, nil
		}
		return rules, fmt.Errorf("read rules file: %w", err)
	}

	var loaded Rules
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return rules, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	overlay(&rules.ApplyKeywords, loaded.ApplyKeywords)
	overlay(&rules.BalanceKeywords, loaded.BalanceKeywords)
	overlay(&rules.UpcomingKeywords, loaded.UpcomingKeywords)
	overlay(&rules.CancelKeywords, loaded.CancelKeywords)
	overlay(&rules.ThanksKeywords, loaded.ThanksKeywords)
	overlay(&rules.GreetingKeywords, loaded.GreetingKeywords)
	overlay(&rules.FarewellKeywords, loaded.FarewellKeywords)
	return rules, nil
}

func overlay(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}
