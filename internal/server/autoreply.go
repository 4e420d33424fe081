package server

import (
	"fmt"
	"math/rand/v2"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// TriggerRule pairs a keyword pattern with its candidate canned replies. The
// pattern is a regular expression fragment compiled case-insensitively at
// startup.
type TriggerRule struct {
	Pattern string   `yaml:"pattern"`
	Replies []string `yaml:"replies"`
}

type compiledRule struct {
	pattern *regexp.Regexp
	replies []string
}

// AutoReplyEngine evaluates trigger rules in insertion order against the text
// of a "#" query and picks one reply uniformly at random from the first rule
// that matches. The rule list is immutable after construction.
type AutoReplyEngine struct {
	rules []compiledRule
}

// NewAutoReplyEngine compiles the given rules into an engine. Rules keep
// their given order; rules without replies are rejected.
func NewAutoReplyEngine(rules []TriggerRule) (*AutoReplyEngine, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, rule := range rules {
		if len(rule.Replies) == 0 {
			return nil, fmt.Errorf("trigger rule %d has no replies", i)
		}
		pattern, err := regexp.Compile("(?i)" + rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("trigger rule %d: %w", i, err)
		}
		compiled = append(compiled, compiledRule{pattern: pattern, replies: rule.Replies})
	}
	return &AutoReplyEngine{rules: compiled}, nil
}

// Reply returns a canned response for the query text, or false when no rule
// matches and the caller should fall back to an ordinary broadcast.
func (e *AutoReplyEngine) Reply(text string) (string, bool) {
	for _, rule := range e.rules {
		if rule.pattern.MatchString(text) {
			return rule.replies[rand.IntN(len(rule.replies))], true
		}
	}
	return "", false
}

// LoadTriggerRules reads a YAML trigger table from disk. The file holds a
// list of {pattern, replies} entries replacing the built-in table.
func LoadTriggerRules(path string) ([]TriggerRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read triggers file: %w", err)
	}

	var rules []TriggerRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse triggers file: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("triggers file %s contains no rules", path)
	}
	return rules, nil
}
