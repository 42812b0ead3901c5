package chat

import (
	"strings"
	"unicode"
)

// FallbackRule is the Answer.Rule reported when no keyword matched.
const FallbackRule = "fallback"

const defaultFallback = "Thanks for reaching out! A member of the Social Dots team can help with that. " +
	"Book a free consultation and we'll get back to you within one business day."

// Rule maps a set of keywords to a canned reply. A keyword may be a single word or a
// space-separated phrase.
type Rule struct {
	Name     string
	Keywords []string
	Reply    string
}

// Answer is the reply chosen for a message and the rule that produced it.
type Answer struct {
	Rule string `json:"rule"`
	Text string `json:"reply"`
}

// Responder picks canned replies by keyword. It holds no mutable state.
type Responder struct {
	rules    []compiledRule
	fallback string
}

type compiledRule struct {
	name    string
	reply   string
	phrases [][]string
}

// NewResponder compiles rules in priority order. An empty fallback uses the default
// consultation prompt.
func NewResponder(rules []Rule, fallback string) *Responder {
	if fallback == "" {
		fallback = defaultFallback
	}

	r := &Responder{fallback: fallback}
	for _, rule := range rules {
		cr := compiledRule{name: rule.Name, reply: rule.Reply}
		for _, kw := range rule.Keywords {
			if words := tokenize(kw); len(words) > 0 {
				cr.phrases = append(cr.phrases, words)
			}
		}
		r.rules = append(r.rules, cr)
	}
	return r
}

// Reply returns the reply of the first rule with a keyword present in message.
func (r *Responder) Reply(message string) Answer {
	words := tokenize(message)
	if len(words) == 0 {
		return Answer{Rule: FallbackRule, Text: r.fallback}
	}

	for _, rule := range r.rules {
		for _, phrase := range rule.phrases {
			if containsPhrase(words, phrase) {
				return Answer{Rule: rule.name, Text: rule.reply}
			}
		}
	}
	return Answer{Rule: FallbackRule, Text: r.fallback}
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsPhrase(words, phrase []string) bool {
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, p := range phrase {
			if words[i+j] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
