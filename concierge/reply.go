package concierge

import "strings"

// Canned concierge lines
const (
	ReplyGreeting = "Hello! Welcome. How may I assist you today?"
	ReplyHelp     = "Of course. I can help with directions, recommendations, or any questions about your stay."
	ReplyThanks   = "You're welcome. Is there anything else?"
	ReplyFarewell = "Goodbye. Have a wonderful day."
	ReplyDefault  = "I understand. Is there something specific you'd like help with?"

	VoiceUnsupported = "(Voice not supported in this terminal)"
)

// replyRule matches when the lowercased input contains any keyword
type replyRule struct {
	keywords []string
	reply    string
}

// First match wins, "hi" is a plain substring so "this" also greets
var replyRules = []replyRule{
	{[]string{"hello", "hi"}, ReplyGreeting},
	{[]string{"help"}, ReplyHelp},
	{[]string{"thank"}, ReplyThanks},
	{[]string{"bye", "goodbye"}, ReplyFarewell},
}

// Reply returns the concierge's answer to a guest message
func Reply(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range replyRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.reply
			}
		}
	}
	return ReplyDefault
}
