// Package help holds the static support content shown by the help screen and
// the faq command.
package help

import (
	"fmt"
	"strings"
)

type FAQ struct {
	Question string
	Answer   string
}

type Contact struct {
	Name        string
	Number      string
	Description string
}

var FAQs = []FAQ{
	{
		Question: "How do I track my mood effectively?",
		Answer:   "To track your mood effectively, try to log your mood at the same time each day. Be honest about how you're feeling and add notes about what might be influencing your mood. Look for patterns over time to better understand your emotional wellbeing.",
	},
	{
		Question: "Is my data private and secure?",
		Answer:   "Yes, all your data is stored locally on your device and is never shared with third parties. We take your privacy seriously and don't collect any personal information without your explicit consent.",
	},
	{
		Question: "How often should I use the breathing exercises?",
		Answer:   "You can use breathing exercises as often as you like. Many users find it helpful to do a 5-10 minute session in the morning and evening, or whenever they feel stressed or anxious.",
	},
	{
		Question: "Can I export my mood data?",
		Answer:   "Yes! You can export all your data from the Settings screen or with `mindmate export`. This includes your mood history, journal entries, and affirmations. The data is exported in JSON format.",
	},
	{
		Question: "What should I do if I'm having thoughts of self-harm?",
		Answer:   "If you're having thoughts of self-harm, please reach out for immediate help. Contact a crisis helpline, go to your nearest emergency room, or call emergency services. MindMate is a wellness tool and not a substitute for professional mental health care.",
	},
	{
		Question: "How do I reset my data?",
		Answer:   "You can clear all your data from the Settings screen under Data Management, or with `mindmate clear`. Please note that this action cannot be undone, so make sure to export your data first if you want to keep it.",
	},
}

var EmergencyContacts = []Contact{
	{Name: "National Suicide Prevention Lifeline", Number: "988", Description: "24/7 crisis support"},
	{Name: "Crisis Text Line", Number: "Text HOME to 741741", Description: "24/7 text-based crisis support"},
	{Name: "SAMHSA National Helpline", Number: "1-800-662-4357", Description: "Mental health and substance abuse"},
}

// Render formats the contacts and FAQ as plain text. expanded selects which
// answers are shown; nil shows all of them.
func Render(expanded map[int]bool) string {
	var b strings.Builder
	b.WriteString("Need immediate help?\n\n")
	for _, c := range EmergencyContacts {
		fmt.Fprintf(&b, "  %s: %s\n    %s\n", c.Name, c.Number, c.Description)
	}
	b.WriteString("\nFrequently Asked Questions\n")
	for i, f := range FAQs {
		open := expanded == nil || expanded[i]
		marker := "▸"
		if open {
			marker = "▾"
		}
		fmt.Fprintf(&b, "\n%s %d. %s\n", marker, i+1, f.Question)
		if open {
			b.WriteString(wrap(f.Answer, 72, "     "))
		}
	}
	return b.String()
}

func wrap(text string, width int, indent string) string {
	var b strings.Builder
	line := indent
	for _, word := range strings.Fields(text) {
		if len(line) > len(indent) && len(line)+1+len(word) > width {
			b.WriteString(line + "\n")
			line = indent
		}
		if len(line) > len(indent) {
			line += " "
		}
		line += word
	}
	if len(line) > len(indent) {
		b.WriteString(line + "\n")
	}
	return b.String()
}
