package dateinfer

import (
	"fmt"
	"time"
)

// systemInstruction is the instruction sent to the provider. The critical
// contract: date WHEN THE CONVERSATION HAPPENED, never when events discussed
// within it happened.
const systemInstruction = `You determine WHEN a logged conversation took place, based only on its transcript.

CRITICAL DISTINCTION: you are dating the conversation itself, NOT events mentioned inside it.
- "talked to him yesterday" => the conversation was yesterday
- "he told me last night" => the conversation was last night
- "he said he bought a house last week" => the house purchase was last week; this says NOTHING about when the conversation happened. Do NOT use it.

Look for:
1. Relative day references about the conversation: "yesterday", "last night", "this morning", "earlier today"
2. Named weekday references: "on Monday", "last Tuesday"
3. Explicit dates, especially near the start of the transcript

Today's date (the reference point) is: %s

Respond with ONLY a JSON object, no markdown, no code blocks:
{
  "days_ago": <non-negative integer, or null if you cannot determine>,
  "confidence": "high" | "medium" | "low",
  "reasoning": "<one short sentence>"
}

days_ago semantics: 0 = the conversation happened today, 1 = yesterday, 2 = two days ago, and so on.
confidence bands: "high" = an explicit temporal statement about the conversation, "medium" = implied or indirect cue, "low" = uncertain.`

// buildSystemInstruction renders the instruction with the anchor date stated
// in an unambiguous calendar format.
func buildSystemInstruction(anchor time.Time) string {
	return fmt.Sprintf(systemInstruction, anchor.Format("Monday, January 2, 2006"))
}
