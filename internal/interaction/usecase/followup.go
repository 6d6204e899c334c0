package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"relationship-os/internal/interaction"
	repo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
	"relationship-os/pkg/datemath"
	"relationship-os/pkg/gcalendar"
	"relationship-os/pkg/llmprovider"
)

const followUpSystemInstruction = `You suggest the next touchpoint for a personal relationship, based on the most recent interaction.

Respond with ONLY a JSON object:
{"suggestion": "<one or two sentences: what to do or say>", "timing": "<when, as a relative phrase like 'in 3 days', 'next monday', 'tomorrow'>", "topics": ["<topic>", ...]}

Rules:
- Ground the suggestion in specifics from the interaction (names, events, plans mentioned).
- Prefer topics from the family/occupation/recreation/dreams notes when present.
- Keep timing realistic: sooner after meaningful events, within two weeks otherwise.`

type followUpPayload struct {
	Suggestion string   `json:"suggestion"`
	Timing     string   `json:"timing"`
	Topics     []string `json:"topics"`
}

// SuggestFollowUp asks the LLM for a next-touchpoint suggestion, resolves the
// suggested timing to an absolute date, and creates a calendar reminder when
// a calendar client is configured. Calendar failures degrade to a suggestion
// without a reminder.
func (uc *implUseCase) SuggestFollowUp(ctx context.Context, sc model.Scope, interactionID string) (interaction.SuggestFollowUpOutput, error) {
	it, err := uc.repo.GetOneInteraction(ctx, repo.GetOneInteractionOptions{UserID: sc.UserID, ID: interactionID})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.SuggestFollowUp GetOneInteraction: %v", err)
		return interaction.SuggestFollowUpOutput{}, err
	}
	if it.ID == "" {
		return interaction.SuggestFollowUpOutput{}, interaction.ErrInteractionNotFound
	}

	personName := ""
	if out, err := uc.personUC.Detail(ctx, sc, it.PersonID); err == nil {
		personName = out.Person.Name
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: followUpSystemInstruction}},
		},
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: uc.buildFollowUpContext(it, personName)}}},
		},
		Temperature: 0.7,
		MaxTokens:   400,
		JSONOutput:  true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "interaction.uc.SuggestFollowUp GenerateContent: %v", err)
		return interaction.SuggestFollowUpOutput{}, interaction.ErrNoSuggestion
	}

	payload, err := parseFollowUpPayload(resp.Text())
	if err != nil || payload.Suggestion == "" {
		uc.l.Warnf(ctx, "interaction.uc.SuggestFollowUp parse: %v", err)
		return interaction.SuggestFollowUpOutput{}, interaction.ErrNoSuggestion
	}

	followUp := interaction.FollowUp{
		Suggestion: payload.Suggestion,
		Timing:     payload.Timing,
		Topics:     payload.Topics,
	}

	if payload.Timing != "" && uc.dateMath != nil {
		if remindAt, err := uc.dateMath.Parse(payload.Timing, uc.now()); err == nil {
			remindAt = datemath.Noon(remindAt)
			followUp.RemindAt = &remindAt
		} else {
			uc.l.Warnf(ctx, "interaction.uc.SuggestFollowUp timing %q: %v", payload.Timing, err)
		}
	}

	if uc.calendar != nil && followUp.RemindAt != nil {
		event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
			Summary:     fmt.Sprintf("Follow up with %s", uc.coalesce(personName, "contact")),
			Description: payload.Suggestion,
			StartTime:   *followUp.RemindAt,
			EndTime:     followUp.RemindAt.Add(30 * time.Minute),
			Timezone:    uc.timezone,
		})
		if err != nil {
			uc.l.Warnf(ctx, "interaction.uc.SuggestFollowUp CreateEvent: %v", err)
		} else {
			followUp.CalendarEventLink = event.HtmlLink
		}
	}

	uc.track(ctx, sc, "follow_up_suggested", map[string]any{
		"interaction_id": it.ID,
		"has_reminder":   followUp.CalendarEventLink != "",
	})

	return interaction.SuggestFollowUpOutput{FollowUp: followUp}, nil
}

// buildFollowUpContext flattens the interaction into the prompt text.
func (uc *implUseCase) buildFollowUpContext(it interaction.Interaction, personName string) string {
	var b strings.Builder
	if personName != "" {
		fmt.Fprintf(&b, "Person: %s\n", personName)
	}
	fmt.Fprintf(&b, "Interaction type: %s\n", it.Type)
	if it.OccurredAt != nil {
		fmt.Fprintf(&b, "When: %s\n", it.OccurredAt.Format("Monday, January 2, 2006"))
	}
	if it.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", it.Title)
	}
	if it.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", it.Summary)
	} else if it.Content != "" {
		fmt.Fprintf(&b, "Notes: %s\n", it.Content)
	}
	if it.FordFamily != "" {
		fmt.Fprintf(&b, "Family: %s\n", it.FordFamily)
	}
	if it.FordOccupation != "" {
		fmt.Fprintf(&b, "Occupation: %s\n", it.FordOccupation)
	}
	if it.FordRecreation != "" {
		fmt.Fprintf(&b, "Recreation: %s\n", it.FordRecreation)
	}
	if it.FordDreams != "" {
		fmt.Fprintf(&b, "Dreams: %s\n", it.FordDreams)
	}
	return b.String()
}

// parseFollowUpPayload decodes the model output, tolerating markdown fences.
func parseFollowUpPayload(text string) (followUpPayload, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var payload followUpPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return followUpPayload{}, err
	}
	return payload, nil
}
