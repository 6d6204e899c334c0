package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"relationship-os/internal/interaction"
	interactionRepo "relationship-os/internal/interaction/repository"
	"relationship-os/internal/model"
	"relationship-os/internal/person"
	"relationship-os/internal/syncin"
	batchRepo "relationship-os/internal/syncin/repository"
)

// Push ingests a batch of items from a sync agent. Items are processed
// independently: one bad item never fails the batch. The batch record is
// written even when some items errored.
func (uc *implUseCase) Push(ctx context.Context, sc model.Scope, input syncin.PushInput) (syncin.PushOutput, error) {
	if strings.TrimSpace(input.Source) == "" {
		return syncin.PushOutput{}, syncin.ErrSourceRequired
	}
	if len(input.Items) == 0 {
		return syncin.PushOutput{}, syncin.ErrNoItems
	}

	out := syncin.PushOutput{
		BatchID:  uuid.NewString(),
		Received: len(input.Items),
		Results:  make([]syncin.ItemResult, 0, len(input.Items)),
	}

	for _, item := range input.Items {
		result := uc.processItem(ctx, sc, input.Source, item)
		switch result.Status {
		case syncin.StatusCreated:
			out.Created++
		case syncin.StatusDuplicate:
			out.Duplicates++
		default:
			out.Errors++
		}
		out.Results = append(out.Results, result)
	}

	if _, err := uc.batchRepo.CreateBatch(ctx, batchRepo.CreateBatchOptions{
		ID:         out.BatchID,
		UserID:     sc.UserID,
		Source:     input.Source,
		SyncType:   input.SyncType,
		Received:   out.Received,
		Created:    out.Created,
		Duplicates: out.Duplicates,
		Errors:     out.Errors,
	}); err != nil {
		// The items are already stored; losing the batch record is not fatal.
		uc.l.Warnf(ctx, "syncin.uc.Push CreateBatch: %v", err)
	}

	if uc.tracker != nil {
		uc.tracker.Track(ctx, sc, "sync_push", map[string]any{
			"source":     input.Source,
			"received":   out.Received,
			"created":    out.Created,
			"duplicates": out.Duplicates,
			"errors":     out.Errors,
		})
	}

	return out, nil
}

// processItem handles a single pushed item: dedupe, person matching, date
// inference, insert.
func (uc *implUseCase) processItem(ctx context.Context, sc model.Scope, source string, item syncin.PushItem) syncin.ItemResult {
	result := syncin.ItemResult{ExternalID: item.ExternalID, Status: syncin.StatusError}

	if item.ExternalID == "" {
		result.Error = "external_id is required"
		return result
	}

	// Dedupe on (source, external_id) within the user's scope.
	existing, err := uc.interactionRepo.GetOneInteraction(ctx, interactionRepo.GetOneInteractionOptions{
		UserID:     sc.UserID,
		Source:     source,
		ExternalID: item.ExternalID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.processItem dedupe: %v", err)
		result.Error = "dedupe lookup failed"
		return result
	}
	if existing.ID != "" {
		result.Status = syncin.StatusDuplicate
		result.InteractionID = existing.ID
		result.PersonID = existing.PersonID
		return result
	}

	personID, err := uc.resolvePerson(ctx, sc, item.PersonHint, item.Participants)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.processItem person: %v", err)
		result.Error = "person resolution failed"
		return result
	}
	result.PersonID = personID

	opt := interactionRepo.CreateInteractionOptions{
		UserID:          sc.UserID,
		PersonID:        personID,
		Type:            normalizeType(item.Type),
		Source:          source,
		ExternalID:      item.ExternalID,
		Title:           item.Title,
		Content:         item.Content,
		Summary:         item.Summary,
		Transcript:      item.Transcript,
		OccurredAt:      item.Timestamp,
		DurationMinutes: item.DurationMinutes,
	}

	// No timestamp from the agent: infer from the transcript, anchored at
	// receipt time.
	if opt.OccurredAt == nil && item.Transcript != "" && uc.inferrer != nil {
		inferred := uc.inferrer.InferAt(ctx, item.Transcript, uc.now())
		opt.OccurredAt = inferred.InferredDate
		opt.DateConfidence = string(inferred.Confidence)
		opt.DateReasoning = inferred.Reasoning
	}

	it, err := uc.interactionRepo.CreateInteraction(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "syncin.uc.processItem insert: %v", err)
		result.Error = "insert failed"
		return result
	}

	result.Status = syncin.StatusCreated
	result.InteractionID = it.ID
	return result
}

// resolvePerson matches the hints against existing contacts or creates a new
// one.
func (uc *implUseCase) resolvePerson(ctx context.Context, sc model.Scope, hint syncin.PersonHint, participants []string) (string, error) {
	name := strings.TrimSpace(hint.Name)
	if name == "" && len(participants) > 0 {
		name = strings.TrimSpace(participants[0])
	}

	found, err := uc.personUC.Search(ctx, sc, person.SearchPersonInput{
		Phone: hint.Phone,
		Email: hint.Email,
		Name:  name,
	})
	if err != nil {
		return "", err
	}
	if found.Matched {
		return found.Person.ID, nil
	}

	if name == "" {
		name = "Unknown contact"
	}
	created, err := uc.personUC.Create(ctx, sc, person.CreatePersonInput{
		Name:  name,
		Phone: hint.Phone,
		Email: hint.Email,
	})
	if err != nil {
		return "", err
	}
	return created.Person.ID, nil
}

// normalizeType maps the agent's free-form type onto a known interaction
// type, defaulting to note.
func normalizeType(t string) interaction.Type {
	typ := interaction.Type(strings.ToLower(strings.TrimSpace(t)))
	if interaction.ValidType(typ) {
		return typ
	}
	return interaction.TypeNote
}
