package usecase

import (
	"context"
	"strings"

	"task-tracker/internal/model"
)

// normalizeTags trims names, drops empties and collapses duplicates while
// keeping first-seen order. Case is preserved.
func normalizeTags(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// resolveTags finds or creates a stored tag for every normalized name. On
// failure the tags resolved so far are released again if nothing uses them.
func (uc *implUseCase) resolveTags(ctx context.Context, names []string) ([]model.Tag, error) {
	names = normalizeTags(names)
	tags := make([]model.Tag, 0, len(names))
	for _, n := range names {
		tag, err := uc.repo.FindOrCreateTag(ctx, n)
		if err != nil {
			uc.cleanupOrphans(ctx, model.Task{Tags: tags}.TagIDs())
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// removedTagIDs returns the IDs present in before but absent from after.
// With the arguments swapped it yields the IDs that were added.
func removedTagIDs(before, after []model.Tag) []int64 {
	kept := make(map[int64]struct{}, len(after))
	for _, t := range after {
		kept[t.ID] = struct{}{}
	}
	var removed []int64
	for _, t := range before {
		if _, ok := kept[t.ID]; !ok {
			removed = append(removed, t.ID)
		}
	}
	return removed
}

// cleanupOrphans deletes candidate tags no task references. A task created
// between the check and the delete keeps its tag because the delete itself is
// conditional. Failures are logged and never returned.
func (uc *implUseCase) cleanupOrphans(ctx context.Context, candidates []int64) {
	for _, id := range candidates {
		inUse, err := uc.repo.TagExistsOnAnyTask(ctx, id)
		if err != nil {
			uc.l.Warnf(ctx, "uc.cleanupOrphans TagExistsOnAnyTask id=%d: %v", id, err)
			continue
		}
		if inUse {
			continue
		}
		if _, err := uc.repo.DeleteOrphanTag(ctx, id); err != nil {
			uc.l.Warnf(ctx, "uc.cleanupOrphans DeleteOrphanTag id=%d: %v", id, err)
		}
	}
}
