package validate

import (
	"context"
	"errors"

	"github.com/vk/ledgen/internal/ctxlog"
	"github.com/vk/ledgen/internal/model"
	"github.com/vk/ledgen/internal/naming"
)

// Validate checks doc against a fresh PriorityRegistry. See ValidateWith.
func Validate(ctx context.Context, doc *model.Document) ([]*model.Group, error) {
	return ValidateWith(ctx, doc, NewPriorityRegistry())
}

// ValidateWith walks the groups of doc in source order, resolves every
// indicator's effective priority, registers indicator-level priorities in reg
// and normalizes group and indicator identifiers. The groups are updated in
// place and returned on success. The first violation aborts validation.
func ValidateWith(ctx context.Context, doc *model.Document, reg *PriorityRegistry) ([]*model.Group, error) {
	if doc == nil {
		return nil, errors.New("validate: document is nil")
	}
	if reg == nil {
		reg = NewPriorityRegistry()
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validation started.", "source", doc.Source, "groups", len(doc.Groups))

	for _, g := range doc.Groups {
		if err := validateGroup(ctx, g, reg); err != nil {
			return nil, err
		}
	}

	logger.Debug("Validation passed.", "groups", len(doc.Groups), "registered_indicators", reg.Len())
	return doc.Groups, nil
}

func validateGroup(ctx context.Context, g *model.Group, reg *PriorityRegistry) error {
	_, logger := ctxlog.With(ctx, "group", g.Name)

	g.ID = naming.Underscore(g.Name)
	g.Path = naming.GroupPath(g.Name)
	logger.Debug("Validating group.", "path", g.Path, "group_priority", g.HasPriority(), "indicators", len(g.Indicators))

	for _, ind := range g.Indicators {
		if err := resolvePriority(g, ind, reg); err != nil {
			return err
		}
	}
	return nil
}

// resolvePriority applies the group-wide XOR indicator-level rule to one
// indicator occurrence and normalizes its name.
func resolvePriority(g *model.Group, ind *model.Indicator, reg *PriorityRegistry) error {
	ind.ID = naming.Underscore(ind.Name)

	switch {
	case g.HasPriority() && ind.Priority != nil:
		return &ConflictingPriorityError{
			Group:             g.Name,
			Indicator:         ind.Name,
			GroupPriority:     *g.Priority,
			IndicatorPriority: *ind.Priority,
		}
	case g.HasPriority():
		ind.EffectivePriority = *g.Priority
	case ind.Priority == nil:
		return &MissingPriorityError{Group: g.Name, Indicator: ind.Name}
	default:
		if err := reg.Check(ind.ID, g.Name, *ind.Priority); err != nil {
			return err
		}
		ind.EffectivePriority = *ind.Priority
	}
	return nil
}
