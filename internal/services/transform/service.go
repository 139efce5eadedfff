// Package transform implements the polymorph engine: building a merged actor
// from a source form and a target shape, and reverting to the original form.
package transform

//go:generate mockgen -destination=mock/mock_service.go -package=mocktransform -source=service.go

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lucasdlb17/fvtt-trpg/internal/config"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/formula"
	"github.com/lucasdlb17/fvtt-trpg/internal/repositories/actors"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
	"github.com/lucasdlb17/fvtt-trpg/internal/uuid"
)

// User identifies the acting user for permission checks
type User struct {
	ID   string
	IsGM bool
}

// Options are the independent retention toggles for one transformation
type Options struct {
	KeepPhysical bool // keep str/dex/con
	KeepMental   bool // keep int/wis/cha
	KeepSaves    bool
	KeepSkills   bool
	MergeSaves   bool
	MergeSkills  bool
	KeepClass    bool
	KeepFeats    bool
	KeepSpells   bool
	KeepJutsus   bool
	KeepItems    bool
	KeepBio      bool
	KeepVision   bool
}

// Service defines the transform service interface
type Service interface {
	// TransformInto creates the polymorphed actor merging source and target
	TransformInto(ctx context.Context, user User, sourceID, targetID string, opts *Options) (*actor.Actor, error)

	// RevertOriginalForm undoes a transformation, returning the original actor.
	// A nil actor with a nil error means there was nothing to revert.
	RevertOriginalForm(ctx context.Context, user User, actorID string) (*actor.Actor, error)
}

// service implements the Service interface
type service struct {
	repository    actors.Repository
	uuidGenerator uuid.Generator
	evaluator     formula.Evaluator
	settings      config.Settings
	log           *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    actors.Repository // Required
	UUIDGenerator uuid.Generator    // Optional, will use default if nil
	Evaluator     formula.Evaluator // Optional
	Settings      config.Settings
	Logger        *zap.Logger // Optional
}

// NewService creates a new transform service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	svc := &service{
		repository: cfg.Repository,
		evaluator:  cfg.Evaluator,
		settings:   cfg.Settings,
		log:        cfg.Logger,
	}
	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if svc.log == nil {
		svc.log = zap.NewNop()
	}
	return svc
}

// TransformInto builds and stores the merged actor
func (s *service) TransformInto(ctx context.Context, user User, sourceID, targetID string, opts *Options) (*actor.Actor, error) {
	if opts == nil {
		opts = &Options{}
	}
	if !s.settings.AllowPolymorphing && !user.IsGM {
		return nil, trpgerr.PermissionDenied("polymorphing is not allowed for players")
	}

	source, err := s.repository.Get(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	target, err := s.repository.Get(ctx, targetID)
	if err != nil {
		return nil, err
	}

	deriveOpts := actor.DeriveOptions{Evaluator: s.evaluator, Settings: s.settings}
	target.Reconcile(deriveOpts)

	merged := s.merge(source, target, opts)
	if err := s.repository.Create(ctx, merged); err != nil {
		return nil, err
	}

	s.log.Info("actor transformed",
		zap.String("source_id", source.ID),
		zap.String("target_id", target.ID),
		zap.String("merged_id", merged.ID))
	return merged, nil
}

// merge builds the polymorphed actor: the target's stat block and items under
// the source's identity, with the retention toggles applied field by field.
func (s *service) merge(source, target *actor.Actor, opts *Options) *actor.Actor {
	merged := target.Clone()
	o := source.Clone()

	merged.ID = s.uuidGenerator.New()
	merged.Type = o.Type
	merged.Name = fmt.Sprintf("%s (%s)", o.Name, target.Name)
	merged.OwnerID = o.OwnerID
	merged.Folder = o.Folder
	merged.Effects = append(o.Effects, merged.Effects...)

	// Resource pools, currency, and global bonuses stay with the original form
	merged.Resources = o.Resources
	merged.Currency = o.Currency
	merged.Bonuses = o.Bonuses

	// Preserved regardless of options
	merged.Details.Alignment = o.Details.Alignment
	merged.Attributes.Exhaustion = o.Attributes.Exhaustion
	merged.Attributes.Inspiration = o.Attributes.Inspiration
	merged.Spells = o.Spells
	merged.Jutsus = o.Jutsus
	merged.Attributes.AC.Flat = target.Attributes.AC.Value

	// Token keeps the new shape's appearance; vision is a toggle
	vision := target.Token.Vision
	if opts.KeepVision {
		vision = o.Token.Vision
	}
	merged.Token = actor.TokenAppearance{
		Name:   merged.Name,
		Img:    target.Token.Img,
		Width:  target.Token.Width,
		Height: target.Token.Height,
		Scale:  target.Token.Scale,
		Vision: vision,
	}

	for code, abl := range merged.Abilities {
		oa, ok := o.Abilities[code]
		if !ok {
			continue
		}
		if opts.KeepPhysical && containsAbility(rules.PhysicalAbilities, code) {
			*abl = *oa
		} else if opts.KeepMental && containsAbility(rules.MentalAbilities, code) {
			*abl = *oa
		}
	}

	for code, sv := range merged.Saves {
		oa, ok := o.Saves[code]
		if !ok {
			continue
		}
		if opts.KeepSaves {
			sv.Proficient = oa.Proficient
		} else if opts.MergeSaves && oa.Proficient > sv.Proficient {
			sv.Proficient = oa.Proficient
		}
	}

	if opts.KeepSkills {
		merged.Skills = o.Skills
	} else if opts.MergeSkills {
		for code, sk := range merged.Skills {
			if oa, ok := o.Skills[code]; ok && oa.Value > sk.Value {
				sk.Value = oa.Value
			}
		}
	}

	for _, i := range o.Items {
		keep := opts.KeepItems
		switch i.Type {
		case item.TypeClass:
			keep = opts.KeepClass
		case item.TypeFeat:
			keep = opts.KeepFeats
		case item.TypeSpell:
			keep = opts.KeepSpells
		case item.TypeJutsu:
			keep = opts.KeepJutsus
		}
		if keep {
			merged.Items = append(merged.Items, i)
		}
	}
	for _, i := range merged.Items {
		i.ID = s.uuidGenerator.New()
	}

	// NPC shapes get a stand-in class so level-driven derivation works
	if !opts.KeepClass && merged.Details.CR > 0 {
		merged.Items = append(merged.Items, &item.Item{
			ID:    s.uuidGenerator.New(),
			Name:  "Polymorph",
			Type:  item.TypeClass,
			Class: &item.Class{Levels: merged.Details.CR},
		})
	}

	if opts.KeepBio {
		merged.Details.Biography = o.Details.Biography
	}

	merged.Flags = o.Flags
	merged.Flags.Polymorphed = true
	merged.Flags.TransformOptions = &actor.TransformOptions{
		MergeSaves:  opts.MergeSaves,
		MergeSkills: opts.MergeSkills,
	}
	if !o.Flags.Polymorphed || o.Flags.OriginalActor == "" {
		merged.Flags.OriginalActor = source.ID
	}

	return merged
}

// RevertOriginalForm deletes the polymorphed actor and returns the original
func (s *service) RevertOriginalForm(ctx context.Context, user User, actorID string) (*actor.Actor, error) {
	a, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !a.Flags.Polymorphed {
		return nil, nil
	}
	if !user.IsGM && user.ID != a.OwnerID {
		return nil, trpgerr.PermissionDenied("only the owner may revert this transformation")
	}

	original, err := s.repository.Get(ctx, a.Flags.OriginalActor)
	if err != nil {
		if trpgerr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	// Only a GM may remove the transformed actor record
	if user.IsGM {
		if err := s.repository.Delete(ctx, a.ID); err != nil {
			return nil, err
		}
	}

	s.log.Info("actor reverted",
		zap.String("actor_id", a.ID),
		zap.String("original_id", original.ID))
	return original, nil
}

func containsAbility(list []rules.Ability, code rules.Ability) bool {
	for _, a := range list {
		if a == code {
			return true
		}
	}
	return false
}
