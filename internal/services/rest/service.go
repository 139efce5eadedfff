// Package rest implements the short and long rest recovery flows: hit
// points, magic points, hit dice, resource pools, spell and jutsu slots, and
// limited item uses.
package rest

//go:generate mockgen -destination=mock/mock_service.go -package=mockrest -source=service.go

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/lucasdlb17/fvtt-trpg/internal/config"
	"github.com/lucasdlb17/fvtt-trpg/internal/dice"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/actor"
	"github.com/lucasdlb17/fvtt-trpg/internal/domain/item"
	trpgerr "github.com/lucasdlb17/fvtt-trpg/internal/errors"
	"github.com/lucasdlb17/fvtt-trpg/internal/formula"
	"github.com/lucasdlb17/fvtt-trpg/internal/repositories/actors"
	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// DefaultHitDiceThreshold is the missing hit point margin that stops
// automatic hit die spending on a short rest.
const DefaultHitDiceThreshold = 3

// Service defines the rest service interface
type Service interface {
	// ShortRest performs a short rest, optionally spending hit dice first
	ShortRest(ctx context.Context, actorID string, opts *ShortRestOptions) (*Result, error)

	// LongRest performs a long rest
	LongRest(ctx context.Context, actorID string, opts *LongRestOptions) (*Result, error)

	// RollHitDie spends one hit die of the given denomination and heals the
	// roll. An empty denomination picks the first class with dice remaining.
	RollHitDie(ctx context.Context, actorID, denomination string) (*HitDieRoll, error)
}

// ShortRestOptions controls a short rest
type ShortRestOptions struct {
	NewDay bool

	// AutoSpendHitDice rolls hit dice until fewer than HitDiceThreshold hit
	// points are missing, before the rest recovery runs
	AutoSpendHitDice bool
	HitDiceThreshold int
}

// LongRestOptions controls a long rest
type LongRestOptions struct {
	NewDay bool
}

// HitDieRoll reports one spent hit die. A nil result with a nil error means
// no class had an available die of the requested denomination.
type HitDieRoll struct {
	Roll    *dice.RollResult `json:"roll"`
	ClassID string           `json:"class_id"`
	DHP     int              `json:"dhp"`
}

// service implements the Service interface
type service struct {
	repository actors.Repository
	roller     dice.Roller
	evaluator  formula.Evaluator
	settings   config.Settings
	log        *zap.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository actors.Repository // Required
	Roller     dice.Roller       // Required
	Evaluator  formula.Evaluator // Optional, derive cycles run without custom AC formulas if nil
	Settings   config.Settings
	Logger     *zap.Logger // Optional
}

// NewService creates a new rest service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		repository: cfg.Repository,
		roller:     cfg.Roller,
		evaluator:  cfg.Evaluator,
		settings:   cfg.Settings,
		log:        log,
	}
}

func (s *service) deriveOptions() actor.DeriveOptions {
	return actor.DeriveOptions{
		Evaluator: s.evaluator,
		Settings:  s.settings,
	}
}

// ShortRest performs a short rest
func (s *service) ShortRest(ctx context.Context, actorID string, opts *ShortRestOptions) (*Result, error) {
	if opts == nil {
		opts = &ShortRestOptions{}
	}

	a, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	a.Reconcile(s.deriveOptions())

	hd0 := a.Attributes.HD
	hp0 := a.Attributes.HP.Value

	var spent []item.Update
	if opts.AutoSpendHitDice {
		threshold := opts.HitDiceThreshold
		if threshold <= 0 {
			threshold = DefaultHitDiceThreshold
		}
		spent, err = s.autoSpendHitDice(a, threshold)
		if err != nil {
			return nil, err
		}
	}

	result := s.computeRest(a, false, opts.NewDay)
	result.DHD += a.Attributes.HD - hd0
	result.DHP += a.Attributes.HP.Value - hp0
	result.ItemChanges = append(spent, result.ItemChanges...)

	if err := s.apply(ctx, a, result); err != nil {
		return nil, err
	}
	s.log.Info("short rest completed",
		zap.String("actor_id", a.ID),
		zap.Int("dhd", result.DHD),
		zap.Int("dhp", result.DHP))
	return result, nil
}

// LongRest performs a long rest
func (s *service) LongRest(ctx context.Context, actorID string, opts *LongRestOptions) (*Result, error) {
	if opts == nil {
		opts = &LongRestOptions{NewDay: true}
	}

	a, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	a.Reconcile(s.deriveOptions())

	result := s.computeRest(a, true, opts.NewDay)
	if err := s.apply(ctx, a, result); err != nil {
		return nil, err
	}
	s.log.Info("long rest completed",
		zap.String("actor_id", a.ID),
		zap.Int("dhp", result.DHP),
		zap.Int("dmp", result.DMP),
		zap.Int("dhd", result.DHD))
	return result, nil
}

// computeRest accumulates every recovery into one result, mutating the
// actor's pools in place. Item changes are recorded as updates but not
// applied to the in-memory items; they go through the batched item update.
func (s *service) computeRest(a *actor.Actor, longRest, newDay bool) *Result {
	result := &Result{LongRest: longRest, NewDay: newDay}

	if longRest {
		result.DHP += recoverPool(&a.Attributes.HP, a.Details.Level)
		result.DMP += recoverPool(&a.Attributes.MP, a.Details.Level)

		updates, recovered := hitDiceRecovery(a, 0)
		result.DHD += recovered
		result.ItemChanges = append(result.ItemChanges, updates...)
	}

	recoverResources(a, longRest)
	if longRest {
		recoverSlots(a.Spells)
		recoverSlots(a.Jutsus)
	}

	result.ItemChanges = append(result.ItemChanges, itemUsesRecovery(a, longRest, newDay)...)
	return result
}

// recoverPool restores up to level points, clears temporary padding, and
// returns the amount recovered against the unpadded maximum.
func recoverPool(p *actor.Pool, level int) int {
	current := p.Value
	newValue := current + level
	recovered := newValue
	if recovered > p.Max {
		recovered = p.Max
	}
	p.TempMax = 0
	if newValue > p.Max {
		newValue = p.Max
	}
	p.Value = newValue
	p.Temp = 0
	return recovered - current
}

// hitDiceRecovery recovers used hit dice up to the cap, preferring classes
// with larger dice. A zero cap means the default of half level, minimum one.
func hitDiceRecovery(a *actor.Actor, maxHitDice int) ([]item.Update, int) {
	if maxHitDice <= 0 {
		maxHitDice = a.Details.Level / 2
		if maxHitDice < 1 {
			maxHitDice = 1
		}
	}

	classes := a.Classes()
	sorted := make([]*item.Item, len(classes))
	copy(sorted, classes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HitDieSides() > sorted[j].HitDieSides()
	})

	var updates []item.Update
	recovered := 0
	for _, cls := range sorted {
		if cls.Class == nil {
			continue
		}
		if recovered >= maxHitDice || cls.Class.HitDiceUsed <= 0 {
			continue
		}
		delta := cls.Class.HitDiceUsed
		if remaining := maxHitDice - recovered; delta > remaining {
			delta = remaining
		}
		recovered += delta
		used := cls.Class.HitDiceUsed - delta
		updates = append(updates, item.Update{ID: cls.ID, HitDiceUsed: &used})
	}
	return updates, recovered
}

// recoverResources refills resource pools tagged for the rest length
func recoverResources(a *actor.Actor, longRest bool) {
	for _, r := range a.Resources {
		if r.Max == nil {
			continue
		}
		if (!longRest && r.SR) || (longRest && r.LR) {
			r.Value = *r.Max
		}
	}
}

// recoverSlots refills every slot tier to its override when set, else its max
func recoverSlots(slots map[string]*actor.SlotPool) {
	for _, slot := range slots {
		if slot.Override != nil {
			slot.Value = *slot.Override
		} else {
			slot.Value = slot.Max
		}
	}
}

// itemUsesRecovery builds the item updates for limited-use refills. Short
// rest periods always recover; long rest adds lr, a new day adds day.
// Recharge items only recharge on a long rest.
func itemUsesRecovery(a *actor.Actor, longRest, newDay bool) []item.Update {
	periods := map[item.UsePeriod]bool{item.UsePeriodShortRest: true}
	if longRest {
		periods[item.UsePeriodLongRest] = true
	}
	if newDay {
		periods[item.UsePeriodDay] = true
	}

	var updates []item.Update
	for _, it := range a.Items {
		u := item.Update{ID: it.ID}
		changed := false
		if it.Uses != nil && periods[it.Uses.Per] {
			max := it.Uses.Max
			u.UsesValue = &max
			changed = true
		}
		if longRest && it.Recharge != nil && it.Recharge.Value > 0 {
			charged := true
			u.RechargeCharged = &charged
			changed = true
		}
		if changed {
			updates = append(updates, u)
		}
	}
	return updates
}

// apply issues the single actor update followed by the single batched item
// update. If the second call fails after the first succeeded the actor is
// left with recovered pools and stale item counters; the failure propagates.
func (s *service) apply(ctx context.Context, a *actor.Actor, result *Result) error {
	if err := s.repository.Update(ctx, a); err != nil {
		return err
	}
	if err := s.repository.UpdateItems(ctx, a.ID, result.ItemChanges); err != nil {
		return err
	}
	return nil
}

// RollHitDie spends one hit die and heals by the roll
func (s *service) RollHitDie(ctx context.Context, actorID, denomination string) (*HitDieRoll, error) {
	a, err := s.repository.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}
	a.Reconcile(s.deriveOptions())

	roll, update, err := s.rollHitDieLocal(a, denomination)
	if err != nil {
		return nil, err
	}
	if roll == nil {
		return nil, nil
	}

	if err := s.repository.Update(ctx, a); err != nil {
		return nil, err
	}
	if err := s.repository.UpdateItems(ctx, a.ID, []item.Update{*update}); err != nil {
		return nil, err
	}
	return roll, nil
}

// rollHitDieLocal rolls one hit die against the in-memory actor, mutating the
// spending class and hit points. A nil roll means no eligible class.
func (s *service) rollHitDieLocal(a *actor.Actor, denomination string) (*HitDieRoll, *item.Update, error) {
	var cls *item.Item
	for _, c := range a.Classes() {
		if c.Class == nil {
			continue
		}
		levels := c.Class.Levels
		if levels < 1 {
			levels = 1
		}
		if c.Class.HitDiceUsed >= levels {
			continue
		}
		if denomination == "" || c.Class.HitDice == denomination {
			cls = c
			break
		}
	}
	if cls == nil {
		return nil, nil, nil
	}

	sides := cls.HitDieSides()
	if sides <= 0 {
		return nil, nil, trpgerr.FailedPreconditionf("class '%s' has no hit die denomination", cls.Name)
	}
	conMod := 0
	if con, ok := a.Abilities[rules.AbilityConstitution]; ok {
		conMod = con.Mod
	}

	roll, err := s.roller.Roll(1, sides, conMod)
	if err != nil {
		return nil, nil, err
	}

	cls.Class.HitDiceUsed++
	a.Attributes.HD--
	used := cls.Class.HitDiceUsed
	update := item.Update{ID: cls.ID, HitDiceUsed: &used}

	hp := &a.Attributes.HP
	dhp := hp.Max + hp.TempMax - hp.Value
	if roll.Total < dhp {
		dhp = roll.Total
	}
	hp.Value += dhp

	return &HitDieRoll{Roll: roll, ClassID: cls.ID, DHP: dhp}, &update, nil
}

// autoSpendHitDice rolls hit dice until the missing hit points fall under the
// threshold or no dice remain.
func (s *service) autoSpendHitDice(a *actor.Actor, threshold int) ([]item.Update, error) {
	max := a.Attributes.HP.Max + a.Attributes.HP.TempMax
	latest := make(map[string]int)
	var order []string

	for a.Attributes.HP.Value+threshold <= max {
		roll, update, err := s.rollHitDieLocal(a, "")
		if err != nil {
			return nil, err
		}
		if roll == nil {
			break
		}
		if _, seen := latest[update.ID]; !seen {
			order = append(order, update.ID)
		}
		latest[update.ID] = *update.HitDiceUsed
	}

	updates := make([]item.Update, 0, len(order))
	for _, id := range order {
		used := latest[id]
		updates = append(updates, item.Update{ID: id, HitDiceUsed: &used})
	}
	return updates, nil
}
