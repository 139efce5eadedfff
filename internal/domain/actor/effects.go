package actor

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasdlb17/fvtt-trpg/internal/rules"
)

// EffectChangeMode selects how an effect change combines with the current
// value of its target attribute.
type EffectChangeMode int

const (
	ChangeModeCustom EffectChangeMode = iota
	ChangeModeMultiply
	ChangeModeAdd
	ChangeModeDowngrade
	ChangeModeUpgrade
	ChangeModeOverride
)

// EffectChange is a single attribute mutation carried by an active effect
type EffectChange struct {
	Key      string           `json:"key"`
	Mode     EffectChangeMode `json:"mode"`
	Value    string           `json:"value"`
	Priority *int             `json:"priority,omitempty"`
}

// priority defaults to mode*10 when unset, matching the host document model
func (c EffectChange) priority() int {
	if c.Priority != nil {
		return *c.Priority
	}
	return int(c.Mode) * 10
}

// Effect is an active effect attached to an actor, either directly or
// transferred from an owned item.
type Effect struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Icon     string         `json:"icon"`
	Origin   string         `json:"origin"`
	Disabled bool           `json:"disabled"`
	Changes  []EffectChange `json:"changes"`

	// Suppressed is derived each cycle from the originating item's state
	Suppressed bool `json:"-"`
}

// Clone returns a deep copy of the effect
func (e *Effect) Clone() *Effect {
	out := *e
	out.Changes = make([]EffectChange, len(e.Changes))
	for i, c := range e.Changes {
		cc := c
		if c.Priority != nil {
			p := *c.Priority
			cc.Priority = &p
		}
		out.Changes[i] = cc
	}
	return &out
}

// determineSuppression marks the effect suppressed when its originating item
// is unequipped, or requires attunement that has not been completed. Effects
// without a resolvable item origin are never suppressed.
func (e *Effect) determineSuppression(a *Actor) {
	e.Suppressed = false
	if e.Disabled || e.Origin == "" {
		return
	}
	parts := strings.Split(e.Origin, ".")
	if len(parts) != 4 || parts[0] != "Actor" || parts[2] != "Item" {
		return
	}
	if parts[1] != a.ID {
		return
	}
	it := a.Item(parts[3])
	if it == nil {
		return
	}
	if !it.Equipped || it.Attunement == rules.AttunementRequired {
		e.Suppressed = true
	}
}

// applyActiveEffects runs the suppression pass, then applies every change
// from enabled, unsuppressed effects in global priority order.
func (a *Actor) applyActiveEffects() {
	type pending struct {
		change EffectChange
		order  int
	}
	var changes []pending
	order := 0
	for _, e := range a.Effects {
		e.determineSuppression(a)
		if e.Disabled || e.Suppressed {
			continue
		}
		for _, c := range e.Changes {
			changes = append(changes, pending{change: c, order: order})
			order++
		}
	}
	sort.SliceStable(changes, func(i, j int) bool {
		pi, pj := changes[i].change.priority(), changes[j].change.priority()
		if pi != pj {
			return pi < pj
		}
		return changes[i].order < changes[j].order
	})
	for _, p := range changes {
		a.applyChange(p.change)
	}
}

// applyChange mutates the numeric attribute addressed by the change key.
// Unknown keys are ignored.
func (a *Actor) applyChange(c EffectChange) {
	target := a.resolveChangeTarget(c.Key)
	if target == nil {
		return
	}
	delta, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return
	}
	current := float64(*target)
	switch c.Mode {
	case ChangeModeMultiply:
		*target = int(math.Floor(current * delta))
	case ChangeModeAdd:
		*target = int(current + delta)
	case ChangeModeDowngrade:
		if delta < current {
			*target = int(delta)
		}
	case ChangeModeUpgrade:
		if delta > current {
			*target = int(delta)
		}
	case ChangeModeOverride:
		*target = int(delta)
	}
}

// resolveChangeTarget maps a dotted change key to the addressed stored field.
// Only fields that feed derivation are addressable.
func (a *Actor) resolveChangeTarget(key string) *int {
	key = strings.TrimPrefix(key, "data.")
	parts := strings.Split(key, ".")
	switch {
	case len(parts) == 3 && parts[0] == "abilities" && parts[2] == "value":
		if abl, ok := a.Abilities[rules.Ability(parts[1])]; ok {
			return &abl.Value
		}
	case len(parts) == 3 && parts[0] == "abilities" && parts[2] == "checkBonus":
		if abl, ok := a.Abilities[rules.Ability(parts[1])]; ok {
			return &abl.CheckBonus
		}
	case len(parts) == 3 && parts[0] == "saves" && parts[2] == "saveBonus":
		if sv, ok := a.Saves[rules.Save(parts[1])]; ok {
			return &sv.SaveBonus
		}
	case len(parts) == 3 && parts[0] == "skills" && parts[2] == "bonus":
		if sk, ok := a.Skills[rules.Skill(parts[1])]; ok {
			return &sk.Bonus
		}
	case len(parts) == 3 && parts[0] == "attributes" && parts[1] == "ac":
		switch parts[2] {
		case "bonus":
			return &a.Attributes.AC.Bonus
		case "base":
			return &a.Attributes.AC.Base
		case "cover":
			return &a.Attributes.AC.Cover
		case "flat":
			return &a.Attributes.AC.Flat
		case "shield":
			return &a.Attributes.AC.Shield
		}
	case len(parts) == 3 && parts[0] == "attributes" && parts[1] == "hp" && parts[2] == "tempmax":
		return &a.Attributes.HP.TempMax
	case len(parts) == 3 && parts[0] == "attributes" && parts[1] == "mp" && parts[2] == "tempmax":
		return &a.Attributes.MP.TempMax
	case len(parts) == 2 && parts[0] == "bonuses":
		switch parts[1] {
		case "check":
			return &a.Bonuses.Check
		case "save":
			return &a.Bonuses.Save
		case "skill":
			return &a.Bonuses.Skill
		case "spelldc":
			return &a.Bonuses.SpellDC
		}
	}
	return nil
}
