package rest

import "github.com/lucasdlb17/fvtt-trpg/internal/domain/item"

// Result is the transactional record of one rest: every delta it produced
// and the batched item updates it applied.
type Result struct {
	// DHD is the net change in available hit dice (negative when spent)
	DHD int `json:"dhd"`

	// DHP is the net change in hit points
	DHP int `json:"dhp"`

	// DMP is the net change in magic points
	DMP int `json:"dmp"`

	// ItemChanges are the embedded item updates applied with the rest
	ItemChanges []item.Update `json:"item_changes"`

	LongRest bool `json:"long_rest"`
	NewDay   bool `json:"new_day"`
}
