// Package reconcile builds display views that merge confirmed local rows with
// mutations still waiting in the outbox.
package reconcile

import (
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/depotsync/internal/models"
)

// DefaultLimit number of rows in the "last items" view
const DefaultLimit = 20

const minuteLayout = "2006-01-02 15:04"

// Merge returns one deduplicated view of confirmed and pending items, newest
// first, at most limit rows (limit <= 0 means DefaultLimit).
//
// Candidates are ranked confirmed before pending and resolved names before
// unknown ones, so when two candidates describe the same event the better one
// survives. Identity is the client uuid, the confirmed id, and a fuzzy key of
// material, quantity, price and minute. Unnamed candidates are also matched on
// a looser key without the material.
func Merge(confirmed, pending []models.HistoryItem, limit int) []models.HistoryItem {
	if limit <= 0 {
		limit = DefaultLimit
	}

	candidates := make([]models.HistoryItem, 0, len(confirmed)+len(pending))
	for _, c := range confirmed {
		c.Pending = false
		candidates = append(candidates, c)
	}
	for _, p := range pending {
		p.Pending = true
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := rank(candidates[i]), rank(candidates[j])
		if ri != rj {
			return ri > rj
		}
		return candidates[i].Data.After(candidates[j].Data)
	})

	seen := make(map[string]struct{}, len(candidates)*3)
	seenLoose := make(map[string]struct{}, len(candidates))
	unique := make([]models.HistoryItem, 0, len(candidates))

	for _, c := range candidates {
		keys := identityKeys(c)
		if duplicate(seen, keys) {
			continue
		}
		loose := looseKey(c)
		if !c.NameResolved() {
			if _, ok := seenLoose[loose]; ok {
				continue
			}
		}

		unique = append(unique, c)
		for _, k := range keys {
			seen[k] = struct{}{}
		}
		seenLoose[loose] = struct{}{}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Data.After(unique[j].Data)
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// rank 4 = confirmed+name, 3 = confirmed, 2 = pending+name, 1 = pending
func rank(h models.HistoryItem) int {
	r := 1
	if h.NameResolved() {
		r++
	}
	if !h.Pending {
		r += 2
	}
	return r
}

func identityKeys(h models.HistoryItem) []string {
	keys := make([]string, 0, 3)
	if h.ClientUUID != "" {
		keys = append(keys, "uuid:"+h.ClientUUID)
	}
	if !h.Pending && h.ID > 0 {
		keys = append(keys, fmt.Sprintf("id:%d", h.ID))
	}
	keys = append(keys, fmt.Sprintf("f:%d|%s|%s|%s",
		h.Material, h.KgTotal.StringFixed(3), h.PrecoKg.StringFixed(3), minute(h.Data)))
	return keys
}

func looseKey(h models.HistoryItem) string {
	return fmt.Sprintf("lf:%s|%s|%s", h.KgTotal.StringFixed(3), h.PrecoKg.StringFixed(3), minute(h.Data))
}

// minute truncates to the minute in UTC
func minute(t time.Time) string {
	return t.UTC().Format(minuteLayout)
}

func duplicate(seen map[string]struct{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			return true
		}
	}
	return false
}
