// Package draft holds the in-memory order draft: the line-item
// aggregator, the three order-type composers and the advance-payment
// allocation used when a draft is split into per-school orders.
package draft

import (
	"uniformes/internal/domain"
)

// Draft is a whole-cart order in progress. It lives only in memory and
// is owned by exactly one POS session; a restart loses it.
type Draft struct {
	ClientID      string
	DeliveryDate  string // YYYY-MM-DD, optional
	Notes         string
	Advance       int64 // pesos
	AdvanceMethod domain.PaymentMethod

	items []domain.LineItem
}

func New() *Draft { return &Draft{} }

// AddItem appends without dedup: two identical configurations become two
// separate items.
func (d *Draft) AddItem(it domain.LineItem) {
	d.items = append(d.items, it)
}

// RemoveItem removes the item with the given ephemeral id. It reports
// whether anything was removed; an absent id is a no-op.
func (d *Draft) RemoveItem(tempID string) bool {
	for i, it := range d.items {
		if it.TempID == tempID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the line items in insertion order.
func (d *Draft) Items() []domain.LineItem {
	out := make([]domain.LineItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Draft) Len() int { return len(d.items) }

// Total is recomputed on every call; it is never cached because items
// come and go.
func (d *Draft) Total() int64 {
	var t int64
	for _, it := range d.items {
		t += it.Subtotal()
	}
	return t
}

// Clear drops all items and payment fields but keeps the client, so a
// follow-up order for the same client can start immediately.
func (d *Draft) Clear() {
	d.items = nil
	d.DeliveryDate = ""
	d.Notes = ""
	d.Advance = 0
	d.AdvanceMethod = ""
}

// Partition is a read-only per-school grouping of a draft's items.
type Partition struct {
	SchoolID   string
	SchoolName string
	Items      []domain.LineItem
}

func (p Partition) Subtotal() int64 {
	var s int64
	for _, it := range p.Items {
		s += it.Subtotal()
	}
	return s
}

// PartitionBySchool groups items by school. Partitions appear in
// first-seen school order and items keep insertion order within each
// partition. The result is derived, recomputed on every call.
func (d *Draft) PartitionBySchool() []Partition {
	var out []Partition
	index := map[string]int{}
	for _, it := range d.items {
		i, ok := index[it.SchoolID]
		if !ok {
			i = len(out)
			index[it.SchoolID] = i
			out = append(out, Partition{SchoolID: it.SchoolID, SchoolName: it.SchoolName})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}
