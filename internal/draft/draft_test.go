package draft_test

import (
	"testing"

	"uniformes/internal/domain"
	"uniformes/internal/draft"
)

func item(tempID, school, schoolName string, price int64, qty int) domain.LineItem {
	return domain.LineItem{
		TempID:        tempID,
		OrderType:     domain.TypeCustom,
		GarmentTypeID: "camisa",
		Quantity:      qty,
		UnitPrice:     price,
		SchoolID:      school,
		SchoolName:    schoolName,
	}
}

func TestDraft_TotalAndRemove(t *testing.T) {
	d := draft.New()
	d.AddItem(item("a", "s1", "Colegio A", 10000, 2))
	d.AddItem(item("b", "s1", "Colegio A", 5000, 1))

	if got := d.Total(); got != 25000 {
		t.Fatalf("want total 25000, got %d", got)
	}

	// two identical configurations stay two items
	d.AddItem(item("c", "s1", "Colegio A", 5000, 1))
	d.AddItem(item("d", "s1", "Colegio A", 5000, 1))
	if d.Len() != 4 {
		t.Fatalf("want 4 items, got %d", d.Len())
	}

	if !d.RemoveItem("c") {
		t.Fatal("expected removal of existing item")
	}
	if d.Len() != 3 {
		t.Fatalf("want 3 items after removal, got %d", d.Len())
	}
	if got := d.Total(); got != 25000 {
		t.Fatalf("total should drop by exactly the removed item's subtotal; got %d", got)
	}

	// absent id is a no-op
	if d.RemoveItem("nope") {
		t.Fatal("removing an unknown id must be a no-op")
	}
	if d.Len() != 3 {
		t.Fatalf("no-op removal changed item count: %d", d.Len())
	}
}

func TestDraft_PartitionBySchool(t *testing.T) {
	d := draft.New()
	d.AddItem(item("a", "s1", "Colegio A", 10000, 2))
	d.AddItem(item("b", "s2", "Colegio B", 20000, 1))
	d.AddItem(item("c", "s1", "Colegio A", 5000, 1))

	parts := d.PartitionBySchool()
	if len(parts) != 2 {
		t.Fatalf("want 2 partitions, got %d", len(parts))
	}
	// first-seen school order
	if parts[0].SchoolID != "s1" || parts[1].SchoolID != "s2" {
		t.Fatalf("partition order wrong: %s, %s", parts[0].SchoolID, parts[1].SchoolID)
	}
	// insertion order within a partition
	if len(parts[0].Items) != 2 || parts[0].Items[0].TempID != "a" || parts[0].Items[1].TempID != "c" {
		t.Fatalf("items out of order in partition: %+v", parts[0].Items)
	}
	if parts[0].Subtotal() != 25000 || parts[1].Subtotal() != 20000 {
		t.Fatalf("bad subtotals: %d, %d", parts[0].Subtotal(), parts[1].Subtotal())
	}
}

func TestDraft_ClearKeepsClient(t *testing.T) {
	d := draft.New()
	d.ClientID = "cl-0001"
	d.Advance = 5000
	d.AdvanceMethod = domain.PayNequi
	d.AddItem(item("a", "s1", "Colegio A", 10000, 1))

	d.Clear()
	if d.Len() != 0 || d.Advance != 0 || d.AdvanceMethod != "" {
		t.Fatalf("clear left state behind: %+v", d)
	}
	if d.ClientID != "cl-0001" {
		t.Fatal("clear should keep the client")
	}
}
