package finstmt

import (
	"testing"
)

func TestComposer_EditRoundTripNoOp(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionRevenue, 1, KindAmount2025)

	before := c.DisplayText(ref)
	if before != "$4,500" {
		t.Fatalf("DisplayText() = %q, want %q", before, "$4,500")
	}

	raw, ok := c.StartEdit(ref)
	if !ok {
		t.Fatal("StartEdit() refused a valid field")
	}
	if raw != "4500" {
		t.Errorf("StartEdit() = %q, want the bare number %q", raw, "4500")
	}

	// leaving without a change restores the exact display text
	if after := c.EndEdit(ref); after != before {
		t.Errorf("EndEdit() = %q, want %q", after, before)
	}
}

func TestComposer_TotalRecomputedAfterEdit(t *testing.T) {
	c := NewComposer(sampleReport())

	snap := c.Snapshot()
	if got := snap.Sections[0].Total.Amount2025; got != "$124,500" {
		t.Fatalf("Total Income before edit = %q, want %q", got, "$124,500")
	}

	ref := RowField(SectionRevenue, 0, KindAmount2025)
	c.StartEdit(ref)
	if !c.ValueChanged(ref, "200000") {
		t.Fatal("ValueChanged() did not commit an acceptable amount")
	}

	snap = c.Snapshot()
	total := snap.Sections[0].Total
	if total.Label != "Total Income" {
		t.Errorf("total row label = %q, want %q", total.Label, "Total Income")
	}
	// 200000 + 4500, recomputed from the current rows
	if total.Amount2025 != "$204,500" {
		t.Errorf("Total Income after edit = %q, want %q", total.Amount2025, "$204,500")
	}

	// the stored bottom line follows the committed sums: 204500 - 68000
	if got := c.Data().IncomeStatement.NetProfit.Amount2025; got != 136500 {
		t.Errorf("stored net profit = %v, want %v", got, 136500)
	}
	if snap.NetProfit.Amount2025 != "$136,500" {
		t.Errorf("net profit row = %q, want %q", snap.NetProfit.Amount2025, "$136,500")
	}
}

func TestComposer_SnapshotShowsRawWhileEditing(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionRevenue, 0, KindAmount2025)

	c.StartEdit(ref)
	c.ValueChanged(ref, "999888")

	snap := c.Snapshot()
	row := snap.Sections[0].Rows[0]
	if row.Amount2025 != "999888" {
		t.Errorf("editing row shows %q, want the raw text %q", row.Amount2025, "999888")
	}
	// totals always come from the committed model
	if snap.Sections[0].Total.Amount2025 != "$1,004,388" {
		t.Errorf("total = %q, want %q", snap.Sections[0].Total.Amount2025, "$1,004,388")
	}

	end := c.EndEdit(ref)
	if end != "$999,888" {
		t.Errorf("EndEdit() = %q, want the reformatted %q", end, "$999,888")
	}
}

func TestComposer_RejectedEditKeepsModel(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionExpenses, 0, KindItem)

	c.StartEdit(ref)
	if c.ValueChanged(ref, "<script></script>") {
		t.Fatal("ValueChanged() committed text that sanitizes to nothing")
	}
	if got := c.Data().IncomeStatement.Expenses[0].Item; got != "Employee benefits expense" {
		t.Errorf("model label changed to %q on a rejected edit", got)
	}

	// on the next render after the edit ends, the committed value is back
	if got := c.EndEdit(ref); got != "Employee benefits expense" {
		t.Errorf("EndEdit() = %q, want the committed label", got)
	}
}

func TestComposer_KeystrokeSanitized(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionExpenses, 0, KindItem)

	c.StartEdit(ref)
	if !c.ValueChanged(ref, "<b>Rent</b> expense") {
		t.Fatal("ValueChanged() rejected sanitizable text")
	}
	if got := c.Data().IncomeStatement.Expenses[0].Item; got != "Rent expense" {
		t.Errorf("model label = %q, want the sanitized %q", got, "Rent expense")
	}
}

func TestComposer_UnparseableAmountCommitsZero(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionAssets, 0, KindAmount2024)

	c.StartEdit(ref)
	if !c.ValueChanged(ref, "--..") {
		t.Fatal("ValueChanged() rejected numeric punctuation")
	}
	if got := c.Data().BalanceSheet.Assets[0].Amount2024; got != 0 {
		t.Errorf("committed amount = %v, want 0 for unparseable text", got)
	}
}

func TestComposer_BusyDisablesEditing(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionRevenue, 0, KindAmount2025)

	c.SetBusy(true)
	if _, ok := c.StartEdit(ref); ok {
		t.Error("StartEdit() should be refused while busy")
	}
	if c.ValueChanged(ref, "1") {
		t.Error("ValueChanged() should be refused while busy")
	}
	if !c.Snapshot().Busy {
		t.Error("snapshot should carry the busy flag")
	}

	c.SetBusy(false)
	if _, ok := c.StartEdit(ref); !ok {
		t.Error("StartEdit() should work again once not busy")
	}
}

func TestComposer_Callbacks(t *testing.T) {
	c := NewComposer(sampleReport())

	var gotSection Section
	var gotItems []FinancialItem
	var dataCalls int
	c.OnItemsChange = func(sec Section, items []FinancialItem) {
		gotSection = sec
		gotItems = items
	}
	c.OnDataChange = func(r *ReportData) { dataCalls++ }

	ref := RowField(SectionAssets, 0, KindAmount2025)
	c.StartEdit(ref)
	c.ValueChanged(ref, "90000")

	if gotSection != SectionAssets {
		t.Errorf("OnItemsChange section = %v, want %v", gotSection, SectionAssets)
	}
	if len(gotItems) != 1 || gotItems[0].Amount2025 != 90000 {
		t.Errorf("OnItemsChange items = %+v, want the updated row", gotItems)
	}
	if dataCalls != 1 {
		t.Errorf("OnDataChange called %d times, want 1", dataCalls)
	}

	// a report-wide field fires only the data callback
	gotItems = nil
	c.StartEdit(CompanyNameField)
	c.ValueChanged(CompanyNameField, "New Name Pty Ltd")
	if gotItems != nil {
		t.Error("OnItemsChange should not fire for a report-wide field")
	}
	if dataCalls != 2 {
		t.Errorf("OnDataChange called %d times, want 2", dataCalls)
	}
	if c.Data().CompanyName != "New Name Pty Ltd" {
		t.Errorf("company name = %q", c.Data().CompanyName)
	}
}

func TestComposer_CallbackGetsACopy(t *testing.T) {
	c := NewComposer(sampleReport())
	c.OnDataChange = func(r *ReportData) {
		r.CompanyName = "mutated by callback"
		r.IncomeStatement.Revenue[0].Amount2025 = -1
	}
	ref := RowField(SectionRevenue, 0, KindAmount2025)
	c.StartEdit(ref)
	c.ValueChanged(ref, "200000")

	if c.Data().CompanyName != "Acme Trading Pty Ltd" {
		t.Error("callback mutation reached the canonical report")
	}
	if c.Data().IncomeStatement.Revenue[0].Amount2025 != 200000 {
		t.Error("callback mutation reached the canonical rows")
	}
}

func TestComposer_Replace(t *testing.T) {
	c := NewComposer(sampleReport())
	c.StartEdit(CompanyNameField)
	c.ValueChanged(CompanyNameField, "Halfway")

	var replaced *ReportData
	c.OnDataChange = func(r *ReportData) { replaced = r }

	next := sampleReport()
	next.CompanyName = "Regenerated Pty Ltd"
	c.Replace(next)

	if c.Data().CompanyName != "Regenerated Pty Ltd" {
		t.Errorf("Replace() kept %q", c.Data().CompanyName)
	}
	if c.Session().Editing(CompanyNameField) {
		t.Error("Replace() should drop pending edits")
	}
	if replaced == nil || replaced.CompanyName != "Regenerated Pty Ltd" {
		t.Error("Replace() should notify with the new report")
	}
}

func TestComposer_InvalidRowIgnored(t *testing.T) {
	c := NewComposer(sampleReport())
	ref := RowField(SectionRevenue, 99, KindAmount2025)

	if _, ok := c.StartEdit(ref); ok {
		t.Error("StartEdit() accepted a row that does not exist")
	}
	if c.ValueChanged(ref, "5") {
		t.Error("ValueChanged() accepted a row that does not exist")
	}
	if c.Session().Editing(ref) {
		t.Error("no pending record should exist for an invalid field")
	}
}

func TestComposer_SnapshotAnchors(t *testing.T) {
	r := sampleReport()
	r.IncomeStatement.Revenue[1].NoteRef = 2 // matches "Note 2" in the notes
	r.IncomeStatement.Expenses[1].NoteRef = 9 // no such note
	c := NewComposer(r)

	snap := c.Snapshot()
	if got := snap.Sections[0].Rows[1].Anchor; got != "note-2" {
		t.Errorf("resolved anchor = %q, want %q", got, "note-2")
	}
	if got := snap.Sections[1].Rows[1].Anchor; got != "" {
		t.Errorf("dangling reference resolved to %q, want empty", got)
	}
	if len(snap.Blocks) == 0 {
		t.Error("snapshot should carry the parsed notes blocks")
	}
}

func TestComposer_ComplianceStyle(t *testing.T) {
	r := sampleReport()
	r.BalanceSheet.Liabilities[0].Amount2025 = -20000
	c := NewComposer(r)
	c.SetStyle(StyleCompliance)

	snap := c.Snapshot()
	liabilities := snap.Sections[3]
	if got := liabilities.Rows[0].Amount2025; got != "(20,000)" {
		t.Errorf("compliance display = %q, want %q", got, "(20,000)")
	}
	if got := liabilities.Rows[0].Amount2024; got != "15,000" {
		t.Errorf("compliance display = %q, want %q", got, "15,000")
	}
}

func TestComposer_NetAssets(t *testing.T) {
	c := NewComposer(sampleReport())
	snap := c.Snapshot()

	// 80,000 assets less 20,000 liabilities
	if snap.NetAssets.Amount2025 != "$60,000" {
		t.Errorf("net assets = %q, want %q", snap.NetAssets.Amount2025, "$60,000")
	}
	if !snap.NetAssets.Derived || !snap.NetAssets.Bold {
		t.Error("net assets should be a derived bold row")
	}
}
