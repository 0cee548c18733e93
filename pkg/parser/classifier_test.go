package parser

import "testing"

func TestClassifier_HeaderStartsTable(t *testing.T) {
	var c Classifier

	d := c.Classify("Sr.     AIR     NEET Roll No.   CET Form No.   Name")
	if d.Action != ActionTableStart {
		t.Fatalf("Action = %v, want ActionTableStart", d.Action)
	}
	if !c.InTable() {
		t.Error("classifier should be in table after header")
	}

	// The line after the header is always discarded, whatever it contains.
	d = c.Classify("1 500 123456 7890 JOHN DOE M OBC State 1001:College")
	if d.Action != ActionDiscard {
		t.Errorf("Action = %v, want ActionDiscard for second header line", d.Action)
	}
	if d.Reason != "second header line" {
		t.Errorf("Reason = %q, want %q", d.Reason, "second header line")
	}

	// The skip is one-shot: the next line processes normally.
	d = c.Classify("1 500 123456 7890 JOHN DOE M OBC State 1001:College")
	if d.Action != ActionProcess {
		t.Errorf("Action = %v, want ActionProcess", d.Action)
	}
}

func TestClassifier_IrregularHeaderSpacing(t *testing.T) {
	var c Classifier

	d := c.Classify("Sr. AIR NEET Roll No.")
	if d.Action != ActionTableStart {
		t.Errorf("Action = %v, want ActionTableStart for irregular spacing", d.Action)
	}
}

func TestClassifier_HeaderRearmsPendingSkip(t *testing.T) {
	var c Classifier

	c.Classify("Sr.     AIR     NEET Roll No.")
	// A second header line while a skip is pending re-arms the skip instead
	// of consuming it.
	d := c.Classify("Sr.     AIR     NEET Roll No.")
	if d.Action != ActionTableStart {
		t.Fatalf("Action = %v, want ActionTableStart", d.Action)
	}
	d = c.Classify("No.       Rank")
	if d.Reason != "second header line" {
		t.Errorf("Reason = %q, want %q", d.Reason, "second header line")
	}
}

func TestClassifier_SkipPendingSurvivesEmptyLine(t *testing.T) {
	var c Classifier

	c.Classify("Sr.     AIR     NEET Roll No.")
	d := c.Classify("")
	if d.Reason != "empty line" {
		t.Fatalf("Reason = %q, want %q", d.Reason, "empty line")
	}
	d = c.Classify("No.       Rank")
	if d.Reason != "second header line" {
		t.Errorf("Reason = %q, want %q: skip must survive blank lines", d.Reason, "second header line")
	}
}

func TestClassifier_LegendsEndsTable(t *testing.T) {
	var c Classifier
	c.Classify("Sr.     AIR     NEET Roll No.")
	c.Classify("No.")

	d := c.Classify("Legends : PWD - Person with Disability")
	if d.Action != ActionTableEnd {
		t.Fatalf("Action = %v, want ActionTableEnd", d.Action)
	}
	if c.InTable() {
		t.Error("classifier should be out of table after Legends")
	}

	d = c.Classify("1 500 123456 7890 JOHN DOE M OBC State 1001:College")
	if d.Action != ActionDiscard {
		t.Errorf("Action = %v, want ActionDiscard outside table", d.Action)
	}
	if d.Reason != "outside table" {
		t.Errorf("Reason = %q, want %q", d.Reason, "outside table")
	}
	if d.Tally {
		t.Error("lines outside the table should not count as skipped")
	}
}

func TestClassifier_ProsePrefixesOnlyOutsideTable(t *testing.T) {
	var c Classifier

	d := c.Classify("GOVERNMENT OF MAHARASHTRA")
	if d.Reason != "page header/footer" {
		t.Errorf("Reason = %q, want %q", d.Reason, "page header/footer")
	}

	// Inside the table the same prefix must reach the extractor.
	c.Classify("Sr.     AIR     NEET Roll No.")
	c.Classify("No.")
	d = c.Classify("GOVERNMENT QUOTA NOTE")
	if d.Action != ActionProcess {
		t.Errorf("Action = %v, want ActionProcess for prose prefix inside table", d.Action)
	}
}

func TestClassifier_UnconditionalDiscards(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		inTable bool
		reason  string
	}{
		{"empty outside", "", false, "empty line"},
		{"empty inside", "", true, "empty line"},
		{"banner outside", "Current Selection Details : Round 1", false, "selection details banner"},
		{"banner inside", "Current Selection Details : Round 1", true, "selection details banner"},
		{"dashes", "--------------------", true, "divider line"},
		{"equals", "====================", true, "divider line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classifier{inTable: tt.inTable}
			d := c.Classify(tt.line)
			if d.Action != ActionDiscard {
				t.Fatalf("Action = %v, want ActionDiscard", d.Action)
			}
			if d.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", d.Reason, tt.reason)
			}
			if !d.Tally {
				t.Error("discard should count toward the skipped total")
			}
		})
	}
}
