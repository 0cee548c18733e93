// Package parser recovers tabular records from the plain-text export of a
// NEET-UG selection list PDF.
//
// The table columns in the export are not separated by any reliable
// delimiter, so the parser works positionally: a line classifier tracks
// whether the cursor is inside the data table, and a field extractor walks
// the whitespace tokens of each data row left to right, using token patterns
// and the closed category vocabulary to resolve column boundaries.
package parser

// Record is one parsed row of the selection table.
type Record struct {
	SrNo        string `csv:"Sr No" json:"sr_no"`
	AIR         string `csv:"AIR" json:"air"`
	NEETRollNo  string `csv:"NEET Roll No." json:"neet_roll_no"`
	CETFormNo   string `csv:"CET Form No." json:"cet_form_no"`
	Name        string `csv:"Name" json:"name"`
	Gender      string `csv:"Gender" json:"gender"`
	Category    string `csv:"Category" json:"category"`
	Quota       string `csv:"Quota" json:"quota"`
	CollegeCode string `csv:"College Code" json:"college_code"`
	CollegeName string `csv:"College Name" json:"college_name"`
}

// Columns lists the output column names in serialization order.
var Columns = []string{
	"Sr No",
	"AIR",
	"NEET Roll No.",
	"CET Form No.",
	"Name",
	"Gender",
	"Category",
	"Quota",
	"College Code",
	"College Name",
}

// Values returns the record's fields in Columns order.
func (r *Record) Values() []string {
	return []string{
		r.SrNo,
		r.AIR,
		r.NEETRollNo,
		r.CETFormNo,
		r.Name,
		r.Gender,
		r.Category,
		r.Quota,
		r.CollegeCode,
		r.CollegeName,
	}
}

// Result is the outcome of one parse pass.
type Result struct {
	// Records holds the parsed rows in input line order.
	Records []Record

	// RowsParsed is the number of records produced.
	RowsParsed int

	// LinesSkipped is the number of input lines discarded as noise.
	LinesSkipped int
}
