package parser

// categories is the closed reservation-category vocabulary of the selection
// list layout. It is fixed at build time; the config surface deliberately
// cannot extend it.
var categories = map[string]bool{
	"OBC":   true,
	"SC":    true,
	"ST":    true,
	"SEBC":  true,
	"NTC":   true,
	"NTD":   true,
	"NTB":   true,
	"SBC":   true,
	"EWS":   true,
	"HA":    true,
	"VJA":   true,
	"SOBC":  true,
	"D1":    true,
	"D2":    true,
	"D3":    true,
	"PWD":   true,
	"ORP-C": true,
}

// subCodes are the secondary reservation markers (disability, orphan) that
// can compound with a primary category, as in "SC PWD".
var subCodes = map[string]bool{
	"D1":    true,
	"D2":    true,
	"D3":    true,
	"PWD":   true,
	"ORP-C": true,
}

func isCategory(token string) bool { return categories[token] }

func isSubCode(token string) bool { return subCodes[token] }
