package nl

// insignificant holds Dutch fillers and connectors.
var insignificant = map[string]struct{}{
	"eh": {}, "oke": {}, "oké": {}, "goed": {}, "dus": {}, "en": {}, "ja": {},
	"nee": {}, "nou": {}, "even": {}, "toch": {}, "zeg": {}, "zo": {},
	"ongeveer": {}, "min": {}, "plus": {},
}

// splitterStems is the closed set of magnitude/tens/teen morphemes the
// compound splitter looks for inside a run-together Dutch number, plus
// the handful of words that must be protected as whole stems because
// they themselves contain a shorter stem as a substring (e.g.
// "negentig" contains "negen").
var splitterStems = []string{
	"honderd", "honderdste", "duizend", "duizendste",
	"miljoen", "miljoenste", "miljard", "miljardste",
	"biljoen", "biljoenste",
	"een", "drie", "zeven", "zevende", "negen", "negende",
	"tien", "tiende", "dertien", "dertiende", "veertien", "veertiende",
	"vijftien", "vijftiende", "zestien", "zestiende", "zeventien", "zeventiende",
	"achttien", "achttiende", "negentien", "negentiende",
	"zeventig", "zeventigste", "negentig", "negentigste",
	"en", "ën",
}
