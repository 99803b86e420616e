package it

// insignificant holds Italian fillers and connectors.
var insignificant = map[string]struct{}{
	"eh": {}, "allora": {}, "bene": {}, "ecco": {}, "poi": {}, "e": {},
	"ah": {}, "uh": {}, "mah": {}, "meno": {}, "ok": {}, "si": {}, "sì": {},
	"più": {}, "ovvero": {}, "cioè": {}, "quello": {}, "va bene": {},
}

// wordSplitterStems is the closed set of magnitude/tens morphemes the
// splitter looks for inside a run-together Italian compound, transcribed
// directly from the upstream word splitter's stem list.
var wordSplitterStems = []string{
	"miliardesim", "milionesim", "bilionesim", "cinquanta", "centesim",
	"millesim", "miliardo", "miliardi", "quaranta", "sessanta", "settanta",
	"milione", "milioni", "bilione", "bilioni", "ottanta", "novanta",
	"trenta", "ttanta", "cento", "mille", "venti", "mila",
}
