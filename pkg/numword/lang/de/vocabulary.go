package de

// insignificant holds German fillers and connectors.
var insignificant = map[string]struct{}{
	"aber": {}, "ah": {}, "äh": {}, "ähm": {}, "also": {}, "gut": {},
	"auch": {}, "denn": {}, "doch": {}, "dort": {}, "eben": {}, "eh": {},
	"halt": {}, "ja": {}, "mal": {}, "sehen": {}, "naja": {}, "nun": {},
	"ok": {}, "schon": {}, "so": {}, "genau": {}, "und": {}, "noch": {},
}

// units holds the spoken forms for 1-9. "ein" is the compound-prefix form
// used inside "einundzwanzig"; "eins" is the standalone word.
var units = map[string]string{
	"ein": "1", "eins": "1", "zwei": "2", "drei": "3", "vier": "4",
	"fünf": "5", "sechs": "6", "sieben": "7", "acht": "8", "neun": "9",
}

var teens = map[string]string{
	"zehn": "10", "elf": "11", "zwölf": "12", "dreizehn": "13",
	"vierzehn": "14", "fünfzehn": "15", "sechzehn": "16",
	"siebzehn": "17", "achtzehn": "18", "neunzehn": "19",
}

var tens = map[string]string{
	"zwanzig": "20", "dreißig": "30", "vierzig": "40", "fünfzig": "50",
	"sechzig": "60", "siebzig": "70", "achtzig": "80", "neunzig": "90",
}

var unitOrder = []string{"ein", "eins", "zwei", "drei", "vier", "fünf", "sechs", "sieben", "acht", "neun"}
var tensOrder = []string{"zwanzig", "dreißig", "vierzig", "fünfzig", "sechzig", "siebzig", "achtzig", "neunzig"}
var teensOrder = []string{"zehn", "elf", "zwölf", "dreizehn", "vierzehn", "fünfzehn", "sechzehn", "siebzehn", "achtzehn", "neunzehn"}

// ordinalUnits maps German's irregular 1st-19th ordinal words (and the
// round tens, which are regular but listed here for lookup symmetry)
// straight to their digit value; the "." ordinal marker is attached by the
// caller via GetMorphMarker.
var ordinalUnits = map[string]string{
	"erste": "1", "zweite": "2", "dritte": "3", "vierte": "4", "fünfte": "5",
	"sechste": "6", "siebte": "7", "achte": "8", "neunte": "9",
	"zehnte": "10", "elfte": "11", "zwölfte": "12", "dreizehnte": "13",
	"vierzehnte": "14", "fünfzehnte": "15", "sechzehnte": "16",
	"siebzehnte": "17", "achtzehnte": "18", "neunzehnte": "19",
	"zwanzigste": "20", "dreißigste": "30", "vierzigste": "40",
	"fünfzigste": "50", "sechzigste": "60", "siebzigste": "70",
	"achtzigste": "80", "neunzigste": "90",
}

// atomDictionary is the closed set of morphemes that make up every German
// cardinal: units, teens, tens, "und", and the four magnitude words. It is
// used both for direct lookup and to split a run-together compound word.
var atomDictionary = buildAtomDictionary()

func buildAtomDictionary() []string {
	var d []string
	d = append(d, unitOrder...)
	d = append(d, teensOrder...)
	d = append(d, tensOrder...)
	d = append(d, "und", "hundert", "tausend", "millionen", "million", "milliarden", "milliarde")
	return d
}
