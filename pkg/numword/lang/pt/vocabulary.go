package pt

// insignificant holds Portuguese fillers and connectors.
var insignificant = map[string]struct{}{
	"eh": {}, "então": {}, "bem": {}, "isso": {}, "outra vez": {}, "e": {},
	"uh": {}, "ha": {}, "ah": {}, "hu": {}, "um": {}, "menos": {}, "ok": {},
	"sim": {}, "mais": {}, "aí está": {}, "digo": {}, "ou": {}, "seja": {},
	"aquele": {}, "é": {}, "aquilo": {}, "em": {}, "fim": {}, "mais tarde": {},
	"mas": {}, "ei": {}, "agora": {}, "hum": {}, "não": {}, "com": {}, "são": {},
	"novamente": {},
}
