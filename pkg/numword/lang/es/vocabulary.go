package es

// insignificant holds Spanish fillers and connectors.
var insignificant = map[string]struct{}{
	"eh": {}, "este": {}, "esto": {}, "bueno": {}, "pues": {}, "o sea": {},
	"y": {}, "ha": {}, "ah": {}, "hu": {}, "um": {}, "menos": {}, "ok": {},
	"si": {}, "sí": {}, "mas": {}, "más": {}, "vale": {},
}
