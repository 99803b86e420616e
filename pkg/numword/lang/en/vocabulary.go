package en

// insignificant holds the English linking words: tokens that carry no
// numeric value but do not break contiguity between two number runs.
var insignificant = map[string]struct{}{
	"and": {}, "ha": {}, "ah": {}, "hu": {}, "hum": {}, "minus": {},
	"more": {}, "ok": {}, "plus": {}, "so": {}, "that's": {}, "then": {},
	"uh": {}, "well": {}, "yeah": {}, "yes": {}, "is": {},
}
