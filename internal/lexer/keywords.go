package lexer

// keywords is the reserved-word set used to promote identifier tokens to
// keyword tokens. The set is Python's keyword list, the language the
// structural provider targets first.
var keywords = map[string]struct{}{
	"False": {}, "None": {}, "True": {}, "and": {}, "as": {}, "assert": {},
	"async": {}, "await": {}, "break": {}, "class": {}, "continue": {},
	"def": {}, "del": {}, "elif": {}, "else": {}, "except": {},
	"finally": {}, "for": {}, "from": {}, "global": {}, "if": {},
	"import": {}, "in": {}, "is": {}, "lambda": {}, "nonlocal": {},
	"not": {}, "or": {}, "pass": {}, "raise": {}, "return": {},
	"try": {}, "while": {}, "with": {}, "yield": {},
}

// IsKeyword reports whether ident is a reserved word. The match is exact;
// unlike many query languages the keyword set here is case-sensitive.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
