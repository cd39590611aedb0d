package syntax

// Language describes the comment and string syntax of a language.
// Zero-value fields disable the corresponding construct.
type Language struct {
	// Name is the language identifier (e.g., "go").
	Name string

	// LineComment starts a comment running to end of line (e.g., "//").
	LineComment string

	// BlockCommentStart and BlockCommentEnd delimit block comments.
	BlockCommentStart string
	BlockCommentEnd   string

	// Quotes are the characters that open and close string literals.
	Quotes string

	// RawQuote opens a raw string literal that may span lines and has
	// no escape processing. Zero disables raw strings.
	RawQuote byte

	// Escape is the escape character inside quoted strings.
	Escape byte
}

// Go returns the syntax description for Go source.
func Go() Language {
	return Language{
		Name:              "go",
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Quotes:            `"'`,
		RawQuote:          '`',
		Escape:            '\\',
	}
}

// Plain returns a language with no comments or strings; every position
// classifies as code.
func Plain() Language {
	return Language{Name: "plain"}
}
