package tnfile

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var netLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "whitespace", Pattern: `[ \t]+`},
})

// netFile is the raw line structure; blank lines are dropped.
type netFile struct {
	Lines []*netLine `parser:"( @@ | EOL )*"`
}

type netLine struct {
	Pos    lexer.Position
	Fields []int64 `parser:"@Int+"`
}

var netParser = participle.MustBuild[netFile](
	participle.Lexer(netLexer),
)
