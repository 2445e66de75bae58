// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package token

import (
	"strings"

	"github.com/consensys/go-termreader/pkg/term"
	"github.com/consensys/go-termreader/pkg/util/source"
	"github.com/consensys/go-termreader/pkg/util/source/lex"
	"github.com/consensys/go-termreader/pkg/vars"
)

// Tokenizer splits a source file into clauses, each of which is a sequence of
// tokens terminated by an END token (or, for a final unterminated clause, by
// an EOF token).  Characters are split into raw tokens up front, but these are
// only classified when their clause is requested, since variables must be
// interned in the variable table of the read which consumes them.
type Tokenizer struct {
	file *source.File
	raw  []lex.Token
	// Index of next raw token
	index int
	// Line number at the start of the next raw token
	line uint
	// Whether layout was skipped before the next raw token
	layout bool
}

// NewTokenizer constructs a tokenizer for a given source file.
func NewTokenizer(file *source.File) *Tokenizer {
	lexer := lex.NewLexer(file.Contents(), rules...)
	//
	return &Tokenizer{file, lexer.Collect(), 0, 1, false}
}

// Tokenize returns the tokens of the first clause of a given source file,
// interning its variables in the given table.
func Tokenize(file *source.File, table *vars.Table) []Token {
	return NewTokenizer(file).Next(table)
}

// File returns the source file being tokenized.
func (p *Tokenizer) File() *source.File {
	return p.file
}

// HasNext determines whether any clause remains, i.e. whether anything other
// than layout remains before the end of the file.
func (p *Tokenizer) HasNext() bool {
	p.skipLayout()
	//
	return p.index < len(p.raw) && p.raw[p.index].Kind != rawEOF
}

// Next returns the tokens of the next clause, interning variables into a given
// table.  The final token is always either END or EOF.
func (p *Tokenizer) Next(table *vars.Table) []Token {
	var tokens []Token
	//
	for {
		p.skipLayout()
		//
		raw := p.raw[p.index]
		tok := p.classify(raw, table)
		// Remember juxtaposition of a name and an opening bracket.
		if n := len(tokens); n > 0 && !tok.Layout && tok.IsPunct("(") && tokens[n-1].Kind == NAME {
			tokens[n-1].Functional = true
		}
		//
		tokens = append(tokens, tok)
		// Leave EOF in place so it is seen by every subsequent call.
		if raw.Kind != rawEOF {
			p.consume()
		}
		//
		if tok.Kind == END || tok.Kind == EOF {
			return tokens
		}
	}
}

func (p *Tokenizer) skipLayout() {
	for p.index < len(p.raw) {
		switch p.raw[p.index].Kind {
		case rawLayout, rawComment:
			p.layout = true
			p.consume()
		default:
			return
		}
	}
}

func (p *Tokenizer) consume() {
	span := p.raw[p.index].Span
	p.line += uint(strings.Count(p.file.Text(span), "\n"))
	p.index++
}

// Convert a raw token into a token, decoding its value.
func (p *Tokenizer) classify(raw lex.Token, table *vars.Table) Token {
	var (
		text = p.file.Text(raw.Span)
		tok  = Token{Span: raw.Span, Line: p.line, Layout: p.layout, Text: text}
	)
	//
	p.layout = false
	//
	switch raw.Kind {
	case rawEOF:
		tok.Kind = EOF
	case rawEnd:
		tok.Kind = END
	case rawNumber:
		value, err := decodeNumber(text)
		if err != nil {
			return errorToken(tok, "ill-formed number")
		}
		//
		tok.Kind, tok.Value = NUMBER, value
	case rawName, rawSymbol, rawSolo:
		tok.Kind, tok.Value = NAME, term.Atom(text)
	case rawQuoted:
		name, err := unquote([]rune(text))
		if err != nil {
			return errorToken(tok, err.Error())
		}
		//
		tok.Kind, tok.Value = NAME, term.Atom(name)
	case rawString:
		str, err := unquote([]rune(text))
		if err != nil {
			return errorToken(tok, err.Error())
		}
		//
		tok.Kind, tok.Value = STRING, term.String(str)
	case rawVar:
		tok.Kind, tok.Var = VAR, table.Lookup(text)
	case rawQQ:
		tok.Kind = QQ
	case rawPunct:
		tok.Kind, tok.Value = PUNCT, term.Atom(text)
	case rawUnterminated:
		switch text[0] {
		case '\'':
			return errorToken(tok, "unterminated quoted atom")
		case '"':
			return errorToken(tok, "unterminated string")
		default:
			return errorToken(tok, "unterminated block comment")
		}
	default:
		return errorToken(tok, "illegal character")
	}
	//
	return tok
}

func errorToken(tok Token, msg string) Token {
	tok.Kind = ERROR
	tok.Msg = msg
	//
	return tok
}
