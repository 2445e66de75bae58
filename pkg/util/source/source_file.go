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
package source

import (
	"fmt"
	"os"
	"sort"
)

// ReadFiles reads a given set of source files, or produces an error.
func ReadFiles(filenames ...string) ([]File, error) {
	files := make([]File, len(filenames))
	//
	for i, n := range filenames {
		bytes, err := os.ReadFile(n)
		if err != nil {
			return nil, err
		}
		//
		files[i] = *NewSourceFile(n, bytes)
	}
	//
	return files, nil
}

// Line is a physical line of a source file, excluding its terminating
// newline.
type Line struct {
	text []rune
	span Span
	// Line number (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line has number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the position of this line's first character.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// File is a source file, either read from disk or typed in at a prompt.
// Contents are held as runes, so spans and positions count characters rather
// than bytes.
type File struct {
	filename string
	contents []rune
	// Start position of each line, computed on demand.
	lines []int
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	return &File{filename, []rune(string(bytes)), nil}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.  Any part of the
// span beyond the end of the file is ignored.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	start := min(span.start, end)
	//
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the line containing the start of a span.
// A span starting beyond the end of the file is placed on the last line.
func (s *File) FindFirstEnclosingLine(span Span) Line {
	if s.lines == nil {
		s.lines = lineStarts(s.contents)
	}
	// Index of the last line starting at or before the span.
	n := sort.SearchInts(s.lines, span.start+1) - 1
	n = max(0, n)
	//
	start := s.lines[n]
	end := len(s.contents)
	//
	if n+1 < len(s.lines) {
		// Exclude the newline
		end = s.lines[n+1] - 1
	}
	//
	return Line{s.contents, Span{start, end}, n + 1}
}

func lineStarts(text []rune) []int {
	starts := []int{0}
	//
	for i, c := range text {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	//
	return starts
}

// SyntaxError is an error arising at a given span of a source file.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, reporting the file and line on which
// the error arose.
func (p *SyntaxError) Error() string {
	line := p.FirstEnclosingLine()
	//
	return fmt.Sprintf("%s:%d: %s", p.srcfile.Filename(), line.Number(), p.msg)
}

// FirstEnclosingLine determines the line on which this error starts.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.srcfile.FindFirstEnclosingLine(p.span)
}
