/*
 * PSX - Configuration file parser.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package configparser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"
)

/* Configuration file format:
 *
 * '#' starts a comment, rest of line is ignored.
 * <line>     ::= <keyword> <whitespace> <value> *(<whitespace> <option>)
 * <keyword>  ::= <string>
 * <value>    ::= <string> | '"' *(<letter> | <whitespace>) '"'
 * <option>   ::= <string> [ '=' <value> ]
 * <string>   ::= *(<letter> | <number>)
 *
 * Keywords are case insensitive. Each registered keyword receives the
 * first value plus any trailing options.
 */

// Option after the keyword value, optionally with an =value part.
type Option struct {
	Name     string // Name of option.
	EqualOpt string // Value of string after =.
}

const (
	// Types of registration.
	typeOption = 1 + iota // Keyword takes a value and options.
	typeSwitch            // Keyword stands alone.
	typeFile              // Keyword takes a file name.
)

type keywordDef struct {
	create func(string, []Option) error
	ty     int
}

var keywords = map[string]keywordDef{}

var lineNumber int

// RegisterOption installs a handler for a keyword taking a value and
// possibly trailing options. Should be called from init functions.
func RegisterOption(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: typeOption}
}

// RegisterSwitch installs a handler for a keyword with no value.
func RegisterSwitch(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: typeSwitch}
}

// RegisterFile installs a handler for a keyword naming a file.
func RegisterFile(name string, fn func(string, []Option) error) {
	keywords[strings.ToUpper(name)] = keywordDef{create: fn, ty: typeFile}
}

// Current option line being parsed.
type optionLine struct {
	line string // Current option line.
	pos  int    // Current position in line.
}

func (l *optionLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *optionLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// Get the next blank or equals delimited word, honoring quotes.
func (l *optionLine) getWord() (string, error) {
	l.skipSpace()
	if l.isEOL() {
		return "", nil
	}
	if l.line[l.pos] == '"' {
		l.pos++
		start := l.pos
		for !l.isEOL() && l.line[l.pos] != '"' {
			l.pos++
		}
		if l.isEOL() {
			return "", fmt.Errorf("line %d: unterminated quote", lineNumber)
		}
		word := l.line[start:l.pos]
		l.pos++
		return word, nil
	}
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) && l.line[l.pos] != '=' {
		l.pos++
	}
	return l.line[start:l.pos], nil
}

// Collect trailing NAME or NAME=VALUE options.
func (l *optionLine) getOptions() ([]Option, error) {
	options := []Option{}
	for {
		name, err := l.getWord()
		if err != nil {
			return nil, err
		}
		if name == "" {
			return options, nil
		}
		opt := Option{Name: strings.ToUpper(name)}
		if !l.isEOL() && l.line[l.pos] == '=' {
			l.pos++
			opt.EqualOpt, err = l.getWord()
			if err != nil {
				return nil, err
			}
		}
		options = append(options, opt)
	}
}

// LoadConfigFile reads a configuration file and dispatches each line
// to its registered keyword handler.
func LoadConfigFile(fileName string) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		line := optionLine{line: text}
		keyword, err := line.getWord()
		if err != nil {
			return err
		}
		if keyword == "" {
			continue
		}

		def, ok := keywords[strings.ToUpper(keyword)]
		if !ok {
			return fmt.Errorf("line %d: unknown option %s", lineNumber, keyword)
		}

		var value string
		if def.ty != typeSwitch {
			value, err = line.getWord()
			if err != nil {
				return err
			}
			if value == "" {
				return fmt.Errorf("line %d: option %s requires a value", lineNumber, keyword)
			}
		}
		options, err := line.getOptions()
		if err != nil {
			return err
		}
		if err := def.create(value, options); err != nil {
			return fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	return scanner.Err()
}
