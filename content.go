package docquiz

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BlockType identifies the kind of a ContentBlock.
type BlockType string

// BlockType constants.
const (
	BlockText BlockType = "text"
	BlockCode BlockType = "code"
)

// ContentBlock is one classified unit of section content: either prose or a
// verbatim code snippet. Content is never empty.
type ContentBlock struct {
	Type    BlockType `json:"type"`
	Content string    `json:"content"`

	// Language is an optional hint for code blocks taken from
	// "language-*" or "lang-*" classes in the markup.
	Language string `json:"language,omitempty"`
}

// TextBlock returns a prose block.
func TextBlock(content string) ContentBlock {
	return ContentBlock{Type: BlockText, Content: content}
}

// CodeBlock returns a code block with an optional language hint.
func CodeBlock(content, language string) ContentBlock {
	return ContentBlock{Type: BlockCode, Content: content, Language: language}
}

// Section is a heading's cleaned text together with the content blocks found
// between it and the next h1-h3 heading, in document order.
type Section struct {
	Title  string         `json:"title"`
	Blocks []ContentBlock `json:"blocks"`
}

// Count returns the number of blocks of the given type.
func (s Section) Count(t BlockType) int {
	var n int
	for _, b := range s.Blocks {
		if b.Type == t {
			n++
		}
	}
	return n
}

// TitlePolicy decides what happens when two headings clean to the same title.
type TitlePolicy string

// TitlePolicy constants.
const (
	// TitleOverwrite keeps the first title's position and replaces its
	// blocks with the later heading's blocks.
	TitleOverwrite TitlePolicy = "overwrite"

	// TitleNumbered keeps every section and appends an ordinal to later
	// occurrences, e.g. "Setup (2)". Generated titles are not reserved: a
	// later heading literally named "Setup (2)" that arrives after one was
	// generated is itself numbered, becoming "Setup (2) (2)".
	TitleNumbered TitlePolicy = "numbered"
)

// ParseResult is an ordered mapping from section title to content blocks.
// Titles are unique and sections keep the document order of their headings.
// A ParseResult is not modified after it is returned by a Parser.
type ParseResult struct {
	Sections []Section
}

// Len returns the number of sections.
func (r *ParseResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Sections)
}

// Titles returns section titles in order.
func (r *ParseResult) Titles() []string {
	if r == nil {
		return nil
	}
	titles := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

// Section returns the section with the given title.
func (r *ParseResult) Section(title string) (Section, bool) {
	if i := r.index(title); i >= 0 {
		return r.Sections[i], true
	}
	return Section{}, false
}

// Set stores blocks under title. Empty block lists are ignored. An existing
// title keeps its position and gets the new blocks.
func (r *ParseResult) Set(title string, blocks []ContentBlock) {
	if len(blocks) == 0 {
		return
	}
	if i := r.index(title); i >= 0 {
		r.Sections[i].Blocks = blocks
		return
	}
	r.Sections = append(r.Sections, Section{Title: title, Blocks: blocks})
}

// Add stores blocks under title according to policy and returns the title the
// blocks were stored under. Empty block lists are ignored and return "".
func (r *ParseResult) Add(title string, blocks []ContentBlock, policy TitlePolicy) string {
	if len(blocks) == 0 {
		return ""
	}
	if policy == TitleNumbered && r.index(title) >= 0 {
		n := 2
		for r.index(numberedTitle(title, n)) >= 0 {
			n++
		}
		title = numberedTitle(title, n)
	}
	r.Set(title, blocks)
	return title
}

func numberedTitle(title string, n int) string {
	return fmt.Sprintf("%s (%d)", title, n)
}

func (r *ParseResult) index(title string) int {
	if r == nil {
		return -1
	}
	for i := range r.Sections {
		if r.Sections[i].Title == title {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the result as a JSON object keyed by section title,
// with keys in section order.
func (r ParseResult) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range r.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Title)
		if err != nil {
			return nil, err
		}
		blocks := s.Blocks
		if blocks == nil {
			blocks = []ContentBlock{}
		}
		value, err := json.Marshal(blocks)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the object produced by MarshalJSON, preserving key order.
func (r *ParseResult) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parse result: expected JSON object, got %v", tok)
	}

	result := ParseResult{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		title, ok := tok.(string)
		if !ok {
			return fmt.Errorf("parse result: expected section title, got %v", tok)
		}

		var blocks []ContentBlock
		if err := dec.Decode(&blocks); err != nil {
			return fmt.Errorf("parse result: section %q: %w", title, err)
		}
		result.Set(title, blocks)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = result
	return nil
}
