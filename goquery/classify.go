package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docquiz"
	"golang.org/x/net/html"
)

// nonProseSelector matches elements whose text is never prose.
const nonProseSelector = "script, style, template"

// Classify returns the blocks for one section sibling: first a code block
// for every code fragment in its preformatted containers, then a single text
// block for all of its text. A sibling that wraps a pre therefore repeats
// that code inside its text block.
func Classify(node *goquery.Selection) []docquiz.ContentBlock {
	blocks := codeBlocks(node)

	if node.Is("pre") || node.ParentsFiltered("pre").Length() > 0 {
		return blocks
	}
	if text := proseText(node); text != "" {
		blocks = append(blocks, docquiz.TextBlock(text))
	}

	return blocks
}

// codeBlocks extracts code from every pre in node's subtree, node included.
// A pre that wraps code elements yields one block per code element.
func codeBlocks(node *goquery.Selection) []docquiz.ContentBlock {
	var blocks []docquiz.ContentBlock

	node.Filter("pre").AddSelection(node.Find("pre")).Each(func(_ int, pre *goquery.Selection) {
		codes := pre.Find("code")
		if codes.Length() == 0 {
			if text := strings.TrimSpace(pre.Text()); text != "" {
				blocks = append(blocks, docquiz.CodeBlock(text, codeLanguage(pre, pre.Parent())))
			}
			return
		}

		codes.Each(func(_ int, code *goquery.Selection) {
			if text := strings.TrimSpace(code.Text()); text != "" {
				blocks = append(blocks, docquiz.CodeBlock(text, codeLanguage(code, pre, pre.Parent())))
			}
		})
	})

	return blocks
}

// proseText returns the normalized text of node. Code elements are flattened
// into the surrounding text.
func proseText(node *goquery.Selection) string {
	if node.Is(nonProseSelector) {
		return ""
	}

	clone := node.Clone()
	clone.Find(nonProseSelector).Remove()
	clone.Find("code").Each(func(_ int, code *goquery.Selection) {
		code.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: code.Text()})
	})

	return Normalize(clone.Text())
}

var languagePrefixes = []string{"language-", "lang-"}

// codeLanguage returns the first language hint found on sels, checked in order.
func codeLanguage(sels ...*goquery.Selection) string {
	for _, s := range sels {
		if lang, ok := s.Attr("data-language"); ok && lang != "" {
			return strings.ToLower(lang)
		}
		class, _ := s.Attr("class")
		for _, c := range strings.Fields(class) {
			for _, prefix := range languagePrefixes {
				if strings.HasPrefix(c, prefix) && len(c) > len(prefix) {
					return strings.ToLower(strings.TrimPrefix(c, prefix))
				}
			}
		}
	}
	return ""
}
