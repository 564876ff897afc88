package goquery

import "github.com/PuerkitoBio/goquery"

// headingSelector matches the headings that start a section.
const headingSelector = "h1, h2, h3"

// Segment is a heading together with the element siblings that follow it up
// to the next h1-h3 sibling.
type Segment struct {
	Heading string
	Nodes   []*goquery.Selection
}

// Segments returns one Segment per h1-h3 heading in document order, at any
// depth. Only siblings of the heading are collected; content in other
// subtrees belongs to whichever heading shares its parent.
func Segments(doc *goquery.Document) []Segment {
	var segments []Segment

	doc.Find(headingSelector).Each(func(_ int, heading *goquery.Selection) {
		seg := Segment{Heading: Normalize(heading.Text())}
		for cur := heading.Next(); cur.Length() > 0 && !cur.Is(headingSelector); cur = cur.Next() {
			seg.Nodes = append(seg.Nodes, cur)
		}
		segments = append(segments, seg)
	})

	return segments
}
