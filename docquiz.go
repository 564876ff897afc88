// Package docquiz turns developer documentation pages into quiz-ready
// content. It fetches a page, splits it into heading-delimited sections,
// and separates each section's prose from its code examples so a quiz
// prompt can be built from content that actually exists on the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package docquiz
