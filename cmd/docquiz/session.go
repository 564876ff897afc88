package main

import (
	"strconv"
	"strings"

	"github.com/fwojciec/docquiz"
)

// findSession resolves ref as a session ID, then as a unique ID prefix.
func findSession(deps *Dependencies, ref string) (*docquiz.Session, error) {
	session, err := deps.Sessions.FindSessionByID(deps.Ctx, ref)
	if err == nil {
		return session, nil
	}
	if docquiz.ErrorCode(err) != docquiz.ENOTFOUND || ref == "" {
		return nil, err
	}

	sessions, err := deps.Sessions.FindSessions(deps.Ctx, docquiz.SessionFilter{})
	if err != nil {
		return nil, err
	}

	var matches []*docquiz.Session
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, ref) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, docquiz.Errorf(docquiz.ENOTFOUND, "session %q not found. Use 'docquiz sessions' to see stored sessions.", ref)
	case 1:
		return matches[0], nil
	default:
		return nil, docquiz.Errorf(docquiz.EINVALID, "session prefix %q matches %d sessions", ref, len(matches))
	}
}

// findSection resolves ref as a section title, then as a 1-based number.
func findSection(result *docquiz.ParseResult, ref string) (docquiz.Section, error) {
	if section, ok := result.Section(ref); ok {
		return section, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= result.Len() {
		return result.Sections[n-1], nil
	}
	return docquiz.Section{}, docquiz.Errorf(docquiz.ENOTFOUND, "section %q not found", ref)
}
