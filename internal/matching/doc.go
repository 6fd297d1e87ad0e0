// Package matching selects catalog opportunities relevant to a candidate profile.
//
// An opportunity is kept when it passes the location rule and at least one of
// the relevance rules: the skill rule or the interest rule. Both relevance
// rules use loose tag matching: two labels are related when either one is a
// case-insensitive substring of the other, so "Design" relates to
// "Graphic Design" and a short label such as "IT" relates to almost anything
// containing those letters. The looseness is deliberate and covered by tests.
//
// The interest rule carries one special case, GovernmentMinistryRule: an
// interest in "government" also matches any organization whose name contains
// "Ministry", regardless of the opportunity's sector.
//
// Survivors are ordered by stipend, highest first, and capped at DefaultLimit.
package matching
