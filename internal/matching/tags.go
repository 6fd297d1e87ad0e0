package matching

import "strings"

// ContainsEitherWay reports whether a and b are related under substring
// containment in either direction, ignoring case. An empty label is contained
// in every label, so a blank catalog sector or required skill relates to any
// profile tag. Profile tags never carry blanks, see profile.NewTags.
func ContainsEitherWay(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// AnyRelated reports whether some label of left relates to some label of right.
func AnyRelated(left, right []string) bool {
	for _, l := range left {
		for _, r := range right {
			if ContainsEitherWay(l, r) {
				return true
			}
		}
	}
	return false
}
