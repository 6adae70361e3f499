package signature

import "strings"

// ParamNames derives parameter names from a raw comma-joined parameter list.
// Each comma-separated fragment is trimmed and its name taken as the substring
// after the last space, which assumes "type name" ordering; a fragment with no
// space is used whole. Fragments are not validated, so a malformed fragment
// still yields a best-effort name. An empty list yields nil.
func ParamNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	fragments := strings.Split(raw, ",")
	names := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if i := strings.LastIndex(fragment, " "); i >= 0 {
			fragment = fragment[i+1:]
		}
		names = append(names, fragment)
	}
	return names
}
