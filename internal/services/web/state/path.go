package state

import "net/url"

// FromPathOrURL parses a path or absolute URL into a navigation state.
func FromPathOrURL(raw string) (Navigation, bool) {
	if raw == "" {
		return Navigation{}, false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Navigation{}, false
	}
	return FromPath(u.Path)
}

func pathEscapeName(name string) string {
	return url.PathEscape(name)
}

func unescapeName(segment string) string {
	name, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return name
}
