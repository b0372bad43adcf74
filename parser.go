package main

import (
	"net/url"
	"regexp"
)

// changeURLRegex matches the path (or fragment, for old "/#/c/..." links) of
// a Gerrit change URL: "/c/123", "/c/project/+/123/4" or "/123".
var changeURLRegex = regexp.MustCompile(`^(?:.*?/c/(?:.+/\+/)?|/)(\d+)(?:/\d+)?/?$`)

// ParseChangeID reduces a Gerrit change URL to its change number. Anything
// else, such as a number or an I-prefixed Change-Id, is returned unchanged.
func ParseChangeID(arg string) string {
	parsedURL, err := url.Parse(arg)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return arg
	}

	path := parsedURL.Path
	if parsedURL.Fragment != "" {
		path = parsedURL.Fragment
	}

	matches := changeURLRegex.FindStringSubmatch(path)
	if len(matches) != 2 {
		return arg
	}
	return matches[1]
}
