package match

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

// VersionScheme maps versioned namespaces to their version-independent form.
type VersionScheme interface {
	BaseNamespace(namespace string) string
}

// NamespaceVersionScheme recognizes a trailing version segment such as
// "/v2", "/v01_02" or "/v1.2.3" in a namespace URI.
type NamespaceVersionScheme struct{}

var versionSegment = regexp.MustCompile(`/v(\d+(?:[._]\d+)*)/?$`)

// DefaultVersionScheme returns the scheme used when none is injected.
func DefaultVersionScheme() VersionScheme {
	return NamespaceVersionScheme{}
}

// BaseNamespace strips the trailing version segment, if any.
func (NamespaceVersionScheme) BaseNamespace(namespace string) string {
	loc := versionSegment.FindStringIndex(namespace)
	if loc == nil {
		return namespace
	}

	return namespace[:loc[0]]
}

// Version parses the namespace's version segment.
func (NamespaceVersionScheme) Version(namespace string) (*version.Version, error) {
	m := versionSegment.FindStringSubmatch(namespace)
	if m == nil {
		return nil, fmt.Errorf("namespace %q has no version segment", namespace)
	}

	v, err := version.NewVersion(strings.ReplaceAll(m[1], "_", "."))
	if err != nil {
		return nil, fmt.Errorf("invalid version in namespace %q: %w", namespace, err)
	}

	return v, nil
}

// CompareVersions reports how the legacy namespace version relates to the
// model namespace version: negative when the legacy document is older.
// ok is false when either namespace is unversioned.
func (s NamespaceVersionScheme) CompareVersions(legacy, current string) (cmp int, ok bool) {
	lv, err := s.Version(legacy)
	if err != nil {
		return 0, false
	}

	cv, err := s.Version(current)
	if err != nil {
		return 0, false
	}

	return lv.Compare(cv), true
}
