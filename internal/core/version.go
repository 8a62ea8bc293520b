package core

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
)

var creMajor = regexp.MustCompile(`^(\d+)`)

// MajorVersion extracts the leading numeric component of a version
// string. The major version is the compatibility granularity for
// profiles: cross-major launches are rejected.
func MajorVersion(version string) (int, error) {
	match := creMajor.FindString(version)
	if match == "" {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("version has no leading numeric component: " + version)
	}
	major, err := strconv.Atoi(match)
	if err != nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid major version component: " + version).
			WithCause(err)
	}
	return major, nil
}

// SameMajor reports whether two version strings share a major version.
func SameMajor(a string, b string) (bool, error) {
	majorA, err := MajorVersion(a)
	if err != nil {
		return false, err
	}
	majorB, err := MajorVersion(b)
	if err != nil {
		return false, err
	}
	return majorA == majorB, nil
}

// versionCache memoizes parsed version objects to avoid repeated
// parsing during comparison and sorting.
type versionCache struct {
	parsed map[string]pep440.Version
}

func newVersionCache() *versionCache {
	return &versionCache{parsed: map[string]pep440.Version{}}
}

func (c *versionCache) version(value string) (pep440.Version, error) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.parsed[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings. Returns 0
// on parse errors so unparseable versions keep their input order.
func (c *versionCache) compare(a string, b string) int {
	v1, err := c.version(a)
	if err != nil {
		return 0
	}
	v2, err := c.version(b)
	if err != nil {
		return 0
	}
	return v1.Compare(v2)
}

// CompareVersions returns -1, 0, or 1 ordering two version strings, 0
// when either fails to parse.
func CompareVersions(a string, b string) int {
	return newVersionCache().compare(a, b)
}

// SortVersions returns the versions sorted ascending. Sorting is
// stable, so versions that fail to parse keep their relative order.
func SortVersions(versions []string) []string {
	out := make([]string, len(versions))
	copy(out, versions)
	cache := newVersionCache()
	sort.SliceStable(out, func(i, j int) bool {
		return cache.compare(out[i], out[j]) < 0
	})
	return out
}
