package nullv

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// regexSpecials lists regex metacharacters that must be escaped before the
// SQL wildcards are translated. Backslash must be escaped first.
const regexSpecials = `\.^$*+?{}[]()<>|`

type likeKey struct {
	pattern string
	escape  string
}

const maxLikeCache = 50

var likeCache = mustLRU()

func mustLRU() *lru.Cache[likeKey, *regexp.Regexp] {
	c, err := lru.New[likeKey, *regexp.Regexp](maxLikeCache)
	if err != nil {
		panic(err)
	}
	return c
}

// likeCacheLen reports the current number of compiled patterns held in the
// cache. Exposed for tests verifying the bounded-capacity property.
func likeCacheLen() int {
	return likeCache.Len()
}

// ResetLikeCacheForTest clears the pattern cache. Exposed for test isolation.
func ResetLikeCacheForTest() {
	likeCache.Purge()
}

// likeRegexPattern translates an SQL LIKE pattern into a regexp pattern,
// honoring an optional escape character that neutralizes the following `%`
// or `_` so it matches literally instead of as a wildcard.
func likeRegexPattern(pattern, escape string) string {
	if escape != "" {
		pattern = strings.ReplaceAll(pattern, escape+"%", "\x00PCT\x00")
		pattern = strings.ReplaceAll(pattern, escape+"_", "\x00USC\x00")
	}
	for _, c := range regexSpecials {
		pattern = strings.ReplaceAll(pattern, string(c), "\\"+string(c))
	}
	pattern = strings.ReplaceAll(pattern, "%", ".*")
	pattern = strings.ReplaceAll(pattern, "_", ".")
	if escape != "" {
		pattern = strings.ReplaceAll(pattern, "\x00PCT\x00", "%")
		pattern = strings.ReplaceAll(pattern, "\x00USC\x00", "_")
	}
	return pattern
}

// Like returns whether s matches pattern (with optional escape char),
// null-aware. Compiled patterns are cached, bounded, keyed by
// (pattern, escape).
func Like(s, pattern, escape any) any {
	if IsNull(s) || IsNull(pattern) {
		return nil
	}
	escStr := ""
	if NotNull(escape) {
		escStr = escape.(string)
	}
	key := likeKey{pattern: pattern.(string), escape: escStr}
	re, ok := likeCache.Get(key)
	if !ok {
		re = regexp.MustCompile("^(?:" + likeRegexPattern(key.pattern, key.escape) + ")$")
		likeCache.Add(key, re)
	}
	return re.MatchString(s.(string))
}
