package fourth

import (
	"fmt"
	"testing"
)

func TestPatternCacheBounded(t *testing.T) {
	for i := 0; i < 3*maxCachedPatterns; i++ {
		if _, err := compileFormat(fmt.Sprintf("%%Y-%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	patternMu.Lock()
	n := len(patternCache)
	patternMu.Unlock()
	if n > maxCachedPatterns {
		t.Errorf("%d cached patterns, want at most %d", n, maxCachedPatterns)
	}

	re, err := compileFormat("%Y年")
	if err != nil {
		t.Fatal(err)
	}
	if !re.MatchString("2020年") {
		t.Errorf("%s does not match 2020年", re)
	}
}
