package menu

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes fzf uses for its own matcher allocations.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

func init() {
	// The default scheme treats ':' as a delimiter, so query characters
	// landing right after a "::" separator earn the boundary bonus.
	algo.Init("default")
}

func newSlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// scoreFunc is swapped out by tests that need deterministic scores.
var scoreFunc = fuzzyScore

// fuzzyScore rates how well query matches text; higher is better and
// zero means no match. The slab is scratch space reused across calls on
// one goroutine.
func fuzzyScore(slab *util.Slab, text, query string, caseSensitive bool) int {
	if !caseSensitive {
		query = strings.ToLower(query)
	}
	chars := util.ToChars([]byte(text))
	result, _ := algo.FuzzyMatchV2(caseSensitive, true, true, &chars, []rune(query), false, slab)
	if result.Score <= 0 {
		return 0
	}
	return result.Score
}
