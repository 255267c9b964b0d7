package menu

import (
	"math"
	"sort"
	"strings"
)

// fuzzyAutoResolveRatio is the minimum lead of the best fuzzy score over
// the runner-up for a query to resolve without listing candidates.
const fuzzyAutoResolveRatio = 2.0

// maxAmbiguousCandidates bounds the candidate list in ambiguity errors.
const maxAmbiguousCandidates = 5

// Resolve turns a user-supplied query into exactly one node. A query
// containing the path separator is walked as an exact path. Otherwise an
// exact (case-insensitive) leaf title match wins when unique, and fuzzy
// matching over full paths is the fallback: the best hit is taken only
// when it clearly leads the runner-up, otherwise the top candidates come
// back in an AmbiguousError.
func Resolve(nodes []Node, query string) (*Node, error) {
	if strings.Contains(query, PathSep) {
		return resolveByExactPath(nodes, query)
	}

	if node, err := resolveByExactTitle(nodes, query); node != nil || err != nil {
		return node, err
	}

	return resolveFuzzy(nodes, query)
}

// ResolveExact resolves without the fuzzy fallback: a query containing
// the separator must match a full path, anything else must match exactly
// one leaf title.
func ResolveExact(nodes []Node, query string) (*Node, error) {
	if strings.Contains(query, PathSep) {
		return resolveByExactPath(nodes, query)
	}

	node, err := resolveByExactTitle(nodes, query)
	if node == nil && err == nil {
		return nil, &NotFoundError{Query: query}
	}
	return node, err
}

// resolveByExactPath walks the tree level by level, matching unescaped
// segments against titles case-insensitively.
func resolveByExactPath(nodes []Node, path string) (*Node, error) {
	current := nodes
	var found *Node
	for _, segment := range SplitPath(path) {
		want := strings.ToLower(UnescapeSegment(segment))
		var matched *Node
		for i := range current {
			if strings.ToLower(current[i].Title) == want {
				matched = &current[i]
				break
			}
		}
		if matched == nil {
			return nil, &NotFoundError{Query: path}
		}
		found = matched
		current = matched.Children
	}
	if found == nil {
		return nil, &NotFoundError{Query: path}
	}
	return found, nil
}

// resolveByExactTitle returns the unique leaf whose title equals the
// query case-insensitively. (nil, nil) means no leaf matched and the
// caller should try the next strategy.
func resolveByExactTitle(nodes []Node, query string) (*Node, error) {
	want := strings.ToLower(query)
	var matches []*Node
	collectLeaves(nodes, func(leaf *Node) {
		if strings.ToLower(leaf.Title) == want {
			matches = append(matches, leaf)
		}
	})

	switch len(matches) {
	case 0:
		return nil, nil
	case 1:
		return matches[0], nil
	}

	candidates := make([]string, len(matches))
	for i, node := range matches {
		candidates[i] = node.Path
	}
	return nil, &AmbiguousError{Query: query, Candidates: candidates}
}

func resolveFuzzy(nodes []Node, query string) (*Node, error) {
	var all []*Node
	collectAll(nodes, &all)

	type scoredNode struct {
		node  *Node
		score int
	}

	slab := newSlab()
	var matches []scoredNode
	for _, node := range all {
		if score := scoreFunc(slab, node.Path, query, false); score > 0 {
			matches = append(matches, scoredNode{node: node, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Query: query}
	case 1:
		return matches[0].node, nil
	}

	best, second := matches[0], matches[1]
	ratio := float64(best.score) / math.Max(float64(second.score), 1.0)
	if ratio >= fuzzyAutoResolveRatio {
		return best.node, nil
	}

	count := min(maxAmbiguousCandidates, len(matches))
	candidates := make([]string, count)
	for i := 0; i < count; i++ {
		candidates[i] = matches[i].node.Path
	}
	return nil, &AmbiguousError{Query: query, Candidates: candidates}
}

// collectLeaves visits every node without children, depth-first.
func collectLeaves(nodes []Node, visit func(*Node)) {
	for i := range nodes {
		if len(nodes[i].Children) == 0 {
			visit(&nodes[i])
			continue
		}
		collectLeaves(nodes[i].Children, visit)
	}
}

// collectAll gathers pointers to every node, parents before children.
func collectAll(nodes []Node, out *[]*Node) {
	for i := range nodes {
		*out = append(*out, &nodes[i])
		collectAll(nodes[i].Children, out)
	}
}
