package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/mroute/core/rtr"
)

func TestSplitPath(t *testing.T) {
	tokens := rtr.SplitPath("/users/42/posts")
	assert.Equal(t, len(tokens), 3)
	assert.Equal(t, tokens[0], "users")
	assert.Equal(t, tokens[1], "42")
	assert.Equal(t, tokens[2], "posts")

	// query strings never participate in matching
	tokens = rtr.SplitPath("/a?x=1&y=2")
	assert.Equal(t, len(tokens), 1)
	assert.Equal(t, tokens[0], "a")

	// empty and all-slash paths normalize to zero tokens
	assert.Equal(t, len(rtr.SplitPath("")), 0)
	assert.Equal(t, len(rtr.SplitPath("/")), 0)
	assert.Equal(t, len(rtr.SplitPath("///")), 0)
	assert.Equal(t, len(rtr.SplitPath("?x=1")), 0)
	assert.Equal(t, len(rtr.SplitPath("/?x=1")), 0)
}

// Normalization treats P, /P, P/ and P?anything identically.
func TestSplitPathIdempotentNormalization(t *testing.T) {
	paths := []string{"a", "a/b", "users/42/posts", "health"}

	for _, p := range paths {
		base := rtr.SplitPath(p)

		for _, variant := range []string{"/" + p, p + "/", "/" + p + "/", p + "?anything", "//" + p + "//"} {
			tokens := rtr.SplitPath(variant)
			assert.Equal(t, len(tokens), len(base))

			for i := range tokens {
				assert.Equal(t, tokens[i], base[i])
			}
		}
	}
}

func TestParsePatternStatic(t *testing.T) {
	segs := rtr.ParsePattern("/health")
	assert.Equal(t, len(segs), 1)
	assert.Equal(t, segs[0].Kind, rtr.KindStatic)
	assert.Equal(t, segs[0].Text, "health")

	segs = rtr.ParsePattern("/api/v1/status")
	assert.Equal(t, len(segs), 3)
	for _, seg := range segs {
		assert.Equal(t, seg.Kind, rtr.KindStatic)
	}
}

func TestParsePatternColonParam(t *testing.T) {
	segs := rtr.ParsePattern("/users/:id")
	assert.Equal(t, len(segs), 2)
	assert.Equal(t, segs[0].Kind, rtr.KindStatic)
	assert.Equal(t, segs[0].Text, "users")
	assert.Equal(t, segs[1].Kind, rtr.KindParam)
	assert.Equal(t, segs[1].Text, "id")
}

func TestParsePatternBraceParam(t *testing.T) {
	segs := rtr.ParsePattern("/posts/{postId}/comments/{id}")
	assert.Equal(t, len(segs), 4)
	assert.Equal(t, segs[1].Kind, rtr.KindParam)
	assert.Equal(t, segs[1].Text, "postId")
	assert.Equal(t, segs[3].Kind, rtr.KindParam)
	assert.Equal(t, segs[3].Text, "id")
}

// Degenerate parameter tokens fall back to static literals.
func TestParsePatternDegenerateTokens(t *testing.T) {
	segs := rtr.ParsePattern("/a/{}/b")
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[1].Kind, rtr.KindStatic)
	assert.Equal(t, segs[1].Text, "{}")

	segs = rtr.ParsePattern("/:")
	assert.Equal(t, len(segs), 1)
	assert.Equal(t, segs[0].Kind, rtr.KindStatic)
	assert.Equal(t, segs[0].Text, ":")

	// stray braces are literals too
	segs = rtr.ParsePattern("/{open/close}")
	assert.Equal(t, len(segs), 2)
	assert.Equal(t, segs[0].Kind, rtr.KindStatic)
	assert.Equal(t, segs[0].Text, "{open")
	assert.Equal(t, segs[1].Kind, rtr.KindStatic)
	assert.Equal(t, segs[1].Text, "close}")
}

// Parameter names are accepted verbatim, special characters included.
func TestParsePatternNoNameValidation(t *testing.T) {
	segs := rtr.ParsePattern("/x/:user-id!/{weird name}")
	assert.Equal(t, len(segs), 3)
	assert.Equal(t, segs[1].Kind, rtr.KindParam)
	assert.Equal(t, segs[1].Text, "user-id!")
	assert.Equal(t, segs[2].Kind, rtr.KindParam)
	assert.Equal(t, segs[2].Text, "weird name")
}

func TestParsePatternEmpty(t *testing.T) {
	assert.Equal(t, len(rtr.ParsePattern("")), 0)
	assert.Equal(t, len(rtr.ParsePattern("/")), 0)
	assert.Equal(t, len(rtr.ParsePattern("?x=1")), 0)
}

// The compiled segment count always equals the normalized token count
// of the pattern itself.
func TestParsePatternSegmentCount(t *testing.T) {
	patterns := []string{"/a", "/a/b/c", "/users/:id", "/posts/{p}/comments/{c}", "/a//b"}

	for _, pattern := range patterns {
		assert.Equal(t, len(rtr.ParsePattern(pattern)), len(rtr.SplitPath(pattern)))
	}
}
