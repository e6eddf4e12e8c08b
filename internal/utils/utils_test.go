package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		require.Len(t, id, 36)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestPlaceholderBannerURL(t *testing.T) {
	raw := PlaceholderBannerURL("abc", "AI & You")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderPath, u.Path)
	assert.Equal(t, "abc", u.Query().Get("seed"))
	assert.Equal(t, "AI & You", u.Query().Get("title"))
}

func TestRenderPlaceholderSVG(t *testing.T) {
	svg := RenderPlaceholderSVG("7", "<Hack> & Build")
	assert.Contains(t, svg, "&lt;Hack&gt; &amp; Build")
	assert.NotContains(t, svg, "<Hack>")

	svg = RenderPlaceholderSVG("", "")
	assert.Contains(t, svg, ">Hackathon 1<")
}
