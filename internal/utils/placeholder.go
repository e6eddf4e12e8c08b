package utils

import (
	"fmt"
	"html"
	"net/url"
	"strings"
)

// PlaceholderPath is the route serving generated banner images.
const PlaceholderPath = "/api/placeholder"

// PlaceholderBannerURL returns the URL of a generated banner for a hackathon
// created without an image.
func PlaceholderBannerURL(seed, title string) string {
	query := url.Values{}
	query.Set("seed", seed)
	query.Set("title", title)
	return PlaceholderPath + "?" + query.Encode()
}

// RenderPlaceholderSVG draws the title in white on a black 800x400 banner.
// An empty title falls back to "Hackathon <seed>".
func RenderPlaceholderSVG(seed, title string) string {
	if strings.TrimSpace(seed) == "" {
		seed = "1"
	}
	if strings.TrimSpace(title) == "" {
		title = "Hackathon " + seed
	}
	return fmt.Sprintf(`<svg width="800" height="400" xmlns="http://www.w3.org/2000/svg">
  <rect width="800" height="400" fill="black" />
  <text x="400" y="200" font-family="Arial" font-size="36" font-weight="bold" fill="white" text-anchor="middle" dominant-baseline="middle">%s</text>
</svg>
`, html.EscapeString(title))
}
