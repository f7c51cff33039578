package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]*>`)
)

// plain HTML output, no smart quotes, so apostrophes reach the lexicon as typed
var plainRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
	Flags: blackfriday.UseXHTML,
})

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	input = urlPattern.ReplaceAllString(input, "")

	return strings.Join(strings.Fields(input), " ")
}

// CleanText turns a post into plain prose for scoring: markdown is rendered
// and stripped of markup, links keep only their text, bare URLs are dropped.
func CleanText(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(plainRenderer))
	plainText := htmlTagPattern.ReplaceAllString(string(output), " ")

	return RemoveLinks(html.UnescapeString(plainText))
}
