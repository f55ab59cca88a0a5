package node

import (
	"golang.org/x/text/language"
)

// LocalizedText returns the best-matching text child for the requested
// language. EcoSpold 2 comment-family elements hold one or more text
// children, each tagged with xml:lang; matching follows BCP 47 semantics
// so "en" satisfies a request for "en-US". Children without a parseable
// tag are skipped. Returns "" when no text child qualifies.
func (n *Node) LocalizedText(lang string) string {
	if n == nil {
		return ""
	}
	want, err := language.Parse(lang)
	if err != nil {
		want = language.English
	}

	var tags []language.Tag
	var texts []string
	for _, el := range n.el.ChildElements() {
		if el.Tag != "text" {
			continue
		}
		t, err := language.Parse(el.SelectAttrValue("xml:lang", ""))
		if err != nil {
			continue
		}
		tags = append(tags, t)
		texts = append(texts, el.Text())
	}
	if len(tags) == 0 {
		return ""
	}

	m := language.NewMatcher(tags)
	_, i, _ := m.Match(want)
	return texts[i]
}
