package bbcode

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// space matches what \s matches in JavaScript, which includes Unicode spaces.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	// bulletLine starts a new item: optional indent, optional '[', '*', optional ']'.
	bulletLine = regexp.MustCompile(`^` + space + `*\[?\*\]?(.*)`)
	// liLine starts a new item from a trailing [li]...[/li] wrapper.
	liLine = regexp.MustCompile(space + `*\[li\](.*)\[/li\]` + space + `*$`)
)

// ParseListItems splits the raw body of a list tag into item texts.
//
// Lines starting with a [*] style marker or ending in [li]...[/li] open a new
// item. Any other line continues the current item. Items are indexed from 1;
// text seen before the first marker lands in item 0. Indices never assigned are
// skipped, but an item set to the empty string is kept.
//
// Nested lists inside items are not recognized.
func ParseListItems(content string) []string {
	items := make(map[int]string)
	index := 0

	for _, line := range strings.Split(content, "\n") {
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			index++
			items[index] = m[1]
			continue
		}

		if m := liLine.FindStringSubmatch(line); m != nil {
			index++
			items[index] = m[1]
			continue
		}

		if items[index] != "" {
			items[index] += "\n" + line
		} else {
			items[index] = line
		}
	}

	out := make([]string, 0, len(items))
	for _, i := range slices.Sorted(maps.Keys(items)) {
		out = append(out, items[i])
	}
	return out
}

// listRule returns the replace function shared by list, ul and ol.
func listRule(tag string) func(*State, TagInfo, string) bool {
	return func(st *State, info TagInfo, content string) bool {
		ordered := tag == "ol" || (tag == "list" && info.HasDefault)

		element := "ul"
		if ordered {
			element = "ol"
		}

		open := st.Push(TokenOpen, element)
		open.Map = info.lines()
		if ordered && info.Default != "" {
			open.SetAttr("type", info.Default)
		}

		for _, item := range ParseListItems(content) {
			st.Push(TokenOpen, "li")
			inline := st.Push(TokenInline, "")
			inline.Content = item
			st.Push(TokenClose, "li")
		}

		st.Push(TokenClose, element)
		return true
	}
}
