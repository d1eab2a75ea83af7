package router

import (
	"hash/fnv"
	"strings"
)

const regionMarker = `data-region="`

// extractRegions returns the inner HTML of every element carrying a
// data-region attribute, keyed by region name. Regions must not nest.
func extractRegions(html string) map[string]string {
	regions := make(map[string]string)
	n := len(html)
	pos := 0

	for pos < n {
		idx := strings.Index(html[pos:], regionMarker)
		if idx == -1 {
			break
		}
		nameStart := pos + idx + len(regionMarker)
		nameLen := strings.IndexByte(html[nameStart:], '"')
		if nameLen == -1 {
			break
		}
		name := html[nameStart : nameStart+nameLen]

		tagStart := pos + idx
		for tagStart > 0 && html[tagStart] != '<' {
			tagStart--
		}
		tagEnd := tagStart + 1
		for tagEnd < n && !isTagNameEnd(html[tagEnd]) {
			tagEnd++
		}
		tag := html[tagStart+1 : tagEnd]

		gt := strings.IndexByte(html[nameStart+nameLen:], '>')
		if gt == -1 {
			break
		}
		contentStart := nameStart + nameLen + gt + 1

		contentEnd, next := matchClose(html, tag, contentStart)
		if contentEnd == -1 {
			pos = contentStart
			continue
		}
		regions[name] = strings.TrimSpace(html[contentStart:contentEnd])
		pos = next
	}
	return regions
}

func isTagNameEnd(c byte) bool {
	return c == ' ' || c == '>' || c == '/' || c == '\t' || c == '\n'
}

// matchClose finds the close tag balancing an element whose content starts
// at from. It returns the index of the close tag and the position after it.
func matchClose(html, tag string, from int) (int, int) {
	open, closing := "<"+tag, "</"+tag
	n := len(html)
	depth := 1
	pos := from

	for pos < n {
		nextClose := strings.Index(html[pos:], closing)
		if nextClose == -1 {
			return -1, n
		}
		nextClose += pos

		nextOpen := strings.Index(html[pos:], open)
		if nextOpen != -1 && pos+nextOpen < nextClose {
			nextOpen += pos
			after := nextOpen + len(open)
			if after < n && isTagNameEnd(html[after]) {
				depth++
			}
			pos = after
			continue
		}

		depth--
		if depth == 0 {
			return nextClose, nextClose + len(closing)
		}
		pos = nextClose + len(closing)
	}
	return -1, n
}

func hashRegion(content string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(content))
	return h.Sum64()
}

// changedRegions returns the regions whose hash differs from prev, and the
// new hash set.
func changedRegions(prev map[string]uint64, regions map[string]string) (map[string]string, map[string]uint64) {
	changed := make(map[string]string)
	hashes := make(map[string]uint64, len(regions))
	for name, content := range regions {
		h := hashRegion(content)
		hashes[name] = h
		if old, ok := prev[name]; !ok || old != h {
			changed[name] = content
		}
	}
	return changed, hashes
}
