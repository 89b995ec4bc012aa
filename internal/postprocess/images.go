package postprocess

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hermetic-io/articlext/internal/domx"
)

// ImageRef is one <img> collected from the kept content subtree.
type ImageRef struct {
	Src      string
	Filename string
	Alt      string
	Caption  string
	IsHero   bool

	width  int
	height int
}

// Collect walks root and builds one ImageRef per <img>, resolving src
// against baseURL. ogImage, if non-empty and matched among the
// collected images, is marked as the hero image; otherwise the hero is
// the largest image by declared width, then by declared area, then by
// document order.
func Collect(root *html.Node, baseURL, ogImage string, maxDepth int) []ImageRef {
	var base *url.URL
	if baseURL != "" {
		base, _ = url.Parse(baseURL)
	}

	var imgs []ImageRef
	domx.WalkBounded(root, maxDepth, func(n *html.Node, _ int) {
		if n.Type != html.ElementNode || n.Data != "img" {
			return
		}
		src, _ := domx.Attr(n, "src")
		if src == "" {
			return
		}
		resolved := resolveURL(base, src)
		alt, _ := domx.Attr(n, "alt")
		width := 0
		if w, ok := domx.Attr(n, "width"); ok {
			width, _ = strconv.Atoi(strings.TrimSpace(w))
		}
		height := 0
		if h, ok := domx.Attr(n, "height"); ok {
			height, _ = strconv.Atoi(strings.TrimSpace(h))
		}
		imgs = append(imgs, ImageRef{
			Src:      resolved,
			Filename: filenameOf(resolved),
			Alt:      alt,
			Caption:  nearestFigcaption(n, maxDepth),
			width:    width,
			height:   height,
		})
	})

	assignHero(imgs, ogImage)
	return imgs
}

func assignHero(imgs []ImageRef, ogImage string) {
	if len(imgs) == 0 {
		return
	}
	if ogImage != "" {
		for i := range imgs {
			if imgs[i].Src == ogImage {
				imgs[i].IsHero = true
				return
			}
		}
	}
	heroIdx := 0
	for i := 1; i < len(imgs); i++ {
		if imgBeats(imgs[i], imgs[heroIdx]) {
			heroIdx = i
		}
	}
	imgs[heroIdx].IsHero = true
}

// imgBeats reports whether a should displace b as the hero candidate:
// larger declared width wins, ties broken by declared area, remaining
// ties left to document order (b, appearing first, keeps it).
func imgBeats(a, b ImageRef) bool {
	if a.width != b.width {
		return a.width > b.width
	}
	return a.width*a.height > b.width*b.height
}

func resolveURL(base *url.URL, raw string) string {
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if base == nil || ref.IsAbs() {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

func filenameOf(src string) string {
	path := src
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func nearestFigcaption(n *html.Node, maxDepth int) string {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == "figure" {
			for c := p.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.Data == "figcaption" {
					return strings.TrimSpace(domx.TextOf(c, maxDepth))
				}
			}
			return ""
		}
	}
	return ""
}
