package frame

import (
	"bytes"
	"fmt"
	"html/template"
)

type MetaTag struct {
	Property string
	Content  string
}

var pageTemplate = template.Must(template.New("frame").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
{{range .Tags}}<meta property="{{.Property}}" content="{{.Content}}">
{{end}}</head>
<body><img src="{{.Image}}" alt="{{.Title}}"></body>
</html>
`))

// MetaTags lists the fc:frame tags for a response in client order.
func MetaTags(res *Response, postURL string) []MetaTag {
	tags := []MetaTag{
		{"fc:frame", "vNext"},
		{"fc:frame:image", res.Image},
		{"og:image", res.Image},
	}
	if res.AspectRatio != "" {
		tags = append(tags, MetaTag{"fc:frame:image:aspect_ratio", res.AspectRatio})
	}
	if res.InputText != "" {
		tags = append(tags, MetaTag{"fc:frame:input:text", res.InputText})
	}
	if res.PostURL != "" {
		postURL = res.PostURL
	}
	if postURL != "" {
		tags = append(tags, MetaTag{"fc:frame:post_url", postURL})
	}

	for i, b := range res.Buttons {
		prefix := fmt.Sprintf("fc:frame:button:%d", i+1)
		tags = append(tags, MetaTag{prefix, b.Label})
		if b.Action != "" {
			tags = append(tags, MetaTag{prefix + ":action", string(b.Action)})
		}
		if b.Target != "" {
			tags = append(tags, MetaTag{prefix + ":target", b.Target})
		}
	}
	return tags
}

// RenderHTML writes the page a feed client scrapes for frame metadata.
func RenderHTML(res *Response, title, postURL string) ([]byte, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, map[string]any{
		"Title": title,
		"Image": res.Image,
		"Tags":  MetaTags(res, postURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render frame: %w", err)
	}
	return buf.Bytes(), nil
}
