package parser

import (
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	"github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// ParsedPost is the readable part of a fetched post page: the plain text to
// feed into extraction plus a top image to use as the record thumbnail.
type ParsedPost struct {
	PlainText string
	TopImage  string
}

// ParsePost extracts readable text and a top image from raw HTML.
// Readability is the main extractor; trafilatura takes over when it yields
// nothing, and goose fills in a missing top image.
func ParsePost(htmlStr string) (*ParsedPost, error) {
	post, err := parseWithReadability(htmlStr)
	if err != nil || strings.TrimSpace(post.PlainText) == "" {
		post, err = parseWithTrafilatura(htmlStr)
		if err != nil {
			return nil, err
		}
	}

	if post.TopImage == "" {
		if img, err := extractTopImageWithGoose(htmlStr); err == nil {
			post.TopImage = img
		}
	}

	return post, nil
}

func parseWithReadability(htmlStr string) (*ParsedPost, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return nil, err
	}

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return nil, err
	}
	return &ParsedPost{
		PlainText: article.TextContent,
		TopImage:  article.Image,
	}, nil
}

func parseWithTrafilatura(htmlStr string) (*ParsedPost, error) {
	opts := trafilatura.Options{
		IncludeImages: true,
	}

	article, err := trafilatura.Extract(strings.NewReader(htmlStr), opts)
	if err != nil {
		return nil, err
	}

	return &ParsedPost{
		PlainText: article.ContentText,
		TopImage:  article.Metadata.Image,
	}, nil
}

func extractTopImageWithGoose(htmlStr string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, "")
	if err != nil {
		return "", err
	}
	return article.TopImage, nil
}
