package md2html_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	md2html "github.com/alnah/go-md2html"
)

func Example() {
	svc, err := md2html.New()
	if err != nil {
		log.Fatal(err)
	}

	doc, err := svc.Render(context.Background(), md2html.Input{
		Markdown: "# Hello\n\nWorld",
		Theme:    md2html.ThemeLight,
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(doc, `data-color-mode="light"`))
	// Output: true
}
