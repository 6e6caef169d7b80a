package tmpl_test

import (
	"fmt"

	"github.com/hasbyte1/go-underscore/tmpl"
)

func ExampleRender() {
	out, _ := tmpl.Render("hello: <%= name %>", map[string]string{"name": "moe"})
	fmt.Println(out)
	// Output: hello: moe
}

func ExampleCompile() {
	list := tmpl.MustCompile(`<% each people %><% if .admin %>*<% end %><%= .name %> <% end %>`)
	out, _ := list.Render(map[string]any{
		"people": []map[string]any{
			{"name": "moe", "admin": true},
			{"name": "curly"},
			{"name": "larry"},
		},
	})
	fmt.Println(out)
	// Output: *moe curly larry
}
