// Package tmpl renders small text templates against go-underscore
// collections.
//
// # Syntax
//
// Literal text is copied through unchanged. Tags are delimited by <% and %>:
//
//	<%= path %>                          value at path
//	<% if path %> … <% else %> … <% end %>   truthiness test
//	<% each path %> … <% else %> … <% end %> iteration, else when empty
//	<%# comment %>                       dropped
//
// A path is a dot-separated chain of keys resolved with
// [collections.Path]. Inside an each block "." is the current element,
// ".name" is relative to it and "$key" is its key or index. Plain paths are
// looked up in the innermost block first and then outward, ending at the
// data passed to Render.
//
// Missing values and nil render as the empty string. if uses
// [collections.Truthy]; each accepts anything [collections.Of] can resolve
// and treats nil or a missing path as empty.
//
//	t, err := tmpl.Compile(`<% each people %><%= $key %>:<%= .name %> <% end %>`)
//	if err != nil {
//	    return err
//	}
//	out, _ := t.Render(map[string]any{
//	    "people": []map[string]string{{"name": "moe"}, {"name": "curly"}},
//	})
//	// out == "0:moe 1:curly "
//
// Templates are parsed once by [Compile] and may be rendered concurrently.
package tmpl
