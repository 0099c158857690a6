package strcase

import "testing"

func TestCamel(t *testing.T) {
	cases := map[string]string{
		"http_server":  "httpServer",
		"HTTP-server":  "httpServer",
		"FooBar":       "fooBar",
		"foo bar baz":  "fooBarBaz",
		"already_good": "alreadyGood",
		"":             "",
	}
	for in, want := range cases {
		if got := Camel(in); got != want {
			t.Errorf("Camel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPascal(t *testing.T) {
	cases := map[string]string{
		"http-server": "HttpServer",
		"foo_bar":     "FooBar",
		"fooBar":      "FooBar",
	}
	for in, want := range cases {
		if got := Pascal(in); got != want {
			t.Errorf("Pascal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"HTTPServer": "http_server",
		"fooBar":     "foo_bar",
		"foo-bar":    "foo_bar",
		"Foo Bar":    "foo_bar",
	}
	for in, want := range cases {
		if got := Snake(in); got != want {
			t.Errorf("Snake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKebab(t *testing.T) {
	cases := map[string]string{
		"fooBar":   "foo-bar",
		"foo_bar":  "foo-bar",
		"FooV2Bar": "foo-v2-bar",
	}
	for in, want := range cases {
		if got := Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("hello_world"); got != "Hello World" {
		t.Errorf("Title = %q", got)
	}
}
