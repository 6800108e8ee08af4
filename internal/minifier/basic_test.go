package minifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicCSS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts CSSOptions
		want string
	}{
		{
			name: "restructure drops trailing semicolon",
			in:   "/* c */ .a {  color : red ; }",
			opts: CSSOptions{Restructure: true},
			want: ".a{color:red}",
		},
		{
			name: "no restructure",
			in:   "/* c */ .a {  color : red ; }",
			want: ".a{color:red;}",
		},
		{
			name: "license comment kept",
			in:   "/*! lic */\n.a {}",
			opts: CSSOptions{Comments: true},
			want: "/*! lic */ .a{}",
		},
		{
			name: "license comment dropped",
			in:   "/*! lic */\n.a {}",
			want: ".a{}",
		},
		{
			name: "selectors and combinators",
			in:   "ul > li ,\n ol ~ p { margin : 0 }",
			want: "ul>li,ol~p{margin:0}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BasicCSS{}.MinifyCSS(tt.in, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasicJS(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "comments and whitespace",
			in:   "// header\nfunction add(a, b) {\n  return a + b; // sum\n}\n",
			want: "function add(a,b){return a+b;}",
		},
		{
			name: "url inside string is not a comment",
			in:   `var s = "http://x";`,
			want: `var s="http://x";`,
		},
		{
			name: "block comment",
			in:   "/* a\n b */ let x = 1;",
			want: "let x=1;",
		},
		{
			name: "keyword before string",
			in:   "function f() { return \"x\" }",
			want: "function f(){return \"x\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BasicJS{}.MinifyJS(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentScanner(t *testing.T) {
	license := commentScanner{quotes: `'"`, keepLicense: true}

	tests := []struct {
		name    string
		scanner commentScanner
		in      string
		want    string
	}{
		{"js line comment", jsComments, "a // b\nc", "a \nc"},
		{"js line comment at end", jsComments, "a // b", "a "},
		{"js block comment", jsComments, "a /* b\n c */d", "a d"},
		{"slashes in double quotes", jsComments, `"//" // c`, `"//" `},
		{"escaped quote", jsComments, "'it\\'s' // c", "'it\\'s' "},
		{"template literal", jsComments, "`//\n/* x */`", "`//\n/* x */`"},
		{"quote state ends at newline", jsComments, "'a\n// b", "'a\n"},
		{"unterminated block", jsComments, "a /* b", "a "},
		{"css keeps line slashes", cssComments, "a { b: url(//x) }", "a { b: url(//x) }"},
		{"css comment in string", cssComments, `a { content: "/* x */" }`, `a { content: "/* x */" }`},
		{"css drops license", cssComments, "/*! l */a", "a"},
		{"css keeps license", license, "/*! l */a/* c */", "/*! l */a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scanner.strip(tt.in))
		})
	}
}
