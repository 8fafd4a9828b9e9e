package greeting

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/flarebyte/argecho/internal/catalog"
)

func testCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestLines(t *testing.T) {
	c := testCatalog(t)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "nil", args: nil, want: "未收到额外参数"},
		{name: "empty", args: []string{}, want: "未收到额外参数"},
		{name: "single", args: []string{"hello"}, want: "参数: hello"},
		{name: "ordered", args: []string{"a", "b", "c"}, want: "参数: a b c"},
		{name: "empty token", args: []string{""}, want: "参数: "},
		{name: "flag like", args: []string{"--help", "-v", "--"}, want: "参数: --help -v --"},
		{name: "inner spaces", args: []string{"a b", "c"}, want: "参数: a b c"},
		{name: "embedded newline", args: []string{"a\nb"}, want: "参数: a\nb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Lines(c, tc.args)
			if got[0] != c.Banner {
				t.Fatalf("unexpected banner: %q", got[0])
			}
			if got[1] != tc.want {
				t.Fatalf("unexpected second line\nwant: %q\n got: %q", tc.want, got[1])
			}
		})
	}
}

func TestWrite_TwoLinesIdempotent(t *testing.T) {
	c := testCatalog(t)
	args := []string{"x", "y"}
	var first, second bytes.Buffer
	if err := Write(&first, c, args); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Write(&second, c, args); err != nil {
		t.Fatalf("write: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("output differs between runs:\n%q\n%q", first.String(), second.String())
	}
	want := ">>> 运行 Go 示例脚本\n参数: x y\n"
	if first.String() != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, first.String())
	}
	if n := strings.Count(first.String(), "\n"); n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWrite_ReturnsWriterError(t *testing.T) {
	err := Write(failingWriter{}, testCatalog(t), nil)
	if err == nil || err.Error() != "closed" {
		t.Fatalf("unexpected error: %v", err)
	}
}
