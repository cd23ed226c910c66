package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func runSession(cmds ...string) ([]string, bool) {
	var buf bytes.Buffer
	s := NewSession(&buf)
	quit := false
	for _, c := range cmds {
		if s.Execute(c) {
			quit = true
			break
		}
	}
	if buf.Len() == 0 {
		return nil, quit
	}
	return lines(buf.String()), quit
}

func TestSession_Transcript(t *testing.T) {
	tests := []struct {
		name string
		cmds []string
		want []string
	}{
		{
			name: "insert remove reuse",
			cmds: []string{"insert A", "insert B", "remove 0v0", "get 0v0", "insert C", "get 1v0", "len"},
			want: []string{"0v0", "1v0", `removed "A"`, "0v0: stale", "0v1", `1v0: "B"`, "slots=2 live=2"},
		},
		{
			name: "replace",
			cmds: []string{"insert X", "replace 0v0 Y", "get 0v0", "get 0v1", "replace 0v0 Z"},
			want: []string{"0v0", "0v1", "0v0: stale", `0v1: "Y"`, "error: arena: replace 0v0: stale generation"},
		},
		{
			name: "set keeps handle",
			cmds: []string{"insert hello world", "set 0v0 bye now", "get 0v0"},
			want: []string{"0v0", `0v0: "bye now"`, `0v0: "bye now"`},
		},
		{
			name: "swap and list",
			cmds: []string{"insert a", "insert b", "swap 0v0 1v0", "ls"},
			want: []string{"0v0", "1v0", "swapped 0v0 and 1v0", `0v0: "b"`, `1v0: "a"`},
		},
		{
			name: "map",
			cmds: []string{"insert abc", "map 0v0 upper", "get 0v1", "map 0v1 drop", "len", "map 0v1 lower", "insert d"},
			want: []string{"0v0", "0v1", `0v1: "ABC"`, "nil", "slots=1 live=0", "error: arena: map_invalidate 0v1: stale generation", "0v2"},
		},
		{
			name: "clear",
			cmds: []string{"insert a", "insert b", "clear", "ls", "len"},
			want: []string{"0v0", "1v0", "cleared 2 slot(s)", "(empty)", "slots=2 live=0"},
		},
		{
			name: "view use after invalidate",
			cmds: []string{"insert node", "view 0v0", "deref v1", "remove 0v0", "views", "deref v1", "deref v1", "view 0v0"},
			want: []string{
				"0v0",
				"v1 -> 0v0",
				`v1: "node"`,
				`removed "node"`,
				"v1 -> 0v0 valid=false",
				"panic: arena: use after invalidate: 0v0 (stale generation)",
				`error: no view named "v1"`,
				"0v0: stale, no view created",
			},
		},
		{
			name: "bad input",
			cmds: []string{"get", "get zz", "swap 0v0", "frobnicate", "map 0v0", "insert"},
			want: []string{
				"error: usage: get <h>",
				`error: parse handle "zz": missing generation`,
				"error: usage: swap <a> <b>",
				"error: unknown command: frobnicate (type 'help' for commands)",
				"error: usage: map <h> upper|lower|drop",
				"error: usage: insert <value>",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := runSession(tt.cmds...)
			assert.False(t, quit)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("transcript mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSession_Quit(t *testing.T) {
	got, quit := runSession("insert a", "quit", "insert b")
	assert.True(t, quit)
	assert.Equal(t, []string{"0v0"}, got)

	got, quit = runSession("", "   ")
	assert.False(t, quit)
	assert.Nil(t, got)
}

func TestSession_Help(t *testing.T) {
	got, _ := runSession("help")
	assert.Contains(t, got, "Commands:")
}

func TestCompleter(t *testing.T) {
	assert.Equal(t, []string{"remove", "replace"}, completer("re"))
	assert.Equal(t, []string{"view", "views"}, completer("VIEW"))
	assert.Empty(t, completer("zzz"))
}
