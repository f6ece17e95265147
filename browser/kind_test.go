package browser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{name: "chrome", in: "chrome", want: Chrome},
		{name: "firefox", in: "firefox", want: Firefox},
		{name: "edge", in: "edge", want: Edge},
		{name: "safari", in: "safari", want: Safari},
		{name: "unknown identifier", in: "opera", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "case sensitive", in: "Chrome", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedBrowser)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKindString(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "chrome", in: "Google Chrome 126.0.6478.127", want: "126.0.6478.127"},
		{name: "firefox", in: "Mozilla Firefox 127.0", want: "127.0"},
		{name: "edge", in: "Microsoft Edge 125.0.2535.92\n", want: "125.0.2535.92"},
		{name: "no version", in: "something went wrong", want: "Unknown"},
		{name: "empty", in: "", want: "Unknown"},
		{name: "bare integer skipped", in: "build 42 of 2.1.3", want: "2.1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseVersion(tt.in))
		})
	}
}
