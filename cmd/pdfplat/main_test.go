package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandsCoverEveryListedName(t *testing.T) {
	cmds := commands()
	for _, name := range commandNames() {
		cmd, ok := cmds[name]
		require.True(t, ok, "command %q missing from map", name)
		require.Equal(t, name, cmd.name)
		require.NotNil(t, cmd.run)
		require.NotEmpty(t, cmd.description)
	}
	require.Len(t, cmds, len(commandNames()))
}

func TestArgRouteInterpolatesFirstArgument(t *testing.T) {
	route := argRoute("/document/%s")
	require.Equal(t, "/document/42", route([]string{"42", "-extra"}))
	require.Equal(t, "/document/", route(nil))
}

func TestRequireID(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int64
		wantErr bool
	}{
		{name: "valid", args: []string{"42"}, want: 42},
		{name: "missing", args: nil, wantErr: true},
		{name: "not a number", args: []string{"abc"}, wantErr: true},
		{name: "zero", args: []string{"0"}, wantErr: true},
		{name: "negative", args: []string{"-3"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := requireID(tc.args, "document")
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPrintUsageListsCommands(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer func() {
		os.Stdout = oldStdout
	}()

	os.Stdout = w
	printUsage()
	require.NoError(t, w.Close())
	os.Stdout = oldStdout

	output, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	outStr := string(output)
	require.Contains(t, outStr, "Usage: pdfplat <command>")
	for _, name := range commandNames() {
		require.Contains(t, outStr, name)
	}
}
