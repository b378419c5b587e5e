package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	require.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Name?", &out)
	require.Error(t, err)
}

func TestGetWithDefault(t *testing.T) {
	var out bytes.Buffer

	got, err := GetWithDefault(bufio.NewReader(strings.NewReader("\n")), "Quantity", "1", &out)
	require.NoError(t, err)
	require.Equal(t, "1", got)
	require.Contains(t, out.String(), "Quantity [1]")

	got, err = GetWithDefault(bufio.NewReader(strings.NewReader("7\n")), "Quantity", "1", &out)
	require.NoError(t, err)
	require.Equal(t, "7", got)
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	for in, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		got, err := Confirm(bufio.NewReader(strings.NewReader(in)), "Sure?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", in)
	}
}

func stubTerminal(t *testing.T, tty bool, read func(int) ([]byte, error)) {
	t.Helper()
	oldRead, oldTTY := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTTY })
	readPassword = read
	isTerminal = func(int) bool { return tty }
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) {
		return nil, errors.New("boom")
	})
	var out bytes.Buffer
	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.Error(t, err)
}

func TestGetPassword_OK(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", string(pw))
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_NotTerminalReadsFromReader(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal read on piped input")
		return nil, nil
	})

	in := bufio.NewReader(strings.NewReader("s3cret\r\n1234\n"))
	var out bytes.Buffer

	pw, err := GetPassword(in, &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", string(pw))

	pin, err := GetSimpleText(in, "Enter PIN", &out)
	require.NoError(t, err)
	require.Equal(t, "1234", pin, "the next prompt gets the next line")

	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), &out)
	require.Error(t, err)
}
