package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("cmd set eyeStyle  star")
	require.True(t, ok)
	assert.Equal(t, []string{"set", "eyeStyle", "star"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("make it blue")
	assert.False(t, ok)
	_, ok = Parse("CMD set")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var got []string
	var out string
	fs := NewFlagSet("export")
	fs.StringVar(&out, "o", "default.png", "output file")
	r.Register("export", "save a png", fs, func(args []string) error {
		got = args
		return nil
	})
	r.Register("fail", "always fails", nil, func([]string) error { return errors.New("boom") })

	require.NoError(t, r.Execute([]string{"export", "-o", "a.png", "extra"}))
	assert.Equal(t, "a.png", out)
	assert.Equal(t, []string{"extra"}, got)

	assert.EqualError(t, r.Execute([]string{"fail"}), "boom")
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
	assert.Error(t, r.Execute([]string{"export", "-bogus"}))
	assert.ErrorContains(t, r.Execute(nil), "export, fail")

	assert.Equal(t, []string{"export: save a png", "fail: always fails"}, r.Help())
}
