package ezcli_test

import (
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"

	"github.com/chriso345/ezcli"
	"github.com/chriso345/ezcli/core"
)

func TestFlag_ProcessArgs(t *testing.T) {
	oldArgs := core.ProcessArgs
	defer func() { core.ProcessArgs = oldArgs }()
	core.ProcessArgs = func() []string { return []string{"program", "-b", "--my-boolean"} }

	assert.True(t, ezcli.Flag(ezcli.ShortName("b")))
	assert.True(t, ezcli.Flag(ezcli.LongName("my_boolean")))
	assert.True(t, ezcli.Flag(ezcli.NewName("my_boolean", "b")))
	assert.Equal(t, ezcli.Flag(ezcli.LongName("not_enabled")), false)
}

func TestFlag_NotGiven(t *testing.T) {
	oldArgs := core.ProcessArgs
	defer func() { core.ProcessArgs = oldArgs }()
	core.ProcessArgs = func() []string { return []string{"program"} }

	assert.Equal(t, ezcli.Flag(ezcli.ShortName("b")), false)
	assert.Equal(t, ezcli.Flag(ezcli.NewName("my_boolean", "b")), false)
}

func TestOption_ProcessArgs(t *testing.T) {
	oldArgs := core.ProcessArgs
	defer func() { core.ProcessArgs = oldArgs }()
	core.ProcessArgs = func() []string { return []string{"program", "--my-arg0", "big", "-w", "wuv"} }

	big, ok := ezcli.Option(ezcli.LongName("my_arg0"))
	assert.True(t, ok)
	assert.Equal(t, big, "big")

	wuv, ok := ezcli.Option(ezcli.NewName("my_arg1", "w"))
	assert.True(t, ok)
	assert.Equal(t, wuv, "wuv")

	_, ok = ezcli.Option(ezcli.LongName("will_be_none"))
	assert.Equal(t, ok, false)
}

func TestArgs_ProcessArgs(t *testing.T) {
	oldArgs := core.ProcessArgs
	defer func() { core.ProcessArgs = oldArgs }()
	core.ProcessArgs = func() []string { return []string{"program", "-ab", "--out", "x"} }

	args := ezcli.Args()
	assert.Equal(t, len(args), 4)
	assert.True(t, ezcli.HasFlag(args, ezcli.ShortName("b")))
	out, ok := ezcli.OptionValue(args, ezcli.LongName("out"))
	assert.True(t, ok)
	assert.Equal(t, out, "x")
}

func TestBuildHelp_Basic(t *testing.T) {
	help, err := ezcli.BuildHelp("testapp", []ezcli.Arg{
		{Name: ezcli.NewName("foo", "f"), Value: "FOO", Desc: "A foo option"},
	})
	vital.Nil(t, err)
	assert.StringContains(t, help, "testapp")
	assert.StringContains(t, help, "-f, --foo <FOO>")
}

func TestBuildVersion(t *testing.T) {
	assert.Equal(t, ezcli.BuildVersion("mycli", "2.3.4"), "mycli v2.3.4")
}
