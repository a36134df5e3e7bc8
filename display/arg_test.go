package display_test

import (
	"bytes"
	stderrs "errors"
	"testing"

	"github.com/chriso345/gore/assert"
	"github.com/chriso345/gore/vital"
	"github.com/google/go-cmp/cmp"

	"github.com/chriso345/ezcli/core"
	"github.com/chriso345/ezcli/display"
	clierr "github.com/chriso345/ezcli/errors"
)

func TestBuildArg(t *testing.T) {
	tests := []struct {
		name string
		arg  display.Arg
		want string
	}{
		{"short flag", display.Arg{Name: core.ShortName("a"), Desc: "yup"}, "-a:\n    yup"},
		{"long flag", display.Arg{Name: core.LongName("my_arg"), Desc: "yes"}, "--my-arg:\n    yes"},
		{"both flag", display.Arg{Name: core.NewName("my_arg", "a"), Desc: "aha"}, "-a, --my-arg:\n    aha"},
		{"short value", display.Arg{Name: core.ShortName("a"), Value: "VALUE", Desc: "yup"}, "-a <VALUE>:\n    yup"},
		{"long value", display.Arg{Name: core.LongName("my_arg"), Value: "VALUE", Desc: "yes"}, "--my-arg <VALUE>:\n    yes"},
		{"both value", display.Arg{Name: core.NewName("my_arg", "a"), Value: "VALUE", Desc: "aha"}, "-a, --my-arg <VALUE>:\n    aha"},
		{"short choice", display.Arg{Name: core.ShortName("a"), Choices: []string{"VAL"}, Desc: "yup"}, "-a [VAL]:\n    yup"},
		{"long choices", display.Arg{Name: core.LongName("my_arg"), Choices: []string{"VAL", "VALUE"}, Desc: "yes"}, "--my-arg [VAL|VALUE]:\n    yes"},
		{
			"choices win over value",
			display.Arg{Name: core.NewName("my_arg", "a"), Value: "X", Choices: []string{"V", "VAL", "VALUE"}, Desc: "aha"},
			"-a, --my-arg [V|VAL|VALUE]:\n    aha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := display.BuildArg(tt.arg)
			vital.Nil(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("BuildArg mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildArg_ZeroName(t *testing.T) {
	_, err := display.BuildArg(display.Arg{Desc: "nothing"})
	assert.NotNil(t, err)
	var pe clierr.ParseError
	assert.True(t, stderrs.As(err, &pe))
}

func TestBuildArg_EmptyChoice(t *testing.T) {
	_, err := display.BuildArg(display.Arg{Name: core.LongName("mode"), Choices: []string{"fast", ""}, Desc: "Run mode"})
	assert.NotNil(t, err)
	var pe clierr.ParseError
	assert.True(t, stderrs.As(err, &pe))
	assert.StringContains(t, err.Error(), "--mode")
}

func TestPrintArg(t *testing.T) {
	var buf bytes.Buffer
	err := display.PrintArg(&buf, display.Arg{Name: core.NewName("my_arg", "a"), Value: "VALUE", Desc: "aha"})
	vital.Nil(t, err)
	assert.Equal(t, buf.String(), "-a, --my-arg <VALUE>:\n    aha\n")

	buf.Reset()
	err = display.PrintArg(&buf, display.Arg{})
	assert.NotNil(t, err)
	assert.Equal(t, buf.Len(), 0)
}
