package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chriso345/ezcli"
)

var (
	helpArg    = ezcli.Arg{Name: ezcli.NewName("help", "h"), Desc: "Show this help message"}
	versionArg = ezcli.Arg{Name: ezcli.LongName("version"), Desc: "Show version information"}
	verboseArg = ezcli.Arg{Name: ezcli.NewName("verbose", "v"), Desc: "Enable verbose output"}
	shoutArg   = ezcli.Arg{Name: ezcli.NewName("shout", "s"), Desc: "Print the greeting in upper case"}
	nameArg    = ezcli.Arg{Name: ezcli.NewName("name", "n"), Value: "NAME", Desc: "Who to greet"}
	repeatArg  = ezcli.Arg{Name: ezcli.LongName("repeat"), Value: "N", Desc: "Number of greetings"}
	styleArg   = ezcli.Arg{Name: ezcli.LongName("greeting_style"), Choices: []string{"hello", "hi", "hey"}, Desc: "Greeting word"}
)

func main() {
	args := ezcli.Args()

	if ezcli.HasFlag(args, helpArg.Name) {
		help, err := ezcli.BuildHelp("greet", []ezcli.Arg{helpArg, versionArg, verboseArg, shoutArg, nameArg, repeatArg, styleArg})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error building help:", err)
			os.Exit(1)
		}
		fmt.Println(help)
		os.Exit(0)
	}
	if ezcli.HasFlag(args, versionArg.Name) {
		fmt.Println(ezcli.BuildVersion("greet", "0.1.0"))
		os.Exit(0)
	}

	name, ok := ezcli.OptionValue(args, nameArg.Name)
	if !ok {
		name = "World"
	}

	repeat, ok, err := ezcli.IntOption(args, repeatArg.Name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}
	if !ok {
		repeat = 1
	}

	style, ok, err := ezcli.ChoiceOption(args, styleArg.Name, styleArg.Choices)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing arguments:", err)
		os.Exit(1)
	}
	if !ok {
		style = styleArg.Choices[0]
	}

	greeting := buildGreeting(style, name, ezcli.HasFlag(args, shoutArg.Name))

	if ezcli.HasFlag(args, verboseArg.Name) {
		fmt.Printf("Greeting %s %d time(s)\n", name, repeat)
	}
	for range repeat {
		fmt.Println(greeting)
	}
}

// buildGreeting returns "Style, name!", upper-cased when shout is set.
func buildGreeting(style, name string, shout bool) string {
	greeting := fmt.Sprintf("%s, %s!", capitalize(style), name)
	if shout {
		greeting = strings.ToUpper(greeting)
	}
	return greeting
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
