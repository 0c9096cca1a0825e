package cli

import "strings"

// Tokens is the raw lexer output: option names (without dashes) mapped to
// their values, and everything else in order.
type Tokens struct {
	Options     map[string]string
	Positionals []string
}

// Lex splits args into options and positionals. It knows nothing about
// what the options mean beyond which names take no value:
//
//   - `-name` and `--name` start an option, `-name=value` carries its value;
//   - a name listed in singles takes no value;
//   - any other option takes the next argument as its value, even one that
//     starts with a dash, or the empty string at the end of args;
//   - `--` ends option parsing and `-` on its own is a positional.
//
// When an option is repeated the last value wins.
func Lex(args []string, singles []string) Tokens {
	single := make(map[string]bool, len(singles))
	for _, name := range singles {
		single[name] = true
	}

	tokens := Tokens{Options: make(map[string]string)}
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			tokens.Positionals = append(tokens.Positionals, args[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			tokens.Positionals = append(tokens.Positionals, arg)
			continue
		}

		name := strings.TrimPrefix(arg[1:], "-")
		if n, value, ok := strings.Cut(name, "="); ok {
			tokens.Options[n] = value
			continue
		}
		if single[name] {
			tokens.Options[name] = ""
			continue
		}
		if i+1 < len(args) {
			i++
			tokens.Options[name] = args[i]
		} else {
			tokens.Options[name] = ""
		}
	}
	return tokens
}
