package pass

import (
	"fmt"
	"strings"
)

// Invocation is one parsed `passname [-key val ...] [positional ...]`
// script line.
type Invocation struct {
	Name       string
	Named      map[string]string
	Positional []string
}

// ParseLine parses one pass-script line into an Invocation. Named
// arguments are introduced by a "-key" token followed by its value;
// everything else is positional.
func ParseLine(line string) (Invocation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Invocation{}, fmt.Errorf("pass: empty script line")
	}

	inv := Invocation{Name: fields[0], Named: make(map[string]string)}

	for i := 1; i < len(fields); i++ {
		tok := fields[i]
		if strings.HasPrefix(tok, "-") && len(tok) > 1 {
			key := strings.TrimPrefix(tok, "-")
			if i+1 >= len(fields) {
				return Invocation{}, fmt.Errorf("pass %q: named argument %q has no value", inv.Name, key)
			}
			inv.Named[key] = fields[i+1]
			i++
			continue
		}
		inv.Positional = append(inv.Positional, tok)
	}

	return inv, nil
}

// RequireNamed validates that every key in keys is present in inv.Named,
// returning an *ErrMissingNamedArg for the first one missing. The
// built-in place and legalize factories have no required named arguments
// and do not call it.
func RequireNamed(passName string, inv Invocation, keys ...string) error {
	for _, k := range keys {
		if _, ok := inv.Named[k]; !ok {
			return &ErrMissingNamedArg{Pass: passName, Key: k}
		}
	}
	return nil
}
