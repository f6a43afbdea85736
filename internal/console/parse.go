package console

import "strings"

// tokenizeLine splits a command line into tokens while supporting quotes.
// Examples:
//
//	add "Team Meeting" 09:00 10:00 Medium
//	remove 'Team Meeting'
func tokenizeLine(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var (
		out    []string
		buf    strings.Builder
		inQ    bool
		qChar  byte
		esc    bool
		quoted bool // current token came from quotes (may be empty)
	)
	flush := func() {
		if buf.Len() > 0 || quoted {
			out = append(out, buf.String())
			buf.Reset()
		}
		quoted = false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if esc {
			buf.WriteByte(ch)
			esc = false
			continue
		}
		if ch == '\\' {
			esc = true
			continue
		}
		if inQ {
			if ch == qChar {
				inQ = false
				continue
			}
			buf.WriteByte(ch)
			continue
		}
		switch ch {
		case '"', '\'':
			inQ = true
			quoted = true
			qChar = ch
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			buf.WriteByte(ch)
		}
	}
	flush()
	return out
}

// addArgs is the parsed form of `add <description...> <start> <end> <priority>`.
type addArgs struct {
	Description string
	Start       string
	End         string
	Priority    string
}

// parseAdd treats the last three tokens as start, end and priority; everything
// before them is the description, so unquoted multi-word descriptions work.
func parseAdd(args []string) (addArgs, bool) {
	if len(args) < 4 {
		return addArgs{}, false
	}
	n := len(args)
	return addArgs{
		Description: strings.Join(args[:n-3], " "),
		Start:       args[n-3],
		End:         args[n-2],
		Priority:    args[n-1],
	}, true
}

// plainRest returns the raw text after the command word when it carries no
// quotes or escapes, so runs of spaces inside a description survive.
func plainRest(line string) (string, bool) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return "", true
	}
	rest := strings.TrimSpace(line[i:])
	if strings.ContainsAny(rest, `"'\`) {
		return "", false
	}
	return rest, true
}

// dropLastFields removes the last n whitespace-separated fields of s.
func dropLastFields(s string, n int) string {
	for ; n > 0; n-- {
		s = strings.TrimRight(s, " \t")
		s = s[:strings.LastIndexAny(s, " \t")+1]
	}
	return strings.TrimSpace(s)
}
