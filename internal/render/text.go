package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diodechain/beamterms/term"
)

// Theme is the color palette used when rendering terms for a
// terminal. The zero value is usable: all styles fall back to
// lipgloss's unstyled default.
type Theme struct {
	Register lipgloss.Style
	Label    lipgloss.Style
	Number   lipgloss.Style
	Index    lipgloss.Style
	Compound lipgloss.Style
	Unknown  lipgloss.Style
}

// DefaultTheme is the built-in dark-terminal palette: registers in
// cyan, labels in yellow, numeric literals in green, table indices in
// blue, compound-term punctuation faint, and unrecognized extended
// sub-tags in red so they stand out as something worth investigating.
var DefaultTheme = Theme{
	Register: lipgloss.NewStyle().Foreground(lipgloss.Color("80")),
	Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
	Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
	Compound: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}

// Text renders t as a single-line, human-facing description using
// theme's colors. Compound terms (List, Alloc, TypedReg) render their
// children inline, separated by the Compound style's punctuation.
func Text(theme Theme, t term.Term) string {
	switch v := t.(type) {
	case term.XReg:
		return theme.Register.Render("x" + v.Index.String())
	case term.YReg:
		return theme.Register.Render("y" + v.Index.String())
	case term.FloatReg:
		return theme.Register.Render("fr" + v.Index.String())
	case term.Label:
		return theme.Label.Render("L" + v.ID.String())
	case term.Atom:
		return theme.Index.Render("atom#" + v.Index.String())
	case term.Literal:
		return theme.Index.Render("lit#" + v.Index.String())
	case term.Char:
		return theme.Number.Render("$" + formatCodePoint(v.CodePoint))
	case term.Integer:
		return theme.Number.Render(v.Value.String())
	case term.Float:
		return theme.Number.Render(strconv.FormatFloat(v.Value(), 'g', -1, 64))
	case term.TypedReg:
		return Text(theme, v.Register) + theme.Compound.Render(":") + theme.Index.Render("t"+v.Type.String())
	case term.List:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = Text(theme, item)
		}
		return theme.Compound.Render("[") + strings.Join(parts, theme.Compound.Render(", ")) + theme.Compound.Render("]")
	case term.Alloc:
		parts := make([]string, len(v.Pairs))
		for i, pair := range v.Pairs {
			parts[i] = Text(theme, pair.Type) + theme.Compound.Render("=") + Text(theme, pair.Value)
		}
		return theme.Compound.Render("{") + strings.Join(parts, theme.Compound.Render(", ")) + theme.Compound.Render("}")
	case term.Extended:
		return theme.Unknown.Render(fmt.Sprintf("ext(0x%02x, %s)", v.SubTag, v.Value.String()))
	default:
		return theme.Unknown.Render(fmt.Sprintf("%v", t))
	}
}

// formatCodePoint renders a Unicode code point as a quoted character
// when it is printable ASCII, falling back to its decimal value
// otherwise.
func formatCodePoint(codePoint interface{ Int64() int64 }) string {
	n := codePoint.Int64()
	if n >= 0x20 && n < 0x7f {
		return fmt.Sprintf("%q", rune(n))
	}
	return strconv.FormatInt(n, 10)
}
