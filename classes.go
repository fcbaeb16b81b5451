package tcss

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnknownClass means a utility class name is not recognized.
var ErrUnknownClass = errors.New("unknown class")

// ClassError reports a utility class that could not be applied.
type ClassError struct {
	Class      string
	Suggestion string // "did you mean" hint, may be empty
	Err        error
}

func (e *ClassError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("class %q: %v (did you mean %q?)", e.Class, e.Err, e.Suggestion)
	}
	return fmt.Sprintf("class %q: %v", e.Class, e.Err)
}

func (e *ClassError) Unwrap() error {
	return e.Err
}

// classRule applies one utility class to a style.
type classRule func(s *Style) error

func declare(property, value string) classRule {
	return func(s *Style) error { return Declare(s, property, value) }
}

func declareAll(rules ...classRule) classRule {
	return func(s *Style) error {
		for _, r := range rules {
			if err := r(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// addFont ORs a modifier into the style's font set so "bold italic" keeps both.
func addFont(f FontStyle) classRule {
	return func(s *Style) error {
		s.FontStyle = Some(s.FontStyle.OrElse(FontNormal).With(f))
		return nil
	}
}

// borderStyle sets the border line style, keeping a color set by an
// earlier border-<color> class.
func borderStyle(style BorderStyle) classRule {
	return func(s *Style) error {
		b := s.Border.OrElse(NoBorder)
		b.Style = style
		s.Border = Some(b)
		return nil
	}
}

// utilityClasses maps fixed class names to their declarations.
var utilityClasses = map[string]classRule{
	// Display and direction
	"block":            declare("display", "block"),
	"hidden":           declare("display", "none"),
	"flex":             declareAll(declare("display", "flex"), declare("flex-direction", "row")),
	"flex-row":         declareAll(declare("display", "flex"), declare("flex-direction", "row")),
	"flex-col":         declareAll(declare("display", "flex"), declare("flex-direction", "column")),
	"flex-row-reverse": declareAll(declare("display", "flex"), declare("flex-direction", "row-reverse")),
	"flex-col-reverse": declareAll(declare("display", "flex"), declare("flex-direction", "column-reverse")),

	// Flex factors
	"grow":        declare("flex-grow", "1"),
	"grow-0":      declare("flex-grow", "0"),
	"flex-grow":   declare("flex-grow", "1"),
	"shrink":      declare("flex-shrink", "1"),
	"shrink-0":    declare("flex-shrink", "0"),
	"flex-shrink": declare("flex-shrink", "1"),

	// Justify content
	"justify-start":   declare("justify-content", "start"),
	"justify-center":  declare("justify-content", "center"),
	"justify-end":     declare("justify-content", "end"),
	"justify-between": declare("justify-content", "space-between"),
	"justify-around":  declare("justify-content", "space-around"),
	"justify-evenly":  declare("justify-content", "space-evenly"),

	// Align items
	"items-start":    declare("align-items", "start"),
	"items-center":   declare("align-items", "center"),
	"items-end":      declare("align-items", "end"),
	"items-stretch":  declare("align-items", "stretch"),
	"items-baseline": declare("align-items", "baseline"),

	// Text
	"text-left":     declare("text-align", "left"),
	"text-center":   declare("text-align", "center"),
	"text-right":    declare("text-align", "right"),
	"font-bold":     addFont(Bold),
	"font-dim":      addFont(Dim),
	"bold":          addFont(Bold),
	"italic":        addFont(Italic),
	"underline":     addFont(Underline),
	"blink":         addFont(Blink),
	"strikethrough": addFont(Strikethrough),
	"line-through":  addFont(Strikethrough),
	"dim":           addFont(Dim),
	"font-normal":   declare("font-style", "normal"),

	// Overflow
	"overflow-visible": declare("overflow", "visible"),
	"overflow-hidden":  declare("overflow", "hidden"),
	"overflow-scroll":  declare("overflow", "scroll"),

	// Borders
	"border":         borderStyle(BorderSolid),
	"border-none":    borderStyle(BorderNone),
	"border-single":  borderStyle(BorderSolid),
	"border-solid":   borderStyle(BorderSolid),
	"border-rounded": borderStyle(BorderRounded),
	"border-double":  borderStyle(BorderDouble),
	"border-thick":   borderStyle(BorderThick),
	"border-dashed":  borderStyle(BorderDashed),

	// Sizing keywords
	"w-full": declare("width", "100%"),
	"w-auto": declare("width", "auto"),
	"h-full": declare("height", "100%"),
	"h-auto": declare("height", "auto"),
}

// Class patterns
var (
	sizePattern     = regexp.MustCompile(`^(w|h|min-w|max-w|min-h|max-h)-(\d+)$`)
	fractionPattern = regexp.MustCompile(`^(w|h)-(\d+)/(\d+)$`)
	spacingPattern  = regexp.MustCompile(`^(p|m)([xytrbl]?)-(\d+)$`)
	gapPattern      = regexp.MustCompile(`^gap-(\d+)$`)
	opacityPattern  = regexp.MustCompile(`^opacity-(\d+)$`)
	colorPattern    = regexp.MustCompile(`^(text|bg|border)-(.+)$`)
)

var sizeProperties = map[string]string{
	"w":     "width",
	"h":     "height",
	"min-w": "min-width",
	"max-w": "max-width",
	"min-h": "min-height",
	"max-h": "max-height",
}

// spacingSides maps a spacing class side letter to the property suffixes it sets.
var spacingSides = map[string][]string{
	"":  {""},
	"x": {"-left", "-right"},
	"y": {"-top", "-bottom"},
	"t": {"-top"},
	"r": {"-right"},
	"b": {"-bottom"},
	"l": {"-left"},
}

// lookupClass returns the rule for a single utility class.
func lookupClass(class string) (classRule, bool) {
	if rule, ok := utilityClasses[class]; ok {
		return rule, true
	}

	if m := sizePattern.FindStringSubmatch(class); m != nil {
		return declare(sizeProperties[m[1]], m[2]), true
	}

	if m := fractionPattern.FindStringSubmatch(class); m != nil {
		num, _ := strconv.Atoi(m[2])
		den, _ := strconv.Atoi(m[3])
		if den == 0 || num > den {
			return nil, false
		}
		return declare(sizeProperties[m[1]], strconv.Itoa(num*100/den)+"%"), true
	}

	if m := spacingPattern.FindStringSubmatch(class); m != nil {
		property := "padding"
		if m[1] == "m" {
			property = "margin"
		}
		var rules []classRule
		for _, suffix := range spacingSides[m[2]] {
			rules = append(rules, declare(property+suffix, m[3]))
		}
		return declareAll(rules...), true
	}

	if m := gapPattern.FindStringSubmatch(class); m != nil {
		return declare("gap", m[1]), true
	}

	if m := opacityPattern.FindStringSubmatch(class); m != nil {
		n, _ := strconv.Atoi(m[1])
		return declare("opacity", strconv.FormatFloat(float64(n)/100, 'f', -1, 64)), true
	}

	if m := colorPattern.FindStringSubmatch(class); m != nil {
		c, err := ParseColor(arbitrary(m[2]))
		if err != nil {
			return nil, false
		}
		switch m[1] {
		case "text":
			return func(s *Style) error { s.Color = Some(c); return nil }, true
		case "bg":
			return func(s *Style) error { s.Background = Some(c); return nil }, true
		default:
			return func(s *Style) error {
				s.Border = Some(s.Border.OrElse(NoBorder).WithColor(c))
				return nil
			}, true
		}
	}

	return nil, false
}

// arbitrary unwraps a bracketed value such as "[#ff00ff]".
func arbitrary(v string) string {
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		return v[1 : len(v)-1]
	}
	return v
}

// IsClass reports whether class is a recognized utility class.
func IsClass(class string) bool {
	_, ok := lookupClass(strings.TrimSpace(class))
	return ok
}

// ApplyClasses applies a whitespace separated list of utility classes to
// style, left to right, so later classes override earlier ones and side
// classes refine a shorthand ("p-2 pt-0"). Unknown classes are skipped and
// reported together in the returned error.
//
//	var s tcss.Style
//	err := tcss.ApplyClasses(&s, "flex-col gap-1 p-1 border-rounded text-cyan bold")
func ApplyClasses(style *Style, classes string) error {
	var errs []error
	for _, class := range strings.Fields(classes) {
		rule, ok := lookupClass(class)
		if !ok {
			errs = append(errs, &ClassError{Class: class, Suggestion: suggestClass(class), Err: ErrUnknownClass})
			continue
		}
		if err := rule(style); err != nil {
			errs = append(errs, &ClassError{Class: class, Err: err})
		}
	}
	return errors.Join(errs...)
}

// ParseClasses builds a Style from a list of utility classes.
func ParseClasses(classes string) (Style, error) {
	var s Style
	err := ApplyClasses(&s, classes)
	return s, err
}

// similarClasses maps common typos and CSS-isms to class names.
var similarClasses = map[string]string{
	"flex-column":  "flex-col",
	"flex-columns": "flex-col",
	"flex-rows":    "flex-row",
	"column":       "flex-col",
	"row":          "flex-row",
	"gap":          "gap-1",
	"padding":      "p-1",
	"margin":       "m-1",
	"width":        "w-1",
	"height":       "h-1",
	"center":       "text-center",
	"left":         "text-left",
	"right":        "text-right",
	"no-grow":      "grow-0",
	"no-shrink":    "shrink-0",
	"rounded":      "border-rounded",
	"faint":        "dim",
	"strike":       "strikethrough",
}

func suggestClass(class string) string {
	if s, ok := similarClasses[class]; ok {
		return s
	}

	best, bestDist := "", 3
	for name := range utilityClasses {
		d := levenshteinDistance(class, name)
		if d < bestDist || (d == bestDist && best != "" && name < best) {
			best, bestDist = name, d
		}
	}
	return best
}

// levenshteinDistance calculates the edit distance between two strings.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
