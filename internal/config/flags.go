package config

import (
	"flag"
	"strings"
)

func ParseFlags(base Config) Config {
	roots := flag.String("roots", strings.Join(base.Roots, ","), "Comma separated search roots")
	external := flag.Bool("external", base.IncludeExternal, "Include mounted external disks")
	terminals := flag.String("terminals", strings.Join(base.Terminals, ","), "Comma separated terminal programs to probe")
	theme := flag.String("theme", base.Theme, "UI theme (dark or light)")
	flag.Parse()

	base.Roots = splitList(*roots)
	base.IncludeExternal = *external
	base.Terminals = splitList(*terminals)
	base.Theme = *theme
	return base
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	cleaned := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return cleaned
}
