// Package graphview renders a plugin graph's edges as styled CLI text:
// a styled edge list grouped by source plugin, minus the viewport, cursor, and
// live-update machinery a one-shot CLI render has no use for.
package graphview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/loot-go/lootsort/internal/sorting"
)

var (
	colorName    = lipgloss.Color("#EEEEEE")
	colorEdge    = lipgloss.Color("#8C8C8C")
	colorHard    = lipgloss.Color("#FF5252")
	colorMaster  = lipgloss.Color("#00BFFF")
	colorGroup   = lipgloss.Color("#FFD700")
	colorOverlap = lipgloss.Color("#00E676")
	colorTie     = lipgloss.Color("#636363")

	styleName = lipgloss.NewStyle().Foreground(colorName).Bold(true)
	styleArr  = lipgloss.NewStyle().Foreground(colorEdge)
)

// edgeColor returns the color a NamedEdge's type is rendered in, so
// the same edge kind always reads the same way regardless of which
// plugin it touches.
func edgeColor(t sorting.EdgeType) lipgloss.Color {
	switch t {
	case sorting.Hardcoded:
		return colorHard
	case sorting.MasterFlag, sorting.Master:
		return colorMaster
	case sorting.Group:
		return colorGroup
	case sorting.Overlap:
		return colorOverlap
	case sorting.TieBreak:
		return colorTie
	default:
		return colorEdge
	}
}

// Render draws every edge in edges as a styled "from -> to [type]"
// line, grouped and ordered by source plugin name for a stable,
// readable listing.
func Render(edges []sorting.NamedEdge) string {
	if len(edges) == 0 {
		return lipgloss.NewStyle().Foreground(colorTie).Render("(no edges)")
	}

	byFrom := make(map[string][]sorting.NamedEdge)
	for _, e := range edges {
		byFrom[e.From] = append(byFrom[e.From], e)
	}
	froms := make([]string, 0, len(byFrom))
	for f := range byFrom {
		froms = append(froms, f)
	}
	sort.Strings(froms)

	var sb strings.Builder
	for _, from := range froms {
		list := byFrom[from]
		sort.Slice(list, func(i, j int) bool {
			if list[i].To != list[j].To {
				return list[i].To < list[j].To
			}
			return list[i].Type < list[j].Type
		})
		sb.WriteString(styleName.Render(from))
		sb.WriteByte('\n')
		for _, e := range list {
			arrow := styleArr.Render("  └─▶ ")
			target := styleName.Render(e.To)
			kind := lipgloss.NewStyle().Foreground(edgeColor(e.Type)).Render(fmt.Sprintf(" [%s]", e.Type))
			sb.WriteString(arrow + target + kind + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// RenderFor draws only the edges touching plugin (as source or
// target), for a focused single-plugin view.
func RenderFor(edges []sorting.NamedEdge, plugin string) string {
	var filtered []sorting.NamedEdge
	for _, e := range edges {
		if e.From == plugin || e.To == plugin {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		return lipgloss.NewStyle().Foreground(colorTie).Render(fmt.Sprintf("(no edges touching %s)", plugin))
	}
	return Render(filtered)
}
