package tui

import (
	"fmt"
	"strings"
)

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenResults:
		return m.resultsView()
	default:
		return m.selectionView()
	}
}

func (m Model) selectionView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select GitHub Pull Requests"))
	b.WriteString("\n")

	b.WriteString(m.paneView(PaneOwners, "Repository Owners", m.availableOwners, m.selectedOwners, m.ownerCursor, m.loadingOwners))
	b.WriteString("\n")

	if m.userOnly {
		b.WriteString(toggleOnStyle.Render("  [x] User Only Mode"))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("  [ ] User Only Mode"))
		b.WriteString("\n\n")
		b.WriteString(m.paneView(PaneRepos, "Repository Names", m.availableRepos, m.selectedRepos, m.repoCursor, m.loadingRepos))
	}

	hint := "tab: switch pane · space: toggle · u: user only · enter: load · q: quit"
	if !m.CanSubmit() {
		hint = "pick at least one owner and one repository (or user only mode)\n  " + hint
	}
	b.WriteString(footerStyle.Render("\n  " + hint))
	b.WriteString("\n")

	return b.String()
}

func (m Model) paneView(pane Pane, title string, options []string, selected map[string]bool, cursor int, loading bool) string {
	var b strings.Builder

	style := paneTitleDimStyle
	if m.activePane == pane {
		style = paneTitleStyle
	}
	b.WriteString(style.Render("  " + title))
	b.WriteString("\n")

	if loading {
		b.WriteString("    " + m.spinner.View() + dimStyle.Render("loading..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(options) == 0 {
		b.WriteString(dimStyle.Render("    (none)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, opt := range options {
		marker := "[ ]"
		line := opt
		if selected[opt] {
			marker = "[x]"
			line = selectedStyle.Render(opt)
		}

		prefix := "  "
		if m.activePane == pane && i == cursor {
			prefix = cursorStyle.Render("> ")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s\n", prefix, marker, line))
	}

	return b.String()
}

func (m Model) resultsView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Pull Requests by Owner"))
	b.WriteString("\n")

	switch {
	case m.fetching:
		b.WriteString("  " + m.spinner.View() + dimStyle.Render("loading pull requests..."))
		b.WriteString("\n")

	case m.resultsErr != nil:
		b.WriteString(errorStyle.Render("  Failed to fetch pull requests: " + m.resultsErr.Error()))
		b.WriteString("\n")

	case len(m.prs) == 0:
		b.WriteString(dimStyle.Render("  No matching pull requests found for the given users and repositories"))
		b.WriteString("\n")

	default:
		for _, group := range GroupByAuthor(m.prs) {
			b.WriteString(m.cardView(group))
		}
	}

	b.WriteString(footerStyle.Render("\n  esc: back · q: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) cardView(group AuthorGroup) string {
	var b strings.Builder

	plural := "s"
	if len(group.PRs) == 1 {
		plural = ""
	}
	b.WriteString(authorStyle.Render(group.Login))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d Pull Request%s", len(group.PRs), plural)))
	b.WriteString("\n")

	for _, pr := range group.PRs {
		state := stateOtherStyle.Render(pr.State)
		if strings.EqualFold(pr.State, "open") {
			state = stateOpenStyle.Render(pr.State)
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s\n", pr.Title, state, dimStyle.Render(pr.CreatedAt.Format("2006-01-02"))))
		b.WriteString(dimStyle.Render(pr.HTMLURL))
		b.WriteString("\n")
	}

	width := m.windowWidth - 4
	if width > 76 {
		width = 76
	}
	return cardStyle.Width(width).Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
