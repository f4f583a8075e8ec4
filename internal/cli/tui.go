package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pagesmith/pagesmith/pkg/errors"
	"github.com/pagesmith/pagesmith/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pageEntry is one row in the interactive page picker.
type pageEntry struct {
	Name     string    // file name without extension
	Title    string    // page title, or "—" when absent or undecodable
	Blocks   int       // number of content blocks
	Modified time.Time // file modification time
	Valid    bool      // whether the page decoded cleanly
}

// PageListModel is the bubbletea model for interactive page selection.
type PageListModel struct {
	Pages    []pageEntry
	Cursor   int
	Selected *pageEntry
	Height   int
	Offset   int
}

// NewPageListModel creates a new page list model.
func NewPageListModel(pages []pageEntry) PageListModel {
	return PageListModel{
		Pages:  pages,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m PageListModel) Init() tea.Cmd {
	return nil
}

func (m PageListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Pages)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			page := m.Pages[m.Cursor]
			if !page.Valid {
				return m, nil
			}
			m.Selected = &page
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PageListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Page"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Pages) {
		end = len(m.Pages)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		p := m.Pages[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		blocks := "—"
		if p.Blocks > 0 {
			blocks = fmt.Sprintf("%d", p.Blocks)
		}

		rows = append(rows, []string{cursor, p.Name, p.Title, blocks, formatRelativeTime(p.Modified)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Page", "Title", "Blocks", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Pages) {
				return lipgloss.NewStyle()
			}
			p := m.Pages[actualIdx]

			if actualIdx == m.Cursor {
				if p.Valid {
					return listSelectedStyle
				}
				return lipgloss.NewStyle().Foreground(colorDim).Bold(true)
			}
			if !p.Valid {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Pages))))

	return b.String()
}

// pickPage shows the interactive picker over contentDir and returns the
// chosen page path, or "" if the picker was dismissed.
func pickPage(contentDir string) (string, error) {
	if err := errors.ValidateContentDir(contentDir); err != nil {
		return "", err
	}

	entries, err := loadPageEntries(contentDir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		printInfo("No pages in %s", contentDir)
		return "", nil
	}

	final, err := tea.NewProgram(NewPageListModel(entries)).Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(PageListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return filepath.Join(contentDir, m.Selected.Name+".json"), nil
}

// loadPageEntries reads every page in contentDir to build picker rows.
// Undecodable pages stay listed but cannot be selected.
func loadPageEntries(contentDir string) ([]pageEntry, error) {
	names, err := listPages(contentDir)
	if err != nil {
		return nil, err
	}

	entries := make([]pageEntry, 0, len(names))
	for _, name := range names {
		path := filepath.Join(contentDir, name+".json")
		entry := pageEntry{Name: name, Title: "—"}

		if info, err := os.Stat(path); err == nil {
			entry.Modified = info.ModTime()
		}

		if page, err := pipeline.ImportPage(path); err == nil {
			entry.Valid = true
			entry.Blocks = len(page.Blocks)
			if page.Title != "" {
				entry.Title = page.Title
			}
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "—"
	}

	diff := time.Since(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
