package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/1broseidon/wintitle/internal/windir"
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// windowItem implements list.Item for one window record.
type windowItem struct {
	window  windir.Window
	focused bool
}

func (i windowItem) Title() string {
	if i.focused {
		return activeStyle.Render("* ") + i.window.Title
	}
	return "  " + i.window.Title
}

func (i windowItem) Description() string {
	b := i.window.Bounds
	return fmt.Sprintf("  %dx%d at (%d,%d)  handle %#x", b.Width(), b.Height(), b.Left, b.Top, uint64(i.window.ID))
}

func (i windowItem) FilterValue() string { return i.window.Title }

func buildWindowItems(windows []windir.Window, focusedTitle string) []list.Item {
	items := make([]list.Item, 0, len(windows))
	for _, w := range windows {
		items = append(items, windowItem{
			window:  w,
			focused: focusedTitle != "" && w.Title == focusedTitle,
		})
	}
	return items
}

// pickerModel is the bubbletea model behind Pick.
type pickerModel struct {
	list      list.Model
	choice    *windir.Window
	cancelled bool
}

func newPickerModel(windows []windir.Window, focusedTitle string) pickerModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	l := list.New(buildWindowItems(windows, focusedTitle), delegate, 0, 0)
	l.Title = "Windows"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	return pickerModel{list: l}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Reserve one line for the footer.
		height := msg.Height - 1
		if height < 1 {
			height = 1
		}
		m.list.SetSize(msg.Width, height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancelled = true
			return m, tea.Quit
		}
		// While the filter prompt is open, keys belong to the list.
		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "enter":
				if item, ok := m.list.SelectedItem().(windowItem); ok {
					w := item.window
					m.choice = &w
					return m, tea.Quit
				}
				return m, nil
			case "esc", "q":
				if m.list.FilterState() == list.FilterApplied {
					break
				}
				m.cancelled = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m pickerModel) View() string {
	return m.list.View() + "\n" + footerStyle.Render("enter focus • / filter • esc cancel")
}

// Pick shows the current windows in an interactive list and returns the one
// the user selects, or ErrCancelled.
func Pick(dir *windir.Directory) (windir.Window, error) {
	if err := requireTerminal(); err != nil {
		return windir.Window{}, err
	}

	windows, err := dir.Windows()
	if err != nil {
		return windir.Window{}, err
	}
	if len(windows) == 0 {
		return windir.Window{}, errors.Wrap(windir.ErrNotFound, "no visible windows to pick from")
	}

	// No foreground window only means nothing is highlighted.
	focused, _ := dir.FocusedTitle()

	final, err := tea.NewProgram(newPickerModel(windows, focused), tea.WithAltScreen()).Run()
	if err != nil {
		return windir.Window{}, errors.Wrap(err, "window picker failed")
	}

	m, ok := final.(pickerModel)
	if !ok || m.choice == nil {
		return windir.Window{}, ErrCancelled
	}
	return *m.choice, nil
}
