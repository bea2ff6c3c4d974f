// Package tui renders the shopping list in the terminal. It never
// mutates items locally: every key dispatches an intent to the client
// store and the screen re-renders from the state snapshots the store
// emits, so what you see is always what the server confirmed.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shoplist/client"
	"shoplist/models"
)

// listItem adapts models.Item to bubbles/list.Item.
type listItem struct {
	item models.Item
}

func (i listItem) Title() string {
	box := boxUnchecked
	if i.item.Completed {
		box = boxChecked
	}
	return fmt.Sprintf("%s %d× %s", box, i.item.Quantity, i.item.Name)
}
func (i listItem) Description() string { return i.item.Description }
func (i listItem) FilterValue() string { return i.item.Name }

// itemDelegate renders one item per line, tada-style.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := mutedStyle.Render(boxUnchecked)
	qty := accentStyle.Render(fmt.Sprintf("%d×", it.item.Quantity))
	text := it.item.Name
	if it.item.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", box, qty, text)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

// stateMsg carries a store snapshot into the bubbletea loop.
type stateMsg client.State

// Model is the bubbletea model for the shopping-list screen.
type Model struct {
	store *client.Store
	list  list.Model
	state client.State

	// Inline add / rename share one text input.
	adding  bool
	editing bool
	editID  string
	ti      textinput.Model

	width  int
	height int
}

// New builds the initial model around a running client store.
func New(store *client.Store) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Shopping List")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("item", "items")
	l.FilterInput.Prompt = "/ "

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename"))
	qtyBind := key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "quantity"))
	refreshBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, qtyBind, refreshBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 255

	return Model{store: store, list: l, ti: ti, width: 80, height: 24}
}

// waitForState blocks on the next store snapshot.
func waitForState(store *client.Store) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-store.Updates()
		if !ok {
			return nil
		}
		return stateMsg(state)
	}
}

func (m Model) Init() tea.Cmd {
	return waitForState(m.store)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case stateMsg:
		m.state = client.State(msg)
		items := make([]list.Item, 0, len(m.state.Items))
		for _, it := range m.state.Items {
			items = append(items, listItem{item: it})
		}
		m.list.SetItems(items)
		if idx := m.list.Index(); idx >= len(items) && len(items) > 0 {
			m.list.Select(len(items) - 1)
		}
		return m, waitForState(m.store)
	}

	if m.adding || m.editing {
		return m.updateInput(msg)
	}
	return m.updateList(msg)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			name := strings.TrimSpace(m.ti.Value())
			if name == "" {
				return m.closeInput(), nil
			}
			if m.adding {
				m.store.Create(models.CreateItemRequest{Name: name, Quantity: 1})
			} else {
				m.store.Update(m.editID, models.ItemPatch{Name: &name})
			}
			return m.closeInput(), nil
		case "esc":
			return m.closeInput(), nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) closeInput() Model {
	m.adding = false
	m.editing = false
	m.editID = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
	return m
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "enter":
			if it, ok := m.selected(); ok {
				m.store.Toggle(it.ID)
			}
			return m, nil

		case "d", "x":
			if it, ok := m.selected(); ok {
				m.store.Delete(it.ID)
			}
			return m, nil

		case "+":
			if it, ok := m.selected(); ok {
				qty := it.Quantity + 1
				m.store.Update(it.ID, models.ItemPatch{Quantity: &qty})
			}
			return m, nil

		case "-":
			if it, ok := m.selected(); ok && it.Quantity > 1 {
				qty := it.Quantity - 1
				m.store.Update(it.ID, models.ItemPatch{Quantity: &qty})
			}
			return m, nil

		case "a":
			m.adding = true
			m.ti.Placeholder = "New item..."
			m.ti.Focus()
			m.resize()
			return m, textinput.Blink

		case "e":
			if it, ok := m.selected(); ok {
				m.editing = true
				m.editID = it.ID
				m.ti.Placeholder = "Rename item..."
				m.ti.SetValue(it.Name)
				m.ti.CursorEnd()
				m.ti.Focus()
				m.resize()
				return m, textinput.Blink
			}
			return m, nil

		case "r":
			m.store.Fetch()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) selected() (models.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return models.Item{}, false
	}
	return it.item, true
}

func (m *Model) resize() {
	listHeight := m.height - 2
	if m.adding || m.editing {
		listHeight = m.height - 5
	}
	if listHeight < 1 {
		listHeight = 1
	}
	m.list.SetSize(m.width, listHeight)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.list.View())

	switch {
	case m.state.Loading:
		b.WriteString("\n" + pendingStyle.Render("• syncing..."))
	case m.state.Err != "":
		b.WriteString("\n" + errorStyle.Render("✖ "+m.state.Err))
	default:
		b.WriteString("\n" + helpStyle.Render("✔ in sync"))
	}

	if m.adding || m.editing {
		title := "Add item"
		if m.editing {
			title = "Rename item"
		}
		b.WriteString("\n" + inputBarStyle.Render(title+"\n"+m.ti.View()))
	}
	return b.String()
}

// Run starts the interactive list and blocks until the user quits.
func Run(store *client.Store) error {
	store.Fetch()
	p := tea.NewProgram(New(store), tea.WithAltScreen())
	_, err := p.Run()
	store.Close()
	return err
}
