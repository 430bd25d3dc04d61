package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/klimvill/RPG-task/internal/catalog"
	"github.com/klimvill/RPG-task/internal/engine"
	"github.com/klimvill/RPG-task/internal/ui"
)

type boardModel struct {
	svc *engine.Service

	width  int
	height int

	selected int

	lastLog string
	err     error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type deletedMsg struct {
	res *engine.PunishResult
	err error
}

func newBoardModel(svc *engine.Service) boardModel {
	return boardModel{svc: svc, lastLog: "Loaded."}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) completeCmd(pos int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTasks([]int{pos})
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) deleteCmd(pos int) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.DeleteTasks([]int{pos})
		return deletedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = summarizeComplete(msg.res)
		return m, nil
	case deletedMsg:
		if msg.err != nil {
			m.lastLog = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		if len(msg.res.Removed) == 0 {
			m.lastLog = "Nothing removed."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Removed %d, paid %.2f gold.", len(msg.res.Removed), msg.res.Gold)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.boardLines())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.done {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %d…", line.num)
			return m, m.completeCmd(line.num)
		case "d":
			lines := m.boardLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.kind == lineGoal {
				m.lastLog = "Quest goals cannot be abandoned one by one."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Removing %d…", line.num)
			return m, m.deleteCmd(line.num)
		}
	}
	return m, nil
}

type lineKind int

const (
	lineUser lineKind = iota
	lineDaily
	lineGoal
)

type boardLine struct {
	num    int
	kind   lineKind
	text   string
	skills string
	done   bool
	boss   bool
	hp     string
}

// boardLines flattens the three ledgers into the combined numbering the
// engine resolves selections against.
func (m *boardModel) boardLines() []boardLine {
	var out []boardLine
	num := 0

	for _, t := range m.svc.Tasks().All() {
		num++
		out = append(out, boardLine{
			num:    num,
			kind:   lineUser,
			text:   t.Text,
			skills: skillTags(t.Skills),
		})
	}
	for _, t := range m.svc.Daily().Tasks {
		num++
		out = append(out, boardLine{
			num:    num,
			kind:   lineDaily,
			text:   t.Text,
			skills: skillTags(t.Skills),
			done:   t.Done || m.svc.Daily().Done,
		})
	}
	if active := m.svc.Quests().Active(); active != nil && !active.Done {
		for _, g := range active.Goals {
			num++
			l := boardLine{
				num:  num,
				kind: lineGoal,
				text: g.Def.Text,
				done: g.Completed,
				boss: g.Def.Kind == catalog.GoalBoss,
			}
			if l.boss {
				l.hp = fmt.Sprintf("%d/%d", g.Def.HP-g.Damage, g.Def.HP)
			}
			out = append(out, l)
		}
	}

	if m.selected >= len(out) {
		m.selected = len(out) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	p := m.svc.Player()
	name := p.Name
	if name == "" {
		name = "adventurer"
	}
	bar := progressBar(float64(p.Experience), float64(p.Rank.Experience()), 30)
	return fmt.Sprintf("RPG-task | %s | Rank %s %s | Gold %.2f", name, p.Rank, bar, p.Gold.Balance)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Skills"}
	for _, s := range m.svc.Player().Skills() {
		exp, _ := m.svc.Balance().PriceForLevel(s.Level)
		lines = append(lines, fmt.Sprintf("- %s L%d %s", s.Type.Title(), s.Level, progressBar(s.Exp, exp, 10)))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: complete")
	lines = append(lines, "- d: delete")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	var out []string

	lines := m.boardLines()
	if len(lines) == 0 {
		out = append(out, ui.PanelTitle.Render("Tasks"))
		out = append(out, "(empty)")
		return strings.Join(out, "\n")
	}

	section := lineKind(-1)
	for i, l := range lines {
		if l.kind != section {
			section = l.kind
			if len(out) > 0 {
				out = append(out, "")
			}
			switch section {
			case lineUser:
				out = append(out, ui.PanelTitle.Render("Tasks"))
			case lineDaily:
				out = append(out, ui.PanelTitle.Render(fmt.Sprintf("Daily (%s)", m.svc.Daily().Date)))
			case lineGoal:
				active := m.svc.Quests().Active()
				out = append(out, ui.PanelTitle.Render(fmt.Sprintf("Quest: %s — %s", active.Quest.Name, active.Stage().Name)))
			}
		}

		mark := "[ ]"
		if l.done {
			mark = "[x]"
		}
		text := l.text
		if l.kind == lineGoal {
			text = ui.GoalIcon(l.boss) + " " + text
		}
		suffix := ""
		if l.skills != "" {
			suffix = " " + l.skills
		}
		if l.boss {
			suffix += " (boss " + l.hp + ")"
		}
		row := fmt.Sprintf("%2d %s %s%s", l.num, mark, text, suffix)
		if i == m.selected {
			out = append(out, "> "+ui.SelectedRow.Render(row))
		} else {
			out = append(out, "  "+row)
		}
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + ui.Panel.Render(m.lastLog)
}

func summarizeComplete(res *engine.CompleteResult) string {
	if len(res.Completed) == 0 && res.Gold == 0 && !res.QuestDone {
		return fmt.Sprintf("Nothing to complete at %s.", time.Now().Format("15:04:05"))
	}
	parts := []string{fmt.Sprintf("+%.2f gold", res.Gold+res.DailyBonus+res.QuestGold+res.OverflowGold)}
	if len(res.Items) > 0 || len(res.QuestItems) > 0 {
		parts = append(parts, fmt.Sprintf("%d item(s)", len(res.Items)+len(res.QuestItems)))
	}
	if res.QuestDone {
		parts = append(parts, fmt.Sprintf("quest %q done", res.QuestName))
	}
	if res.RankUp {
		parts = append(parts, "rank up to "+res.Rank.String())
	}
	return "Completed: " + strings.Join(parts, ", ")
}

func skillTags(skills []engine.SkillType) string {
	if len(skills) == 0 {
		return ""
	}
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Title())
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func progressBar(value, total float64, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(value / total * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
