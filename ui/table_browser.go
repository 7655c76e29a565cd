package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dstruct"
)

const (
	BrowserStateList   = "list"
	BrowserStateDetail = "detail"

	previewRows = 10
)

// TableBrowser lists the tables of a database and shows the fields and first
// rows of the selected one.
type TableBrowser struct {
	tables []*dstruct.Table
	cursor int
	state  string
}

func CreateTableBrowser(db *dstruct.Database) TableBrowser {
	return TableBrowser{
		tables: db.Tables.Values(),
		cursor: 0,
		state:  BrowserStateList,
	}
}

func (s TableBrowser) View() string {
	output := "NCAA DB\n\n"
	if len(s.tables) == 0 {
		return output + "The file has no tables.\n\nq: quit\n"
	}
	switch s.state {
	case BrowserStateDetail:
		output += s.viewDetail(s.tables[s.cursor])
		output += "\nesc: back  q: quit\n"
	default:
		for i, table := range s.tables {
			marker := "  "
			if i == s.cursor {
				marker = "> "
			}
			output += fmt.Sprintf(
				"%s%s  %d records, %d fields\n",
				marker, table.Name, table.Header.CurrentRecords, len(table.Fields),
			)
		}
		output += "\nup/down: move  enter: open  q: quit\n"
	}
	return output
}

func (s TableBrowser) viewDetail(table *dstruct.Table) string {
	output := fmt.Sprintf(
		"%s  record length %d bytes, %d of %d records\n\n",
		table.Name, table.Header.LenBytes, table.Header.CurrentRecords, table.Header.MaxRecords,
	)
	fieldLines := lo.Map(
		table.Fields,
		func(field dfield.Field, _ int) string {
			return fmt.Sprintf("  %s  %-6s  offset %d  bits %d", field.Name, field.Type, field.Offset, field.Bits)
		},
	)
	output += strings.Join(fieldLines, "\n") + "\n\n"
	if table.Records == nil {
		return output
	}

	output += "  " + strings.Join(table.Records.Columns, "\t") + "\n"
	rows := table.Records.Rows
	if len(rows) > previewRows {
		rows = rows[:previewRows]
	}
	for _, row := range rows {
		cells := lo.Map(
			row,
			func(value any, _ int) string { return fmt.Sprint(value) },
		)
		output += "  " + strings.Join(cells, "\t") + "\n"
	}
	if len(table.Records.Rows) > previewRows {
		output += fmt.Sprintf("  ... %d more\n", len(table.Records.Rows)-previewRows)
	}
	return output
}

func (s TableBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.state == BrowserStateList && s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.state == BrowserStateList && s.cursor < len(s.tables)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.tables) > 0 {
			s.state = BrowserStateDetail
		}
	case "esc", "backspace":
		s.state = BrowserStateList
	}
	return s, nil
}

func (s TableBrowser) Init() tea.Cmd {
	return nil
}
