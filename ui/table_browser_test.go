package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncaa-savior/ndb/dfield"
	"ncaa-savior/ndb/dstruct"
	"ncaa-savior/internal/ndbtest"
)

func createBrowser(t *testing.T) TableBrowser {
	bs := ndbtest.File{
		Tables: []ndbtest.Table{
			{
				Name:    "TEAM",
				Fields:  []dfield.Field{{Type: dfield.FieldTypeUInt, Name: "TGID", Bits: 8}},
				Records: [][]byte{{1}, {2}},
			},
			{
				Name:    "PLAY",
				Fields:  []dfield.Field{{Type: dfield.FieldTypeString, Name: "PFNA", Bits: 16}},
				Records: [][]byte{{'J', 'O'}},
			},
		},
	}.Build()
	db, err := dstruct.ToStructuredDB(bs, dstruct.DefaultOptions())
	require.NoError(t, err)
	return CreateTableBrowser(db)
}

func press(browser TableBrowser, keyType tea.KeyType) TableBrowser {
	model, _ := browser.Update(tea.KeyMsg{Type: keyType})
	return model.(TableBrowser)
}

func TestTableBrowser_Navigation(t *testing.T) {
	browser := createBrowser(t)
	assert.Contains(t, browser.View(), "> TEAM  2 records, 1 fields")

	browser = press(browser, tea.KeyDown)
	browser = press(browser, tea.KeyDown)
	assert.Contains(t, browser.View(), "> PLAY")

	browser = press(browser, tea.KeyEnter)
	assert.Equal(t, BrowserStateDetail, browser.state)
	view := browser.View()
	assert.Contains(t, view, "PFNA  STRING")
	assert.Contains(t, view, "JO")

	browser = press(browser, tea.KeyEsc)
	assert.Equal(t, BrowserStateList, browser.state)

	browser = press(browser, tea.KeyUp)
	assert.Equal(t, 0, browser.cursor)
}

func TestTableBrowser_Quit(t *testing.T) {
	browser := createBrowser(t)
	_, cmd := browser.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
