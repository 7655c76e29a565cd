package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"ncaa-savior/ndb/dstruct"
)

func Start(db *dstruct.Database) error {
	browser := CreateTableBrowser(db)
	if err := tea.NewProgram(browser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
