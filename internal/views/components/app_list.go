package components

import (
	"remote-launcher/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var tileSize = fyne.NewSize(140, 90)

// AppGrid lays applications out as tappable tiles.
type AppGrid struct {
	container *fyne.Container
	tiles     []*widget.Button

	tapHandler func(name string)
}

// NewAppGrid creates an empty grid of application tiles
func NewAppGrid() *AppGrid {
	return &AppGrid{
		container: container.NewGridWrap(tileSize),
	}
}

// SetTapHandler sets the callback for a tapped tile
func (g *AppGrid) SetTapHandler(handler func(name string)) {
	g.tapHandler = handler
}

// SetApplications rebuilds the tiles, one per application.
func (g *AppGrid) SetApplications(apps []models.Application) {
	tiles := make([]*widget.Button, 0, len(apps))
	objects := make([]fyne.CanvasObject, 0, len(apps))
	for _, app := range apps {
		name := app.Name
		tile := widget.NewButtonWithIcon(name, IconFor(name), func() {
			if g.tapHandler != nil {
				g.tapHandler(name)
			}
		})
		tile.IconPlacement = widget.ButtonIconLeadingText
		tiles = append(tiles, tile)
		objects = append(objects, tile)
	}
	g.tiles = tiles
	g.container.Objects = objects
	g.container.Refresh()
}

// Tiles returns the tile buttons in list order
func (g *AppGrid) Tiles() []*widget.Button {
	return g.tiles
}

// GetContainer returns the grid container
func (g *AppGrid) GetContainer() *fyne.Container {
	return g.container
}

// AppRow is one application in the settings list.
type AppRow struct {
	Name         string
	Label        *widget.Label
	RemoveButton *widget.Button
}

// AppRemoveList lists applications with a remove button each.
type AppRemoveList struct {
	container *fyne.Container
	rows      []AppRow

	removeHandler func(name string)
}

// NewAppRemoveList creates an empty removable list
func NewAppRemoveList() *AppRemoveList {
	return &AppRemoveList{container: container.NewVBox()}
}

// SetRemoveHandler sets the callback for a row's remove button
func (l *AppRemoveList) SetRemoveHandler(handler func(name string)) {
	l.removeHandler = handler
}

// SetApplications rebuilds the rows, one per application.
func (l *AppRemoveList) SetApplications(apps []models.Application) {
	rows := make([]AppRow, 0, len(apps))
	objects := make([]fyne.CanvasObject, 0, len(apps))
	for _, app := range apps {
		name := app.Name
		row := AppRow{
			Name:  name,
			Label: widget.NewLabel(name),
			RemoveButton: widget.NewButtonWithIcon("Remove", theme.DeleteIcon(), func() {
				if l.removeHandler != nil {
					l.removeHandler(name)
				}
			}),
		}
		rows = append(rows, row)
		objects = append(objects, container.NewHBox(row.Label, layout.NewSpacer(), row.RemoveButton))
	}
	l.rows = rows
	l.container.Objects = objects
	l.container.Refresh()
}

// Rows returns the rows in list order
func (l *AppRemoveList) Rows() []AppRow {
	return l.rows
}

// GetContainer returns the list container
func (l *AppRemoveList) GetContainer() *fyne.Container {
	return l.container
}
