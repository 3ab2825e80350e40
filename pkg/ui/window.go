// Package ui is the desktop front end: pick a CSV, preview it, run the
// analysis, and view the resulting charts.
package ui

import (
	"bytes"
	"fmt"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"genepca/pkg/analyze"
	"genepca/pkg/dataset"
	"genepca/pkg/viz"
)

// previewRows is how many data rows the preview table shows.
const previewRows = 10

// MainWindow owns the application window and the currently loaded dataset.
// The dataset is replaced wholesale on every load; analysis results are
// rendered and discarded, never stored.
type MainWindow struct {
	app fyne.App
	win fyne.Window

	ds          *dataset.Dataset
	standardize bool

	fileLabel   *widget.Label
	table       *widget.Table
	preview     [][]string
	scatterImg  *canvas.Image
	varianceImg *canvas.Image
	tabs        *container.AppTabs
}

// NewMainWindow builds the window and its widgets.
func NewMainWindow() *MainWindow {
	m := &MainWindow{app: app.New()}
	m.win = m.app.NewWindow("PCA Visualization of Gene Expression Data")

	m.fileLabel = widget.NewLabel("No file loaded")

	m.table = widget.NewTable(
		func() (int, int) {
			if len(m.preview) == 0 {
				return 0, 0
			}
			return len(m.preview), len(m.preview[0])
		},
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.TableCellID, o fyne.CanvasObject) {
			lbl := o.(*widget.Label)
			lbl.TextStyle.Bold = id.Row == 0
			lbl.SetText(m.preview[id.Row][id.Col])
		},
	)

	m.scatterImg = blankImage()
	m.varianceImg = blankImage()

	openBtn := widget.NewButton("Choose a CSV file…", m.openFile)
	runBtn := widget.NewButton("Perform PCA", m.runAnalysis)
	standardizeChk := widget.NewCheck("Standardize features", func(v bool) { m.standardize = v })

	top := container.NewHBox(
		openBtn,
		runBtn,
		standardizeChk,
		widget.NewLabel("File:"), m.fileLabel,
	)

	m.tabs = container.NewAppTabs(
		container.NewTabItem("Data Preview", m.table),
		container.NewTabItem("PCA Plot", container.NewVScroll(m.scatterImg)),
		container.NewTabItem("Variance", container.NewVScroll(m.varianceImg)),
	)
	m.tabs.SetTabLocation(container.TabLocationTop)

	m.win.SetContent(container.NewBorder(top, nil, nil, nil, m.tabs))
	m.win.Resize(fyne.NewSize(960, 700))
	return m
}

// Run shows the window and blocks until it is closed.
func (m *MainWindow) Run() { m.win.ShowAndRun() }

func blankImage() *canvas.Image {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(720, 576))
	return img
}

func (m *MainWindow) openFile() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, m.win)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()

		ds, err := dataset.Load(rc)
		if err != nil {
			dialog.ShowError(err, m.win)
			return
		}
		m.ds = ds
		m.preview = ds.Preview(previewRows)
		m.sizeTableColumns()
		m.table.Refresh()
		m.fileLabel.SetText(fmt.Sprintf("%s (%d rows, %d columns)",
			rc.URI().Name(), ds.NumRows(), ds.NumCols()))
		m.tabs.SelectIndex(0)
	}, m.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv"}))
	d.Show()
}

func (m *MainWindow) sizeTableColumns() {
	if len(m.preview) == 0 {
		return
	}
	for c := range m.preview[0] {
		width := float32(0)
		for _, row := range m.preview {
			if w := float32(len(row[c])) * 9; w > width {
				width = w
			}
		}
		if width < 70 {
			width = 70
		}
		m.table.SetColumnWidth(c, width+16)
	}
}

// runAnalysis computes the projection and swaps in freshly rendered charts.
// Validation failures, including a missing "type" column, surface as error
// dialogs and leave the previous charts untouched.
func (m *MainWindow) runAnalysis() {
	if m.ds == nil {
		dialog.ShowInformation("No data", "Choose a CSV file first.", m.win)
		return
	}
	res, err := analyze.Run(m.ds, analyze.Options{Standardize: m.standardize})
	if err != nil {
		dialog.ShowError(err, m.win)
		return
	}

	scatterPNG, err := viz.Scatter(res, viz.Config{})
	if err != nil {
		dialog.ShowError(err, m.win)
		return
	}
	variancePNG, err := viz.VarianceBars(res, viz.Config{})
	if err != nil {
		dialog.ShowError(err, m.win)
		return
	}

	if err := setImage(m.scatterImg, scatterPNG); err != nil {
		dialog.ShowError(err, m.win)
		return
	}
	if err := setImage(m.varianceImg, variancePNG); err != nil {
		dialog.ShowError(err, m.win)
		return
	}
	m.tabs.SelectIndex(1)
}

func setImage(dst *canvas.Image, data []byte) error {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("ui: decode chart image: %w", err)
	}
	dst.Image = img
	dst.Refresh()
	return nil
}
