package cli

import (
	"fmt"
	"strconv"

	"github.com/Garko01/prayer-counter/internal/ledger"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
)

// renderHistoryPDF generates a PDF of the daily history snapshot and saves it
// to the given path. The snapshot is newest-first, as produced by the ledger.
func renderHistoryPDF(snap []ledger.Record, streak int, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, "Prayer Counter - Daily History", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	if len(snap) > 0 {
		rangeLabel := fmt.Sprintf("%s to %s", snap[len(snap)-1].Date, snap[0].Date)
		m.AddRow(8,
			text.NewCol(12, rangeLabel, props.Text{
				Size:  12,
				Color: &pdfMutedColor,
			}),
		)
	}
	m.AddRow(8,
		text.NewCol(12, "Streak: "+formatStreak(streak), props.Text{
			Size:  11,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4) // spacer

	// Day rows
	for _, r := range snap {
		dayLabel := fmt.Sprintf("%s, %s", r.Date, weekdayAbbrev(r.Date))
		if r.Total == 0 {
			m.AddRow(6,
				text.NewCol(9, dayLabel, props.Text{Size: 9, Color: &pdfMutedColor}),
				text.NewCol(3, "0", props.Text{
					Size:  9,
					Align: align.Right,
					Color: &pdfMutedColor,
				}),
			)
			continue
		}
		m.AddRow(6,
			text.NewCol(9, dayLabel, props.Text{Size: 9}),
			text.NewCol(3, strconv.Itoa(r.Total), props.Text{
				Style: fontstyle.Bold,
				Size:  9,
				Align: align.Right,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return err
	}
	return doc.Save(outputPath)
}
