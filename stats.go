package modinfogen

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/refaktor/modinfogen/modinfo"
	"github.com/refaktor/modinfogen/textutils"
)

type statsRow struct {
	name                string
	arch                string
	nObjs, nDeps, nOpts int
}

func newStatsRow(rec *modinfo.Record) statsRow {
	return statsRow{
		name:  rec.Name,
		arch:  textutils.TrimRef(rec.Arch),
		nObjs: len(rec.Objects),
		nDeps: len(rec.Deps),
		nOpts: len(rec.Opts),
	}
}

func writeStats(w io.Writer, rows []statsRow) {
	var total statsRow
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Module", "Arch", "Objs", "Deps", "Opts"})
	for _, r := range rows {
		tbl.Append([]string{
			r.name, r.arch,
			strconv.Itoa(r.nObjs), strconv.Itoa(r.nDeps), strconv.Itoa(r.nOpts),
		})
		total.nObjs += r.nObjs
		total.nDeps += r.nDeps
		total.nOpts += r.nOpts
	}
	tbl.Append([]string{
		"==TOTAL==", strconv.Itoa(len(rows)) + " modules",
		strconv.Itoa(total.nObjs), strconv.Itoa(total.nDeps), strconv.Itoa(total.nOpts),
	})
	tbl.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})
	tbl.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	tbl.SetCenterSeparator("|")
	tbl.Render()
}
