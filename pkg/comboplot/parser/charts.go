package parser

import (
	"archive/zip"
	"encoding/xml"
	"sort"
	"strings"

	"github.com/ukaji3/comboplot-go/pkg/comboplot/models"
	"github.com/xuri/excelize/v2"
)

// ChartKindMap maps OOXML chart group tags to the chart kinds comboplot can
// draw. Other chart types are skipped.
var ChartKindMap = map[string]models.ChartKind{
	"barChart":    models.KindBar,
	"bar3DChart":  models.KindBar,
	"lineChart":   models.KindLine,
	"line3DChart": models.KindLine,
}

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	name      string
	sheet     string
	sheetPos  int
	chartPath string
	width     int
	height    int
}

// chartGroup is one chart type element inside a plot area.
type chartGroup struct {
	kind   models.ChartKind
	axIDs  []string
	series []models.TemplateSeries
}

// ExtractChartTemplates returns the bar and line charts of an xlsx file in
// workbook sheet order. Charts without any bar or line series are skipped.
func ExtractChartTemplates(xlsxPath string) ([]models.ChartTemplate, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	infos := getChartInfos(&r.Reader)

	var result []models.ChartTemplate
	for _, ci := range infos {
		chartXML, err := readZipFile(&r.Reader, ci.chartPath)
		if err != nil || chartXML == nil {
			continue
		}
		tpl := parseChartXML(chartXML)
		if tpl == nil {
			continue
		}
		tpl.Name = ci.name
		tpl.Sheet = ci.sheet
		tpl.W, tpl.H = ci.width, ci.height
		result = append(result, *tpl)
	}

	return result, nil
}

// ResolveTemplateNames fills in series names that the chart part only
// references by cell (no cached value), reading them from f.
func ResolveTemplateNames(f *excelize.File, templates []models.ChartTemplate) {
	for i := range templates {
		for j := range templates[i].Series {
			s := &templates[i].Series[j]
			if s.Name != "" || s.NameRange == "" {
				continue
			}
			sheet, cell := splitSheetRef(s.NameRange)
			if sheet == "" {
				sheet = templates[i].Sheet
			}
			cell = strings.ReplaceAll(cell, "$", "")
			if idx := strings.Index(cell, ":"); idx >= 0 {
				cell = cell[:idx]
			}
			if v, err := f.GetCellValue(sheet, cell); err == nil {
				s.Name = strings.TrimSpace(v)
			}
		}
	}
}

// getChartInfos walks workbook -> sheet -> drawing -> chart relationships.
func getChartInfos(r *zip.Reader) []chartInfo {
	var result []chartInfo

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheets := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}
	sheetFiles := parseWorkbookRels(wbRelsXML, sheets)

	for pos, s := range sheets {
		sheetPath, ok := sheetFiles[s.name]
		if !ok {
			continue
		}
		sheetRelsXML, err := readZipFile(r, relsPathFor(sheetPath))
		if err != nil || sheetRelsXML == nil {
			continue
		}
		drawingPath := findDrawingRelationship(sheetRelsXML)
		if drawingPath == "" {
			continue
		}

		infos := getChartInfosFromDrawing(r, resolveRelativePath(drawingPath, "xl/drawings"))
		for i := range infos {
			infos[i].sheet = s.name
			infos[i].sheetPos = pos
		}
		result = append(result, infos...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].sheetPos != result[j].sheetPos {
			return result[i].sheetPos < result[j].sheetPos
		}
		return result[i].name < result[j].name
	})
	return result
}

// getChartInfosFromDrawing extracts chart info from a drawing XML file.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	var result []chartInfo

	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return result
	}

	chartPositions := parseDrawingForCharts(drawingXML)
	if len(chartPositions) == 0 {
		return result
	}

	relsXML, err := readZipFile(r, relsPathFor(drawingPath))
	if err != nil || relsXML == nil {
		return result
	}
	chartPaths := parseRelationships(relsXML, "/chart")

	for rID, pos := range chartPositions {
		if chartPath, ok := chartPaths[rID]; ok {
			pos.chartPath = resolveRelativePath(chartPath, "xl/charts")
			result = append(result, pos)
		}
	}

	return result
}

// parseDrawingForCharts maps chart relationship ids to their anchors.
func parseDrawingForCharts(data []byte) map[string]chartInfo {
	result := make(map[string]chartInfo)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok {
			switch se.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				if rID, info := parseAnchor(decoder); rID != "" {
					result[rID] = info
				}
			}
		}
	}

	return result
}

// parseAnchor parses a drawing anchor, looking for a graphicFrame holding a
// chart. The anchor extent wins over the frame transform when both are set.
func parseAnchor(decoder *xml.Decoder) (string, chartInfo) {
	var rID string
	var info chartInfo
	var anchorW, anchorH int
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ext":
				if depth == 2 {
					anchorW, anchorH = parseExtent(t)
				}
			case "graphicFrame":
				rID, info = parseGraphicFrameContent(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	if anchorW > 0 && anchorH > 0 {
		info.width, info.height = anchorW, anchorH
	}
	return rID, info
}

// parseGraphicFrameContent parses graphicFrame content.
func parseGraphicFrameContent(decoder *xml.Decoder) (string, chartInfo) {
	var rID string
	var info chartInfo
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "cNvPr":
				info.name = attrValue(t, "name")
			case "xfrm":
				info.width, info.height = parseXfrm(decoder)
				depth--
			case "chart":
				rID = attrValue(t, "id")
			}
		case xml.EndElement:
			depth--
		}
	}

	return rID, info
}

// parseChartXML parses a chart part into a template without placement data.
// It returns nil when the chart has no bar or line series.
func parseChartXML(data []byte) *models.ChartTemplate {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var title string
	var groups []chartGroup
	var valAxes []string

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "chart" {
			title, groups, valAxes = parseChartElement(decoder)
		}
	}

	// The first value axis in the plot area is the primary one.
	primary := ""
	if len(valAxes) > 0 {
		primary = valAxes[0]
	}

	tpl := &models.ChartTemplate{Title: title}
	for _, g := range groups {
		axis := models.AxisPrimary
		if primary != "" && !containsString(g.axIDs, primary) {
			axis = models.AxisSecondary
		}
		for _, s := range g.series {
			s.Kind = g.kind
			s.Axis = axis
			tpl.Series = append(tpl.Series, s)
		}
	}

	if len(tpl.Series) == 0 {
		return nil
	}
	return tpl
}

// parseChartElement parses c:chart element.
func parseChartElement(decoder *xml.Decoder) (title string, groups []chartGroup, valAxes []string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "title":
				title = parseChartTitle(decoder)
				depth--
			case "plotArea":
				groups, valAxes = parsePlotArea(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartTitle parses chart title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return strings.TrimSpace(strings.Join(parts, ""))
}

// parsePlotArea collects bar/line groups and the ids of value axes in
// document order.
func parsePlotArea(decoder *xml.Decoder) (groups []chartGroup, valAxes []string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if kind, ok := ChartKindMap[t.Name.Local]; ok {
				g := parseChartGroup(decoder)
				g.kind = kind
				groups = append(groups, g)
				depth--
			} else if t.Name.Local == "valAx" {
				if id := parseAxisID(decoder); id != "" {
					valAxes = append(valAxes, id)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseChartGroup parses the series and axis ids of a chart type element.
func parseChartGroup(decoder *xml.Decoder) chartGroup {
	var g chartGroup
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "ser":
				g.series = append(g.series, parseSingleSeries(decoder))
				depth--
			case "axId":
				if depth == 2 {
					g.axIDs = append(g.axIDs, attrValue(t, "val"))
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	return g
}

// parseAxisID returns the axId of an axis element.
func parseAxisID(decoder *xml.Decoder) string {
	var id string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "axId" && depth == 2 {
				id = attrValue(t, "val")
			}
		case xml.EndElement:
			depth--
		}
	}

	return id
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.TemplateSeries {
	var s models.TemplateSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseSeriesName(decoder)
				depth--
			case "cat":
				s.XRange = parseSeriesRange(decoder)
				depth--
			case "val":
				s.YRange = parseSeriesRange(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return s
}

// parseSeriesName parses series name from tx element.
func parseSeriesName(decoder *xml.Decoder) (name, nameRange string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil {
					nameRange = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil && name == "" {
					name = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

// parseSeriesRange parses the range reference of a cat or val element,
// consuming the whole element.
func parseSeriesRange(decoder *xml.Decoder) string {
	var ref string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "f" && ref == "" {
				if txt, err := readElementText(decoder); err == nil {
					ref = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return ref
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
