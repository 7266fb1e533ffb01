package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// workbookSheet is a <sheet> entry of xl/workbook.xml.
type workbookSheet struct {
	name string
	rID  string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of an OOXML part,
// e.g. xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPathFor(partPath string) string {
	dir, file := "", partPath
	if idx := strings.LastIndex(partPath, "/"); idx >= 0 {
		dir, file = partPath[:idx+1], partPath[idx+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

// parseWorkbookSheets returns the workbook sheets in workbook order.
func parseWorkbookSheets(data []byte) []workbookSheet {
	var result []workbookSheet
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result = append(result, workbookSheet{name: name, rID: rID})
			}
		}
	}

	return result
}

// parseRelationships returns rId -> target for relationships whose type
// ends with typeSuffix (e.g. "/drawing", which excludes "/vmlDrawing").
func parseRelationships(data []byte, typeSuffix string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.HasSuffix(attrValue(se, "Type"), typeSuffix) {
				result[attrValue(se, "Id")] = attrValue(se, "Target")
			}
		}
	}

	return result
}

// parseWorkbookRels maps each sheet to its worksheet part path.
func parseWorkbookRels(data []byte, sheets []workbookSheet) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	targets := parseRelationships(data, "/worksheet")

	for _, s := range sheets {
		if target, ok := targets[s.rID]; ok {
			result[s.name] = resolveRelativePath(target, "xl")
		}
	}

	return result
}

func findDrawingRelationship(data []byte) string {
	for _, target := range parseRelationships(data, "/drawing") {
		return target
	}
	return ""
}

// parseExtent reads the cx/cy attributes of an ext element as pixels.
func parseExtent(se xml.StartElement) (width, height int) {
	if cx, err := strconv.ParseInt(attrValue(se, "cx"), 10, 64); err == nil {
		width = EMUToPixels(cx)
	}
	if cy, err := strconv.ParseInt(attrValue(se, "cy"), 10, 64); err == nil {
		height = EMUToPixels(cy)
	}
	return
}

// parseXfrm parses an xfrm element for its size in pixels.
func parseXfrm(decoder *xml.Decoder) (width, height int) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ext" {
				width, height = parseExtent(t)
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}
