// Package importer provides CSV, Excel, and DXF import functionality for
// divider line sets. It supports automatic delimiter detection, flexible
// column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/DSongManage/PanelCut/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Lines    []model.DividerLine
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Type      int
	StartX    int
	StartY    int
	EndX      int
	EndY      int
	Control1X int
	Control1Y int
	Control2X int
	Control2Y int
	Thickness int
	Color     int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"type":      {"type", "line type", "linetype", "kind", "shape"},
	"startx":    {"start_x", "startx", "start x", "x1", "from_x", "sx"},
	"starty":    {"start_y", "starty", "start y", "y1", "from_y", "sy"},
	"endx":      {"end_x", "endx", "end x", "x2", "to_x", "ex"},
	"endy":      {"end_y", "endy", "end y", "y2", "to_y", "ey"},
	"control1x": {"control1_x", "control1x", "c1x", "ctrl1_x", "cx1"},
	"control1y": {"control1_y", "control1y", "c1y", "ctrl1_y", "cy1"},
	"control2x": {"control2_x", "control2x", "c2x", "ctrl2_x", "cx2"},
	"control2y": {"control2_y", "control2y", "c2y", "ctrl2_y", "cy2"},
	"thickness": {"thickness", "stroke", "stroke width", "stroke_width", "pen"},
	"color":     {"color", "colour", "stroke color", "stroke_color"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Type:      -1,
		StartX:    -1,
		StartY:    -1,
		EndX:      -1,
		EndY:      -1,
		Control1X: -1,
		Control1Y: -1,
		Control2X: -1,
		Control2Y: -1,
		Thickness: -1,
		Color:     -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "type":
						if mapping.Type == -1 {
							mapping.Type = i
						}
					case "startx":
						if mapping.StartX == -1 {
							mapping.StartX = i
						}
					case "starty":
						if mapping.StartY == -1 {
							mapping.StartY = i
						}
					case "endx":
						if mapping.EndX == -1 {
							mapping.EndX = i
						}
					case "endy":
						if mapping.EndY == -1 {
							mapping.EndY = i
						}
					case "control1x":
						if mapping.Control1X == -1 {
							mapping.Control1X = i
						}
					case "control1y":
						if mapping.Control1Y == -1 {
							mapping.Control1Y = i
						}
					case "control2x":
						if mapping.Control2X == -1 {
							mapping.Control2X = i
						}
					case "control2y":
						if mapping.Control2Y == -1 {
							mapping.Control2Y = i
						}
					case "thickness":
						if mapping.Thickness == -1 {
							mapping.Thickness = i
						}
					case "color":
						if mapping.Color == -1 {
							mapping.Color = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: StartX, StartY, EndX, EndY, Type,
		// Control1X, Control1Y, Control2X, Control2Y, Thickness, Color
		return ColumnMapping{
			StartX:    0,
			StartY:    1,
			EndX:      2,
			EndY:      3,
			Type:      4,
			Control1X: 5,
			Control1Y: 6,
			Control2X: 7,
			Control2Y: 8,
			Thickness: 9,
			Color:     10,
		}, false
	}

	return mapping, true
}

// parseLineType converts a line type string to a model.LineType value.
// It returns the type and a boolean indicating whether the string was recognized.
// Empty strings default to straight.
func parseLineType(s string) (model.LineType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "straight", "line", "s", "l":
		return model.LineStraight, true
	case "bezier", "curve", "curved", "b", "c":
		return model.LineBezier, true
	default:
		return model.LineStraight, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCoord parses a coordinate cell, accepting both dot and comma decimals.
func parseCoord(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// parseRow extracts a DividerLine from a row using the given column mapping.
// Returns the line, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string) (model.DividerLine, string, string) {
	coord := func(idx int, name string) (float64, string) {
		s := getCell(row, idx)
		if s == "" {
			return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
		}
		v, err := parseCoord(s)
		if err != nil {
			return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
		}
		return v, ""
	}

	sx, errMsg := coord(mapping.StartX, "start X")
	if errMsg != "" {
		return model.DividerLine{}, errMsg, ""
	}
	sy, errMsg := coord(mapping.StartY, "start Y")
	if errMsg != "" {
		return model.DividerLine{}, errMsg, ""
	}
	ex, errMsg := coord(mapping.EndX, "end X")
	if errMsg != "" {
		return model.DividerLine{}, errMsg, ""
	}
	ey, errMsg := coord(mapping.EndY, "end Y")
	if errMsg != "" {
		return model.DividerLine{}, errMsg, ""
	}

	if sx == ex && sy == ey {
		return model.DividerLine{}, fmt.Sprintf("%s: Start and end points must differ", rowLabel), ""
	}

	var warnings []string

	lineType, ok := parseLineType(getCell(row, mapping.Type))
	if !ok {
		warnings = append(warnings, fmt.Sprintf("%s: Unknown line type '%s', treating as straight", rowLabel, getCell(row, mapping.Type)))
	}

	var line model.DividerLine
	if lineType == model.LineBezier {
		c1x, errMsg := coord(mapping.Control1X, "control 1 X")
		if errMsg != "" {
			return model.DividerLine{}, errMsg, ""
		}
		c1y, errMsg := coord(mapping.Control1Y, "control 1 Y")
		if errMsg != "" {
			return model.DividerLine{}, errMsg, ""
		}
		c2x, errMsg := coord(mapping.Control2X, "control 2 X")
		if errMsg != "" {
			return model.DividerLine{}, errMsg, ""
		}
		c2y, errMsg := coord(mapping.Control2Y, "control 2 Y")
		if errMsg != "" {
			return model.DividerLine{}, errMsg, ""
		}
		line = model.NewBezierLine(
			model.Point{X: sx, Y: sy},
			model.Point{X: c1x, Y: c1y},
			model.Point{X: c2x, Y: c2y},
			model.Point{X: ex, Y: ey},
		)
	} else {
		line = model.NewStraightLine(model.Point{X: sx, Y: sy}, model.Point{X: ex, Y: ey})
	}

	// Out-of-range endpoints are legal (the solver clips against the page)
	// but usually indicate the source file is not in percentage units.
	for _, v := range []float64{sx, sy, ex, ey} {
		if v < 0 || v > 100 {
			warnings = append(warnings, fmt.Sprintf("%s: Coordinate %.4g is outside the 0-100 page range", rowLabel, v))
			break
		}
	}

	// Optional thickness
	if s := getCell(row, mapping.Thickness); s != "" {
		if v, err := parseCoord(s); err == nil && v > 0 {
			line.Thickness = v
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid thickness '%s', using default", rowLabel, s))
		}
	}

	// Optional color
	if s := getCell(row, mapping.Color); s != "" {
		line.Color = s
	}

	return line, "", strings.Join(warnings, "; ")
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports divider lines from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports divider lines from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports divider lines from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into divider lines.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.StartX == -1 {
			missing = append(missing, "Start X")
		}
		if mapping.StartY == -1 {
			missing = append(missing, "Start Y")
		}
		if mapping.EndX == -1 {
			missing = append(missing, "End X")
		}
		if mapping.EndY == -1 {
			missing = append(missing, "End Y")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 4 {
			if _, err := parseCoord(strings.TrimSpace(rows[0][0])); err != nil {
				// First column is not numeric - might be an unrecognized header.
				// Skip it as a header but use positional mapping
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		line, errMsg, warning := parseRow(row, mapping, rowLabel)

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		line.Order = len(result.Lines)
		result.Lines = append(result.Lines, line)
	}

	return result
}
