package catalog

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-loot/internal/entities/stats"
	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// TagSeparator splits the tags column of an equipment CSV
const TagSeparator = "|"

// ImportEquipmentCSV converts a spreadsheet export into equipment records.
// The header row names the columns; id, displayName, description, slot, tags
// and iconResourcePath are matched case-insensitively and every other column
// is a stat column written as statId or statId:operation. Blank rows are
// skipped, as are blank or zero stat cells.
func ImportEquipmentCSV(r io.Reader) ([]EquipmentRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.InvalidArgument("equipment CSV is empty")
	}
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to read CSV header")
	}

	columns, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	var records []EquipmentRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to read CSV row")
		}
		if isBlankRow(row) {
			continue
		}

		line, _ := reader.FieldPos(0)
		rec, err := recordFromRow(columns, row)
		if err != nil {
			return nil, errors.Wrapf(err, "CSV line %d", line)
		}
		records = append(records, rec)
	}
	return records, nil
}

type csvColumn struct {
	field  string
	statID string
	op     stats.Operation
}

func parseHeader(header []string) ([]csvColumn, error) {
	columns := make([]csvColumn, 0, len(header))
	for _, h := range header {
		h = strings.TrimSpace(h)
		switch strings.ToLower(h) {
		case "id", "displayname", "description", "slot", "tags", "iconresourcepath":
			columns = append(columns, csvColumn{field: strings.ToLower(h)})
			continue
		}

		statID, opName, _ := strings.Cut(h, ":")
		op, err := stats.ParseOperation(opName)
		if err != nil {
			return nil, errors.InvalidArgumentf("stat column %q: %v", h, err)
		}
		columns = append(columns, csvColumn{statID: strings.TrimSpace(statID), op: op})
	}
	return columns, nil
}

func recordFromRow(columns []csvColumn, row []string) (EquipmentRecord, error) {
	var rec EquipmentRecord
	for i, col := range columns {
		if i >= len(row) {
			break
		}
		value := strings.TrimSpace(row[i])

		switch col.field {
		case "id":
			rec.ID = value
		case "displayname":
			rec.DisplayName = value
		case "description":
			rec.Description = value
		case "slot":
			rec.Slot = value
		case "iconresourcepath":
			rec.IconResourcePath = value
		case "tags":
			for _, tag := range strings.Split(value, TagSeparator) {
				if tag = strings.TrimSpace(tag); tag != "" {
					rec.Tags = append(rec.Tags, tag)
				}
			}
		default:
			if value == "" || col.statID == "" {
				continue
			}
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return rec, errors.InvalidArgumentf("stat %q: invalid number %q", col.statID, value)
			}
			if isNearZero(n) {
				continue
			}
			rec.BaseModifier.Entries = append(rec.BaseModifier.Entries, stats.NewEntry(col.statID, n, col.op))
		}
	}
	return rec, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
