package interchange

import (
	"fmt"
	"strings"

	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// csvColumns is the fixed export header; import matches columns by name, so
// column order in incoming files is free.
var csvColumns = []string{
	"title",
	"company",
	"location",
	"remote",
	"salary",
	"url",
	"description",
	"status",
	"tags",
	"appliedAt",
	"notes",
}

// Row is one parsed CSV line, keyed by the known columns. Unknown columns
// are ignored, missing ones come back empty.
type Row struct {
	Title       string
	Company     string
	Location    string
	Remote      string
	Salary      string
	URL         string
	Description string
	Status      string
	Tags        string
	AppliedAt   string
	Notes       string
}

// MarshalJobsCSV renders jobs into the fixed 11-column CSV format. The
// format is lossy: notes, events, tasks, contacts and documents are not
// included; use the JSON backup for full data.
func MarshalJobsCSV(jobs []models.Job) string {
	lines := make([]string, 0, len(jobs)+1)
	lines = append(lines, strings.Join(csvColumns, ","))

	for _, job := range jobs {
		remote := "No"
		if job.Remote {
			remote = "Yes"
		}
		status := string(job.Status)
		if status == "" {
			status = string(models.StatusWishlist)
		}

		fields := []string{
			escapeCSV(job.Title),
			escapeCSV(job.Company),
			escapeCSV(job.Location),
			remote,
			escapeCSV(job.SalaryNote),
			escapeCSV(job.URL),
			escapeCSV(job.Description),
			status,
			escapeCSV(strings.Join(job.Tags, ", ")),
			utils.FormatDate(job.AppliedAt),
			"",
		}
		lines = append(lines, strings.Join(fields, ","))
	}

	return strings.Join(lines, "\n")
}

// escapeCSV quotes a value containing a comma, double quote or newline,
// doubling any inner quotes
func escapeCSV(value string) string {
	if strings.ContainsAny(value, ",\"\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// ParseCSV parses raw CSV text into rows. Quoted fields may contain commas,
// doubled quotes and embedded newlines. The first record is the header.
func ParseCSV(content string) ([]Row, error) {
	records := parseRecords(content)
	if len(records) < 2 {
		return nil, fmt.Errorf("CSV-filen må inneholde minst en header-rad og en data-rad")
	}

	header := records[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	pick := func(record []string, column string) string {
		i, ok := index[strings.ToLower(column)]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		if recordEmpty(record) {
			continue
		}
		rows = append(rows, Row{
			Title:       pick(record, "title"),
			Company:     pick(record, "company"),
			Location:    pick(record, "location"),
			Remote:      pick(record, "remote"),
			Salary:      pick(record, "salary"),
			URL:         pick(record, "url"),
			Description: pick(record, "description"),
			Status:      pick(record, "status"),
			Tags:        pick(record, "tags"),
			AppliedAt:   pick(record, "appliedAt"),
			Notes:       pick(record, "notes"),
		})
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV-filen må inneholde minst en header-rad og en data-rad")
	}
	return rows, nil
}

// parseRecords scans the whole input once, honoring RFC4180-style quoting.
// A newline inside quotes belongs to the field; outside quotes it terminates
// the record.
func parseRecords(content string) [][]string {
	var (
		records  [][]string
		record   []string
		field    strings.Builder
		inQuotes bool
	)

	runes := []rune(content)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			record = append(record, field.String())
			field.Reset()
		case (ch == '\r' || ch == '\n') && !inQuotes:
			if ch == '\r' && i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			record = append(record, field.String())
			field.Reset()
			records = append(records, record)
			record = nil
		default:
			field.WriteRune(ch)
		}
	}

	if field.Len() > 0 || len(record) > 0 {
		record = append(record, field.String())
		records = append(records, record)
	}

	// Drop records that are nothing but empty fields (blank lines)
	kept := records[:0]
	for _, r := range records {
		if !recordEmpty(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func recordEmpty(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ValidateRow checks one parsed row. index is zero-based; reported row
// numbers add 2 to account for 1-indexing plus the header line.
func ValidateRow(row Row, index int) []string {
	var errs []string
	line := index + 2

	if strings.TrimSpace(row.Title) == "" {
		errs = append(errs, fmt.Sprintf("Rad %d: Tittel er påkrevd", line))
	}
	if strings.TrimSpace(row.Company) == "" {
		errs = append(errs, fmt.Sprintf("Rad %d: Firma er påkrevd", line))
	}

	if row.Status != "" && !models.IsInterchangeStatus(strings.ToUpper(row.Status)) {
		valid := make([]string, len(models.InterchangeStatuses))
		for i, s := range models.InterchangeStatuses {
			valid[i] = string(s)
		}
		errs = append(errs, fmt.Sprintf("Rad %d: Ugyldig status %q. Må være en av: %s",
			line, row.Status, strings.Join(valid, ", ")))
	}

	switch strings.ToLower(row.Remote) {
	case "", "yes", "no", "ja", "nei":
	default:
		errs = append(errs, fmt.Sprintf(`Rad %d: Remote må være "Yes", "No", "Ja", "Nei" eller tom`, line))
	}

	if strings.TrimSpace(row.AppliedAt) != "" {
		if _, err := utils.ParseDate(strings.TrimSpace(row.AppliedAt)); err != nil {
			errs = append(errs, fmt.Sprintf("Rad %d: Ugyldig dato format for appliedAt. Bruk YYYY-MM-DD", line))
		}
	}

	return errs
}
