package bitinfo

import (
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
)

// Report carries the per-bit information of an array, for display or
// storage alongside the data it describes.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name,omitempty"`
	Information []float64 `json:"information"`
}

// NewReport returns a report of info under the given name, with a new
// random identifier.
func NewReport(name string, info []float64) *Report {
	return &Report{
		ID:          uuid.New(),
		Name:        name,
		Information: append([]float64(nil), info...),
	}
}

// Total returns the sum of the information of all bits.
func (r *Report) Total() float64 {
	total := 0.0
	for _, v := range r.Information {
		total += max(v, 0)
	}
	return total
}

// KeepBits returns the number of leading bits holding the fraction level of
// the information, see KeepBits.
func (r *Report) KeepBits(level float64) (int, error) {
	return KeepBits(r.Information, level)
}

// WriteTable renders the report as a text table with one row per bit,
// giving the byte the bit belongs to, its information and the fraction of
// the total information held by the bits up to and including it.
func (r *Report) WriteTable(w io.Writer) error {
	tw := &tableWriter{writer: w}
	table := tablewriter.NewWriter(tw)
	table.SetHeader([]string{"Bit", "Byte", "Information", "Cumulative"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)

	total := r.Total()
	sum := 0.0

	for k, v := range r.Information {
		sum += max(v, 0)
		cumulative := 0.0
		if total > 0 {
			cumulative = sum / total
		}
		table.Append([]string{
			strconv.Itoa(k),
			strconv.Itoa(k / 8),
			strconv.FormatFloat(v, 'f', 6, 64),
			strconv.FormatFloat(100*cumulative, 'f', 2, 64) + "%",
		})
	}

	table.SetFooter([]string{"", "", strconv.FormatFloat(total, 'f', 6, 64), ""})
	table.Render()
	return tw.err
}

type report Report

// MarshalJSON satisfies the json.Marshaler interface.
func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal((*report)(r))
}

// UnmarshalJSON satisfies the json.Unmarshaler interface.
func (r *Report) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*report)(r))
}

// tableWriter retains the first error returned by the underlying writer,
// the table renderer does not report them.
type tableWriter struct {
	writer io.Writer
	err    error
}

func (w *tableWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.writer.Write(b)
	if err != nil {
		w.err = err
	}
	return n, err
}
