package output

import (
	"bufio"
	"encoding/json"
	"io"
)

// JSONFormatter outputs a single JSON object mapping each column name to its
// array of values, keeping column order
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new columnar JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes {"name":[...],"age":[...]} followed by a newline
func (j *JSONFormatter) Format(cs ColumnSet) error {
	bw := bufio.NewWriter(j.writer)

	if err := bw.WriteByte('{'); err != nil {
		return err
	}
	for i, name := range cs.ColumnNames() {
		if i > 0 {
			if err := bw.WriteByte(','); err != nil {
				return err
			}
		}
		key, err := json.Marshal(name)
		if err != nil {
			return err
		}
		values := cs.Column(name)
		if values == nil {
			values = []string{}
		}
		data, err := json.Marshal(values)
		if err != nil {
			return err
		}
		if _, err := bw.Write(key); err != nil {
			return err
		}
		if err := bw.WriteByte(':'); err != nil {
			return err
		}
		if _, err := bw.Write(data); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("}\n"); err != nil {
		return err
	}
	return bw.Flush()
}

// JSONLinesFormatter outputs rows as JSON Lines format
type JSONLinesFormatter struct {
	writer io.Writer
}

// NewJSONLinesFormatter creates a new JSON Lines formatter
func NewJSONLinesFormatter(w io.Writer) *JSONLinesFormatter {
	return &JSONLinesFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONLinesFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line)
func (j *JSONLinesFormatter) Format(cs ColumnSet) error {
	names := cs.ColumnNames()
	if len(names) == 0 {
		return nil
	}

	encoder := json.NewEncoder(j.writer)
	for i := 0; i < cs.NumRows(); i++ {
		record := row(cs, names, i)
		obj := make(map[string]string, len(names))
		for k, name := range names {
			obj[name] = record[k]
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
