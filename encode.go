package finstmt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// This file persists the report document in a way that is human-readable
// and git-friendly: one indented JSON file with a fixed key order, amounts
// normalized on the way out. The report file is the single source of truth
// for every command; it typically lives next to the books it describes.

// EncodeReport writes the report to w as indented JSON. A decode/encode
// round-trip is byte-stable, so saving an unchanged report never dirties
// the file.
func EncodeReport(w io.Writer, r *ReportData) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// DecodeReport reads a report document from r.
func DecodeReport(r io.Reader) (*ReportData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	report := &ReportData{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return report, nil
}

// DecodeGenerated turns a raw generator payload into a report. The payload
// must pass the shape check first; its free text is sanitized on the way in.
func DecodeGenerated(raw []byte) (*ReportData, error) {
	if err := CheckShape(raw); err != nil {
		return nil, fmt.Errorf("generated report has the wrong shape: %w", err)
	}
	report := &ReportData{}
	if err := json.Unmarshal(raw, report); err != nil {
		return nil, fmt.Errorf("failed to decode generated report: %w", err)
	}
	return report.Sanitized(), nil
}

// ReadReportFile reads the report document from filename.
func ReadReportFile(filename string) (*ReportData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()
	report, err := DecodeReport(f)
	if err != nil {
		return nil, fmt.Errorf("format error in %q: %w", filename, err)
	}
	return report, nil
}

// WriteReportFile writes the report document to filename.
func WriteReportFile(filename string, r *ReportData) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot open %q for writing: %w", filename, err)
	}
	if err := EncodeReport(f, r); err != nil {
		f.Close()
		return fmt.Errorf("cannot write report to %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write report to %q: %w", filename, err)
	}
	return nil
}
