// Package dataset loads the static municipal CSV assets (public bike
// stations, BRT stops, card-sales aggregates) that back the dashboard
// charts. Loading is tolerant: unknown columns are ignored, missing or
// malformed numbers default to zero, and a file that cannot be read yields
// an empty slice rather than an error surfaced to the caller.
package dataset

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// BikeStation is one public bike rental station row
type BikeStation struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	District string  `json:"district"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Capacity int     `json:"capacity"`
}

// BRTStation is one BRT stop row
type BRTStation struct {
	Route     string  `json:"route"`
	StationID string  `json:"station_id"`
	Name      string  `json:"name"`
	District  string  `json:"district"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Order     int     `json:"order"`
}

// CardSalesRecord is one card-sales aggregate row
type CardSalesRecord struct {
	Date         string  `json:"date"`
	DistrictCode string  `json:"district_code"`
	DistrictName string  `json:"district_name"`
	Amount       float64 `json:"amount"`
	Ratio        float64 `json:"ratio"`
	ChangeRate   float64 `json:"change_rate"`
}

// LoadBikeStations reads a bike-station CSV. The source files carry Korean
// headers; columns are matched by header name.
func LoadBikeStations(path string) []BikeStation {
	rows := readAll(path)
	out := make([]BikeStation, 0, len(rows))
	for _, row := range rows {
		out = append(out, BikeStation{
			ID:       row["대여소ID"],
			Name:     row["대여소명"],
			District: row["행정동"],
			Address:  row["주소"],
			Lat:      ParseNumber(row["위도"]),
			Lon:      ParseNumber(row["경도"]),
			Capacity: int(ParseNumber(row["거치대수"])),
		})
	}
	return out
}

// LoadBRTStations reads a BRT-stop CSV
func LoadBRTStations(path string) []BRTStation {
	rows := readAll(path)
	out := make([]BRTStation, 0, len(rows))
	for _, row := range rows {
		out = append(out, BRTStation{
			Route:     row["노선명"],
			StationID: row["정류장ID"],
			Name:      row["정류장명"],
			District:  row["행정동"],
			Lat:       ParseNumber(row["위도"]),
			Lon:       ParseNumber(row["경도"]),
			Order:     int(ParseNumber(row["순번"])),
		})
	}
	return out
}

// LoadCardSales reads a card-sales CSV
func LoadCardSales(path string) []CardSalesRecord {
	rows := readAll(path)
	out := make([]CardSalesRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, CardSalesRecord{
			Date:         row["기준일자"],
			DistrictCode: row["행정동코드"],
			DistrictName: row["행정동명"],
			Amount:       ParseNumber(row["카드매출금액"]),
			Ratio:        ParseNumber(row["비율"]),
			ChangeRate:   ParseNumber(row["증감률"]),
		})
	}
	return out
}

// ParseNumber converts a CSV cell to a float. Thousands separators are
// stripped; empty cells, dashes, and unparseable values become zero.
func ParseNumber(value string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))
	if cleaned == "" || cleaned == "-" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// readAll parses a CSV file into header-keyed rows. Any failure logs and
// returns an empty result.
func readAll(path string) []map[string]string {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("dataset: could not open %s: %v", path, err)
		return nil
	}
	defer f.Close()

	return parseRows(f)
}

func parseRows(r io.Reader) []map[string]string {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil
	}
	// Strip a UTF-8 BOM the municipal exports sometimes carry
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
