// Package fuzztests holds native Go fuzz targets for the textual expansion
// replay and the operand parser. Run with, e.g.:
//
//	go test ./internal/fuzz -run=^$ -fuzz=FuzzExpandText
package fuzztests
