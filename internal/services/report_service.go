package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"motoroutes/internal/domain"
	"motoroutes/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReportService renders the catalogue as a printable trip report.
type ReportService struct {
	Loader    func() ([]domain.Itinerary, domain.CompletionState, error)
	RequestID string
}

// TripReport builds an A4 PDF listing every itinerary with its cost estimate
// and completion mark, plus pending totals.
func (s ReportService) TripReport() ([]byte, string, error) {
	items, state, err := s.Loader()
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "trip_report", fmt.Sprintf("records=%d", len(items)))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Roteiros de Moto", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ROTEIROS DE MOTO - SP")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Gerado em "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	var pendingDistance, pendingCost float64
	for _, it := range items {
		mark := "[ ]"
		if state[it.ID] {
			mark = "[x]"
		} else {
			pendingDistance += domain.SumGuard(it.DistanceKm)
			pendingCost += domain.SumGuard(it.TotalCost)
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("%s Roteiro #%d - %s", mark, it.ID, it.Kind))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, strings.Join(it.Places, ", "), "", "", false)
		pdf.Cell(0, 6, fmt.Sprintf("Distancia: %.0f km   Total estimado: %s",
			domain.SumGuard(it.DistanceKm), formatReal(it.TotalCost)))
		pdf.Ln(9)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Pendentes: %.0f km, %s", pendingDistance, formatReal(pendingCost)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := "ROTEIROS_" + time.Now().Format("20060102") + ".pdf"
	return buf.Bytes(), filename, nil
}

func formatReal(v float64) string {
	v = domain.SumGuard(v)
	s := fmt.Sprintf("%.2f", v)
	// 1234.56 -> 1.234,56
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]
	var out []byte
	n := len(intPart)
	for i := 0; i < n; i++ {
		out = append(out, intPart[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 && intPart[i] != '-' {
			out = append(out, '.')
		}
	}
	return "R$ " + string(out) + "," + decPart
}
